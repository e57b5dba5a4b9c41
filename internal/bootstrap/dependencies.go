package bootstrap

import (
	"log"

	"fraud-monitoring-system/internal/blacklist"
	"fraud-monitoring-system/internal/config"
	"fraud-monitoring-system/internal/geo"
	"fraud-monitoring-system/internal/kafka"
	"fraud-monitoring-system/internal/logger"
	"fraud-monitoring-system/internal/notify"
	"fraud-monitoring-system/internal/rules"
	"fraud-monitoring-system/internal/services"
	"fraud-monitoring-system/internal/storage"
	"fraud-monitoring-system/internal/storage/memory"
	"fraud-monitoring-system/internal/storage/sqlite"
)

// Dependencies содержит все зависимости сервиса
type Dependencies struct {
	Config   *config.Config
	Repo     storage.LedgerRepository
	Registry blacklist.Registry

	sqliteStorage *sqlite.SQLiteStorage
	producer      kafka.Producer
	ipResolver    *geo.IPResolver

	Service services.TransactionService
}

// BuildDependencies собирает зависимости сервиса.
// Недоступность SQLite, Redis, Kafka или GeoIP не останавливает запуск:
// для хранилищ выбирается in-memory вариант, а уведомления отключаются.
func BuildDependencies(cfg *config.Config) *Dependencies {
	deps := &Dependencies{Config: cfg}

	// Леджер: SQLite с деградацией до in-memory
	sqliteStorage, err := sqlite.NewConnection(cfg)
	if err != nil {
		log.Printf("Warning: SQLite unavailable, using in-memory ledger: %v", err)
		logger.LogEvent(logger.EventStorageDegraded, "fraud-monitoring-service", "ledger", map[string]interface{}{
			"backend": "memory",
			"error":   err.Error(),
		})
		deps.Repo = memory.NewRepository()
	} else {
		deps.sqliteStorage = sqliteStorage
		deps.Repo = sqlite.NewRepository(sqliteStorage)
		log.Println("SQLite ledger initialized")
	}

	// Черный список: Redis с деградацией до in-memory
	registry, err := blacklist.NewRedisRegistry(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, using in-memory blacklist: %v", err)
		logger.LogEvent(logger.EventStorageDegraded, "fraud-monitoring-service", "blacklist", map[string]interface{}{
			"backend": "memory",
			"error":   err.Error(),
		})
		deps.Registry = blacklist.NewMemoryRegistry()
	} else {
		deps.Registry = registry
		log.Println("Redis blacklist connected")
	}

	// Kafka producer (best-effort)
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		log.Printf("Warning: Kafka unavailable, fraud alerts will not be published: %v", err)
	} else {
		deps.producer = producer
		log.Println("Kafka producer connected")
	}

	// GeoIP resolver (опциональный)
	var ipResolver rules.IPResolver
	if cfg.GeoIP.CityDBPath != "" {
		resolver, err := geo.NewIPResolver(cfg.GeoIP.CityDBPath)
		if err != nil {
			log.Printf("Warning: GeoIP database unavailable: %v", err)
		} else {
			deps.ipResolver = resolver
			ipResolver = resolver
			log.Println("GeoIP resolver initialized")
		}
	}

	// SMS notifier (опциональный)
	var notifier notify.Notifier
	if cfg.SMS.ProviderURL != "" {
		notifier = notify.NewSMSNotifier(cfg)
		log.Println("SMS notifier initialized")
	}

	engine := rules.NewEngine(deps.Registry, ipResolver, cfg.Rules)
	deps.Service = services.NewTransactionService(deps.Repo, deps.Registry, engine, deps.producer, notifier)

	return deps
}

// Close освобождает ресурсы зависимостей
func (d *Dependencies) Close() {
	if d.producer != nil {
		if err := d.producer.Close(); err != nil {
			log.Printf("Error closing Kafka producer: %v", err)
		}
	}
	if d.ipResolver != nil {
		if err := d.ipResolver.Close(); err != nil {
			log.Printf("Error closing GeoIP resolver: %v", err)
		}
	}
	if d.Registry != nil {
		if err := d.Registry.Close(); err != nil {
			log.Printf("Error closing blacklist registry: %v", err)
		}
	}
	if d.sqliteStorage != nil {
		if err := d.sqliteStorage.Close(); err != nil {
			log.Printf("Error closing SQLite storage: %v", err)
		}
	}
}
