package blacklist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"fraud-monitoring-system/internal/config"
	"fraud-monitoring-system/internal/models"
)

const (
	accountsKey    = "blacklist:accounts"
	entryKeyPrefix = "blacklist:entry:"
)

// RedisRegistry реализует Registry поверх Redis:
// членство хранится в множестве, метаданные записи - в JSON по ключу.
type RedisRegistry struct {
	rdb *redisv9.Client
}

// NewRedisRegistry создает новое подключение к Redis
func NewRedisRegistry(cfg *config.Config) (*RedisRegistry, error) {
	rdb := redisv9.NewClient(&redisv9.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRegistry{rdb: rdb}, nil
}

// Contains проверяет, находится ли счет в черном списке
func (r *RedisRegistry) Contains(accountNumber string) (bool, error) {
	ctx := context.Background()
	return r.rdb.SIsMember(ctx, accountsKey, accountNumber).Result()
}

// Add добавляет счет в черный список. Повторное добавление
// уже присутствующего счета ничего не меняет.
func (r *RedisRegistry) Add(accountNumber string, reasons []string) error {
	ctx := context.Background()

	added, err := r.rdb.SAdd(ctx, accountsKey, accountNumber).Result()
	if err != nil {
		return fmt.Errorf("failed to add to blacklist: %w", err)
	}
	if added == 0 {
		// Счет уже в списке, запись не перезаписываем
		return nil
	}

	entry := models.BlacklistEntry{
		AccountNumber: accountNumber,
		Reasons:       reasons,
		AddedAt:       time.Now(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal blacklist entry: %w", err)
	}

	return r.rdb.Set(ctx, entryKeyPrefix+accountNumber, data, 0).Err()
}

// Remove удаляет счет из черного списка
func (r *RedisRegistry) Remove(accountNumber string) error {
	ctx := context.Background()

	if err := r.rdb.SRem(ctx, accountsKey, accountNumber).Err(); err != nil {
		return fmt.Errorf("failed to remove from blacklist: %w", err)
	}
	return r.rdb.Del(ctx, entryKeyPrefix+accountNumber).Err()
}

// List возвращает все записи черного списка
func (r *RedisRegistry) List() ([]models.BlacklistEntry, error) {
	ctx := context.Background()

	members, err := r.rdb.SMembers(ctx, accountsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list blacklist: %w", err)
	}

	entries := make([]models.BlacklistEntry, 0, len(members))
	for _, member := range members {
		data, err := r.rdb.Get(ctx, entryKeyPrefix+member).Result()
		if err == redisv9.Nil {
			// Метаданные могли быть добавлены напрямую через SAdd
			entries = append(entries, models.BlacklistEntry{AccountNumber: member})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get blacklist entry: %w", err)
		}

		var entry models.BlacklistEntry
		if err := json.Unmarshal([]byte(data), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal blacklist entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Close закрывает соединение с Redis
func (r *RedisRegistry) Close() error {
	return r.rdb.Close()
}
