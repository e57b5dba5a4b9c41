package blacklist

import (
	"fraud-monitoring-system/internal/models"
)

// Registry определяет интерфейс черного списка счетов.
// Это позволяет легко создавать моки для тестирования.
// Реализуется типами RedisRegistry и MemoryRegistry.
type Registry interface {
	// Contains проверяет, находится ли счет в черном списке
	Contains(accountNumber string) (bool, error)

	// Add добавляет счет в черный список (идемпотентно)
	Add(accountNumber string, reasons []string) error

	// Remove удаляет счет из черного списка (no-op для отсутствующего)
	Remove(accountNumber string) error

	// List возвращает все записи черного списка
	List() ([]models.BlacklistEntry, error)

	// Close закрывает соединение с хранилищем
	Close() error
}

// Убеждаемся, что обе реализации удовлетворяют Registry
var (
	_ Registry = (*RedisRegistry)(nil)
	_ Registry = (*MemoryRegistry)(nil)
)
