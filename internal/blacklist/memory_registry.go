package blacklist

import (
	"sort"
	"sync"
	"time"

	"fraud-monitoring-system/internal/models"
)

// MemoryRegistry реализует Registry в памяти.
// Используется как запасной вариант, когда Redis недоступен.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]models.BlacklistEntry
}

// NewMemoryRegistry создает новый черный список в памяти
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		entries: make(map[string]models.BlacklistEntry),
	}
}

// Contains проверяет, находится ли счет в черном списке
func (m *MemoryRegistry) Contains(accountNumber string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[accountNumber]
	return ok, nil
}

// Add добавляет счет в черный список. Повторное добавление
// уже присутствующего счета ничего не меняет.
func (m *MemoryRegistry) Add(accountNumber string, reasons []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[accountNumber]; ok {
		return nil
	}

	m.entries[accountNumber] = models.BlacklistEntry{
		AccountNumber: accountNumber,
		Reasons:       reasons,
		AddedAt:       time.Now(),
	}
	return nil
}

// Remove удаляет счет из черного списка
func (m *MemoryRegistry) Remove(accountNumber string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, accountNumber)
	return nil
}

// List возвращает все записи черного списка, отсортированные по счету
func (m *MemoryRegistry) List() ([]models.BlacklistEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]models.BlacklistEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].AccountNumber < entries[j].AccountNumber
	})
	return entries, nil
}

// Close для реализации в памяти ничего не делает
func (m *MemoryRegistry) Close() error {
	return nil
}
