package sqlite

import (
	"time"

	"fraud-monitoring-system/internal/models"
	"fraud-monitoring-system/internal/storage"
)

// Repository реализует интерфейс LedgerRepository для SQLite.
// Операции записи повторяются при блокировке БД.
type Repository struct {
	storage *SQLiteStorage
}

// NewRepository создает новый репозиторий SQLite
func NewRepository(s *SQLiteStorage) storage.LedgerRepository {
	return &Repository{storage: s}
}

// Append сохраняет транзакцию в леджер
func (r *Repository) Append(tx *models.Transaction) error {
	return retryOperation(func() error {
		return r.storage.Append(tx)
	}, 3, 50*time.Millisecond)
}

// History возвращает транзакции по фильтру
func (r *Repository) History(filter storage.HistoryFilter) ([]*models.Transaction, error) {
	return r.storage.History(filter)
}

// GetAll возвращает все транзакции
func (r *Repository) GetAll(limit int) ([]*models.Transaction, error) {
	return r.storage.GetAll(limit)
}

// Latest возвращает последнюю по времени транзакцию
func (r *Repository) Latest() (*models.Transaction, error) {
	return r.storage.Latest()
}

// Count возвращает количество транзакций
func (r *Repository) Count() (int64, error) {
	return r.storage.Count()
}

// ClearAll удаляет все транзакции
func (r *Repository) ClearAll() error {
	return retryOperation(func() error {
		return r.storage.ClearAll()
	}, 3, 50*time.Millisecond)
}
