package memory

import (
	"sort"
	"sync"

	"fraud-monitoring-system/internal/models"
	"fraud-monitoring-system/internal/storage"
)

// Repository реализует LedgerRepository в памяти.
// Используется как запасной вариант, когда SQLite недоступен,
// и в тестах сервисного слоя.
type Repository struct {
	mu           sync.RWMutex
	transactions []*models.Transaction
	byID         map[string]struct{}
}

// NewRepository создает новый леджер в памяти
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[string]struct{}),
	}
}

// Append сохраняет транзакцию в леджер. Дубликат transaction_id
// отклоняется с storage.ErrDuplicateTransaction.
func (r *Repository) Append(tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[tx.TransactionID]; ok {
		return storage.ErrDuplicateTransaction
	}

	clone := *tx
	r.transactions = append(r.transactions, &clone)
	r.byID[tx.TransactionID] = struct{}{}
	return nil
}

// History возвращает транзакции по фильтру, отсортированные по
// возрастанию временной метки
func (r *Repository) History(filter storage.HistoryFilter) ([]*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Transaction
	for _, tx := range r.transactions {
		if !matches(tx, filter) {
			continue
		}
		clone := *tx
		result = append(result, &clone)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

// GetAll возвращает транзакции по возрастанию временной метки.
// Положительный limit оставляет самые свежие limit записей.
func (r *Repository) GetAll(limit int) ([]*models.Transaction, error) {
	all, err := r.History(storage.HistoryFilter{})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

// Latest возвращает последнюю по времени транзакцию
func (r *Repository) Latest() (*models.Transaction, error) {
	all, err := r.History(storage.HistoryFilter{})
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[len(all)-1], nil
}

// Count возвращает количество транзакций
func (r *Repository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.transactions)), nil
}

// ClearAll удаляет все транзакции
func (r *Repository) ClearAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = nil
	r.byID = make(map[string]struct{})
	return nil
}

func matches(tx *models.Transaction, filter storage.HistoryFilter) bool {
	if filter.SenderAccount != "" || filter.CardType != "" {
		sameSender := filter.SenderAccount != "" && tx.SenderAccount == filter.SenderAccount
		sameCard := filter.CardType != "" && tx.CardType == filter.CardType
		if !sameSender && !sameCard {
			return false
		}
	}
	if !filter.Since.IsZero() && tx.Timestamp.Before(filter.Since) {
		return false
	}
	return true
}
