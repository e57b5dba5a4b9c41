package storage

import (
	"errors"
	"time"

	"fraud-monitoring-system/internal/models"
)

// ErrDuplicateTransaction возвращается при попытке сохранить транзакцию
// с уже существующим transaction_id
var ErrDuplicateTransaction = errors.New("transaction with this transaction_id already exists")

// HistoryFilter описывает выборку исторических транзакций.
// SenderAccount и CardType объединяются по ИЛИ: транзакция попадает в
// выборку, если совпал отправитель или тип карты. Ненулевой Since
// дополнительно ограничивает выборку по времени.
type HistoryFilter struct {
	SenderAccount string
	CardType      string
	Since         time.Time
}

// LedgerRepository определяет интерфейс append-only леджера транзакций.
// Транзакции неизменяемы после записи; удаление возможно только
// массовой административной очисткой.
type LedgerRepository interface {
	// Append сохраняет транзакцию с уже вычисленным вердиктом
	Append(tx *models.Transaction) error

	// History возвращает транзакции по фильтру, отсортированные по
	// возрастанию временной метки
	History(filter HistoryFilter) ([]*models.Transaction, error)

	// GetAll возвращает все транзакции по возрастанию временной метки
	GetAll(limit int) ([]*models.Transaction, error)

	// Latest возвращает последнюю по времени транзакцию (nil, если пусто)
	Latest() (*models.Transaction, error)

	// Count возвращает количество транзакций в леджере
	Count() (int64, error)

	// ClearAll удаляет все транзакции из леджера
	ClearAll() error
}
