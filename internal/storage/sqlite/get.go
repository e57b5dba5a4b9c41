package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"fraud-monitoring-system/internal/models"
	"fraud-monitoring-system/internal/storage"
)

const selectColumns = `
	SELECT transaction_id, sender_account, recipient_account, amount,
	       currency, location, card_type, phone, client_ip,
	       timestamp, anomalous, reasons, created_at
	FROM transactions
`

// History возвращает транзакции по фильтру, отсортированные по
// возрастанию временной метки. Отправитель и тип карты объединяются по ИЛИ.
func (s *SQLiteStorage) History(filter storage.HistoryFilter) ([]*models.Transaction, error) {
	query := selectColumns
	var conditions []string
	var args []interface{}

	identity := ""
	if filter.SenderAccount != "" && filter.CardType != "" {
		identity = "(sender_account = ? OR card_type = ?)"
		args = append(args, filter.SenderAccount, filter.CardType)
	} else if filter.SenderAccount != "" {
		identity = "sender_account = ?"
		args = append(args, filter.SenderAccount)
	} else if filter.CardType != "" {
		identity = "card_type = ?"
		args = append(args, filter.CardType)
	}
	if identity != "" {
		conditions = append(conditions, identity)
	}

	if !filter.Since.IsZero() {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, filter.Since)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY timestamp ASC"

	return s.queryTransactions(query, args...)
}

// GetAll возвращает транзакции по возрастанию временной метки.
// Положительный limit оставляет самые свежие limit записей.
func (s *SQLiteStorage) GetAll(limit int) ([]*models.Transaction, error) {
	if limit <= 0 {
		return s.queryTransactions(selectColumns + " ORDER BY timestamp ASC")
	}

	transactions, err := s.queryTransactions(selectColumns+" ORDER BY timestamp DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(transactions)-1; i < j; i, j = i+1, j-1 {
		transactions[i], transactions[j] = transactions[j], transactions[i]
	}
	return transactions, nil
}

// Latest возвращает последнюю по времени транзакцию
func (s *SQLiteStorage) Latest() (*models.Transaction, error) {
	query := selectColumns + " ORDER BY timestamp DESC LIMIT 1"

	transactions, err := s.queryTransactions(query)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, nil
	}
	return transactions[0], nil
}

// Count возвращает количество транзакций в леджере
func (s *SQLiteStorage) Count() (int64, error) {
	var count int64
	err := s.DB.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&count)
	return count, err
}

func (s *SQLiteStorage) queryTransactions(query string, args ...interface{}) ([]*models.Transaction, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func scanTransaction(rows *sql.Rows) (*models.Transaction, error) {
	var tx models.Transaction
	var reasons string

	err := rows.Scan(
		&tx.TransactionID, &tx.SenderAccount, &tx.RecipientAccount, &tx.Amount,
		&tx.Currency, &tx.Location, &tx.CardType, &tx.Phone, &tx.ClientIP,
		&tx.Timestamp, &tx.Anomalous, &reasons, &tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(reasons), &tx.Reasons); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reasons: %w", err)
	}

	return &tx, nil
}
