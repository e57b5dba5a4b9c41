package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"

	"fraud-monitoring-system/internal/models"
	"fraud-monitoring-system/internal/storage"
)

// Append сохраняет транзакцию в БД. Дубликат transaction_id
// отклоняется с storage.ErrDuplicateTransaction.
func (s *SQLiteStorage) Append(tx *models.Transaction) error {
	reasons, err := json.Marshal(tx.Reasons)
	if err != nil {
		return fmt.Errorf("failed to marshal reasons: %w", err)
	}

	query := `
		INSERT INTO transactions (
			transaction_id, sender_account, recipient_account, amount,
			currency, location, card_type, phone, client_ip,
			timestamp, anomalous, reasons, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.DB.Exec(
		query,
		tx.TransactionID, tx.SenderAccount, tx.RecipientAccount, tx.Amount,
		tx.Currency, tx.Location, tx.CardType, tx.Phone, tx.ClientIP,
		tx.Timestamp, tx.Anomalous, string(reasons), tx.CreatedAt,
	)

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return storage.ErrDuplicateTransaction
	}
	return err
}
