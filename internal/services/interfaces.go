package services

import (
	"fraud-monitoring-system/internal/models"
)

// TransactionService определяет интерфейс для обработки транзакций
type TransactionService interface {
	// SubmitTransaction оценивает и сохраняет транзакцию
	SubmitTransaction(req *models.SubmitRequest, clientIP string) (*models.SubmitResponse, error)

	// GetLatestVerdict возвращает вердикт последней транзакции
	// (false для пустого леджера)
	GetLatestVerdict() (bool, error)

	// GetAllTransactions возвращает историю транзакций
	GetAllTransactions(limit int) ([]*models.Transaction, error)

	// ClearAllTransactions очищает леджер
	ClearAllTransactions() error
}
