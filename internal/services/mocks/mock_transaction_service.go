package mocks

import (
	"fraud-monitoring-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTransactionService является моком для services.TransactionService интерфейса
type MockTransactionService struct {
	mock.Mock
}

// SubmitTransaction мок для SubmitTransaction
func (m *MockTransactionService) SubmitTransaction(req *models.SubmitRequest, clientIP string) (*models.SubmitResponse, error) {
	args := m.Called(req, clientIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmitResponse), args.Error(1)
}

// GetLatestVerdict мок для GetLatestVerdict
func (m *MockTransactionService) GetLatestVerdict() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

// GetAllTransactions мок для GetAllTransactions
func (m *MockTransactionService) GetAllTransactions(limit int) ([]*models.Transaction, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

// ClearAllTransactions мок для ClearAllTransactions
func (m *MockTransactionService) ClearAllTransactions() error {
	args := m.Called()
	return args.Error(0)
}
