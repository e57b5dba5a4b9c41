package mocks

import (
	"fraud-monitoring-system/internal/models"
	"fraud-monitoring-system/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockLedgerRepository является моком для storage.LedgerRepository интерфейса
type MockLedgerRepository struct {
	mock.Mock
}

// Append мок для Append
func (m *MockLedgerRepository) Append(tx *models.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

// History мок для History
func (m *MockLedgerRepository) History(filter storage.HistoryFilter) ([]*models.Transaction, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

// GetAll мок для GetAll
func (m *MockLedgerRepository) GetAll(limit int) ([]*models.Transaction, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

// Latest мок для Latest
func (m *MockLedgerRepository) Latest() (*models.Transaction, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// Count мок для Count
func (m *MockLedgerRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// ClearAll мок для ClearAll
func (m *MockLedgerRepository) ClearAll() error {
	args := m.Called()
	return args.Error(0)
}
