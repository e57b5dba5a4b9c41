package mocks

import (
	"fraud-monitoring-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRegistry является моком для blacklist.Registry интерфейса
type MockRegistry struct {
	mock.Mock
}

// Contains мок для Contains
func (m *MockRegistry) Contains(accountNumber string) (bool, error) {
	args := m.Called(accountNumber)
	return args.Bool(0), args.Error(1)
}

// Add мок для Add
func (m *MockRegistry) Add(accountNumber string, reasons []string) error {
	args := m.Called(accountNumber, reasons)
	return args.Error(0)
}

// Remove мок для Remove
func (m *MockRegistry) Remove(accountNumber string) error {
	args := m.Called(accountNumber)
	return args.Error(0)
}

// List мок для List
func (m *MockRegistry) List() ([]models.BlacklistEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlacklistEntry), args.Error(1)
}

// Close мок для Close
func (m *MockRegistry) Close() error {
	args := m.Called()
	return args.Error(0)
}
