package mocks

import (
	"fraud-monitoring-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendFraudAlert мок для SendFraudAlert
func (m *MockProducer) SendFraudAlert(event *models.FraudAlertEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
