package mocks

import (
	"fraud-monitoring-system/internal/notify"

	"github.com/stretchr/testify/mock"
)

// MockNotifier является моком для notify.Notifier интерфейса
type MockNotifier struct {
	mock.Mock
}

// SendAlert мок для SendAlert
func (m *MockNotifier) SendAlert(phone, message string) (notify.DeliveryStatus, error) {
	args := m.Called(phone, message)
	return args.Get(0).(notify.DeliveryStatus), args.Error(1)
}
