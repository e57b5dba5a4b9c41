package kafka

import (
	"fraud-monitoring-system/internal/models"
)

// Producer определяет интерфейс для отправки событий о мошенничестве в Kafka
type Producer interface {
	SendFraudAlert(event *models.FraudAlertEvent) error

	Close() error
}
