package models

import (
	"time"
)

// Transaction представляет финансовую транзакцию в леджере.
// Вердикт и причины выставляются ровно один раз при создании
// и после этого не пересчитываются.
type Transaction struct {
	TransactionID    string    `json:"transaction_id"`
	SenderAccount    string    `json:"sender_account_number"`
	RecipientAccount string    `json:"recipient_account_number"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Location         string    `json:"location"`
	CardType         string    `json:"card_type"`
	Phone            string    `json:"-"`
	ClientIP         string    `json:"client_ip,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
	Anomalous        bool      `json:"anomalous"`
	Reasons          []string  `json:"reasons"`
	CreatedAt        time.Time `json:"created_at"`
}

// SubmitRequest представляет тело запроса POST /submit
type SubmitRequest struct {
	TransactionID    string  `json:"transaction_id" binding:"required"`
	SenderAccount    string  `json:"sender_account_number" binding:"required"`
	RecipientAccount string  `json:"recipient_account_number" binding:"required"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	Currency         string  `json:"currency" binding:"required"`
	Location         string  `json:"location" binding:"required"`
	CardType         string  `json:"card_type" binding:"required"`
	Phone            string  `json:"phone"`
}

// SubmitResponse представляет ответ на запрос POST /submit
type SubmitResponse struct {
	Success       bool     `json:"success"`
	Anomalous     bool     `json:"anomalous"`
	Reasons       []string `json:"reasons"`
	TransactionID string   `json:"transaction_id"`
}

// Evaluation представляет результат работы движка правил
type Evaluation struct {
	Anomalous   bool      `json:"anomalous"`
	Reasons     []string  `json:"reasons"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// BlacklistEntry представляет запись черного списка
type BlacklistEntry struct {
	AccountNumber string    `json:"account_number"`
	Reasons       []string  `json:"reasons"`
	AddedAt       time.Time `json:"added_at"`
}

// BlacklistRequest представляет тело запроса POST /blacklist
type BlacklistRequest struct {
	AccountNumber string   `json:"account_number" binding:"required"`
	Reasons       []string `json:"reasons"`
}

// FraudAlertEvent представляет событие о мошеннической транзакции в Kafka
type FraudAlertEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      FraudAlertData `json:"data"`
}

// FraudAlertData представляет данные мошеннической транзакции в Kafka
type FraudAlertData struct {
	TransactionID    string   `json:"transaction_id"`
	SenderAccount    string   `json:"sender_account_number"`
	RecipientAccount string   `json:"recipient_account_number"`
	Amount           float64  `json:"amount"`
	Currency         string   `json:"currency"`
	Location         string   `json:"location"`
	Reasons          []string `json:"reasons"`
}
