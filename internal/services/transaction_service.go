package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fraud-monitoring-system/internal/blacklist"
	"fraud-monitoring-system/internal/kafka"
	"fraud-monitoring-system/internal/logger"
	"fraud-monitoring-system/internal/models"
	"fraud-monitoring-system/internal/notify"
	"fraud-monitoring-system/internal/rules"
	"fraud-monitoring-system/internal/storage"
)

// TransactionServiceImpl реализует интерфейс TransactionService
type TransactionServiceImpl struct {
	repo     storage.LedgerRepository
	registry blacklist.Registry
	engine   *rules.Engine
	producer kafka.Producer  // Опциональный, nil если Kafka недоступна
	notifier notify.Notifier // Опциональный, nil если SMS не настроен

	// mu сериализует цикл "прочитать историю - оценить - записать",
	// чтобы параллельные отправки не видели частично записанную историю
	mu sync.Mutex

	// now подменяется в тестах для фиксации временной метки транзакции
	now func() time.Time
}

// NewTransactionService создает новый сервис транзакций.
// producer и notifier могут быть nil - соответствующие уведомления
// просто не отправляются.
func NewTransactionService(
	repo storage.LedgerRepository,
	registry blacklist.Registry,
	engine *rules.Engine,
	producer kafka.Producer,
	notifier notify.Notifier,
) TransactionService {
	return &TransactionServiceImpl{
		repo:     repo,
		registry: registry,
		engine:   engine,
		producer: producer,
		notifier: notifier,
		now:      time.Now,
	}
}

// SubmitTransaction оценивает транзакцию против истории, сохраняет её
// с окончательным вердиктом и выполняет побочные эффекты.
// Вердикт и причины фиксируются один раз и не пересчитываются.
func (s *TransactionServiceImpl) SubmitTransaction(req *models.SubmitRequest, clientIP string) (*models.SubmitResponse, error) {
	now := s.now()
	tx := &models.Transaction{
		TransactionID:    req.TransactionID,
		SenderAccount:    req.SenderAccount,
		RecipientAccount: req.RecipientAccount,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Location:         req.Location,
		CardType:         req.CardType,
		Phone:            req.Phone,
		ClientIP:         clientIP,
		Timestamp:        now,
		CreatedAt:        now,
	}

	logger.LogEvent(logger.EventTransactionReceived, "fraud-monitoring-service", "api", map[string]interface{}{
		"transaction_id": tx.TransactionID,
		"amount":         tx.Amount,
		"currency":       tx.Currency,
	})

	evaluation, err := s.evaluateAndAppend(tx)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventTransactionEvaluated, "fraud-monitoring-service", "rules", map[string]interface{}{
		"transaction_id": tx.TransactionID,
		"anomalous":      evaluation.Anomalous,
		"reasons":        evaluation.Reasons,
	})

	if evaluation.Anomalous {
		s.handleFraud(tx)
	}

	return &models.SubmitResponse{
		Success:       true,
		Anomalous:     tx.Anomalous,
		Reasons:       tx.Reasons,
		TransactionID: tx.TransactionID,
	}, nil
}

// evaluateAndAppend выполняет цикл "история - оценка - запись" под мьютексом
func (s *TransactionServiceImpl) evaluateAndAppend(tx *models.Transaction) (*models.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.repo.History(storage.HistoryFilter{
		SenderAccount: tx.SenderAccount,
		CardType:      tx.CardType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	evaluation, err := s.engine.Evaluate(tx, history)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate transaction: %w", err)
	}

	tx.Anomalous = evaluation.Anomalous
	tx.Reasons = evaluation.Reasons

	if err := s.repo.Append(tx); err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventTransactionSaved, "fraud-monitoring-service", "ledger", map[string]interface{}{
		"transaction_id": tx.TransactionID,
		"anomalous":      tx.Anomalous,
	})

	return evaluation, nil
}

// handleFraud выполняет побочные эффекты мошеннического вердикта.
// Все они best-effort: сбой не отменяет уже записанную транзакцию.
func (s *TransactionServiceImpl) handleFraud(tx *models.Transaction) {
	if err := s.registry.Add(tx.SenderAccount, tx.Reasons); err != nil {
		log.Printf("Error adding %s to blacklist: %v", tx.SenderAccount, err)
	} else {
		logger.LogEvent(logger.EventBlacklistUpdated, "fraud-monitoring-service", "blacklist", map[string]interface{}{
			"account_number": tx.SenderAccount,
			"reasons":        tx.Reasons,
		})
	}

	if s.producer != nil {
		event := &models.FraudAlertEvent{
			EventID:   "evt_" + uuid.New().String(),
			EventType: "fraud_detected",
			Timestamp: time.Now(),
			Data: models.FraudAlertData{
				TransactionID:    tx.TransactionID,
				SenderAccount:    tx.SenderAccount,
				RecipientAccount: tx.RecipientAccount,
				Amount:           tx.Amount,
				Currency:         tx.Currency,
				Location:         tx.Location,
				Reasons:          tx.Reasons,
			},
		}
		if err := s.producer.SendFraudAlert(event); err != nil {
			log.Printf("Error sending fraud alert to Kafka: %v", err)
		} else {
			logger.LogEvent(logger.EventKafkaSent, "fraud-monitoring-service", "kafka", map[string]interface{}{
				"event_id":       event.EventID,
				"transaction_id": tx.TransactionID,
			})
		}
	}

	if s.notifier != nil && tx.Phone != "" {
		message := fmt.Sprintf("Fraud alert: transaction %s flagged (%s)",
			tx.TransactionID, strings.Join(tx.Reasons, ", "))
		status, err := s.notifier.SendAlert(tx.Phone, message)
		if err != nil {
			log.Printf("Error sending SMS alert for %s: %v", tx.TransactionID, err)
		} else {
			logger.LogEvent(logger.EventSMSSent, "fraud-monitoring-service", "sms", map[string]interface{}{
				"transaction_id": tx.TransactionID,
				"delivery":       string(status),
			})
		}
	}
}

// GetLatestVerdict возвращает вердикт последней транзакции
func (s *TransactionServiceImpl) GetLatestVerdict() (bool, error) {
	latest, err := s.repo.Latest()
	if err != nil {
		return false, err
	}
	if latest == nil {
		return false, nil
	}
	return latest.Anomalous, nil
}

// GetAllTransactions возвращает историю транзакций
func (s *TransactionServiceImpl) GetAllTransactions(limit int) ([]*models.Transaction, error) {
	return s.repo.GetAll(limit)
}

// ClearAllTransactions очищает леджер
func (s *TransactionServiceImpl) ClearAllTransactions() error {
	if err := s.repo.ClearAll(); err != nil {
		return err
	}

	logger.LogEvent(logger.EventLedgerCleared, "fraud-monitoring-service", "ledger", map[string]interface{}{
		"action": "ledger_cleared",
	})
	return nil
}
