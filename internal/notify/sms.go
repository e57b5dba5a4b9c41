package notify

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fraud-monitoring-system/internal/config"
)

// SMSNotifier отправляет уведомления через внешнего SMS-провайдера.
// Ошибка класса "неверный номер получателя" не считается сбоем:
// доставка помечается как имитированная, вызывающий код продолжает работу.
type SMSNotifier struct {
	providerURL string
	apiKey      string
	sender      string
	client      *http.Client
}

// NewSMSNotifier создает клиент SMS-провайдера с ограниченным таймаутом
func NewSMSNotifier(cfg *config.Config) *SMSNotifier {
	return &SMSNotifier{
		providerURL: cfg.SMS.ProviderURL,
		apiKey:      cfg.SMS.APIKey,
		sender:      cfg.SMS.Sender,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// SendAlert отправляет текстовое уведомление на указанный номер
func (n *SMSNotifier) SendAlert(phone, message string) (DeliveryStatus, error) {
	form := url.Values{}
	form.Set("api_key", n.apiKey)
	form.Set("from", n.sender)
	form.Set("to", phone)
	form.Set("text", message)

	resp, err := n.client.PostForm(n.providerURL, form)
	if err != nil {
		return DeliveryFailed, fmt.Errorf("failed to reach SMS provider: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return DeliveryDelivered, nil
	}

	if isInvalidDestination(resp.StatusCode, string(body)) {
		// Провайдер не принимает этот номер - имитируем доставку,
		// транзакция от этого не отклоняется
		log.Printf("SMS provider rejected destination %s, marking delivery as simulated", phone)
		return DeliverySimulated, nil
	}

	return DeliveryFailed, fmt.Errorf("SMS provider returned status %d: %s", resp.StatusCode, string(body))
}

// isInvalidDestination распознает ошибки провайдера о неверном номере получателя
func isInvalidDestination(statusCode int, body string) bool {
	if statusCode != http.StatusBadRequest && statusCode != http.StatusUnprocessableEntity {
		return false
	}
	lower := strings.ToLower(body)
	return strings.Contains(lower, "invalid") &&
		(strings.Contains(lower, "number") || strings.Contains(lower, "destination") || strings.Contains(lower, "to"))
}
