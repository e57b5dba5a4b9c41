package notify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraud-monitoring-system/internal/config"
)

func testConfig(providerURL string) *config.Config {
	return &config.Config{
		SMS: config.SMSConfig{
			ProviderURL: providerURL,
			APIKey:      "test-key",
			Sender:      "FRAUDMON",
		},
	}
}

func TestSMSNotifier_SendAlert_Delivered(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"api_key": r.PostForm.Get("api_key"),
			"from":    r.PostForm.Get("from"),
			"to":      r.PostForm.Get("to"),
			"text":    r.PostForm.Get("text"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewSMSNotifier(testConfig(server.URL))

	status, err := notifier.SendAlert("+919876543210", "Fraud alert: transaction TXN-001 flagged")
	require.NoError(t, err)

	assert.Equal(t, DeliveryDelivered, status)
	assert.Equal(t, "test-key", gotForm["api_key"])
	assert.Equal(t, "FRAUDMON", gotForm["from"])
	assert.Equal(t, "+919876543210", gotForm["to"])
	assert.NotEmpty(t, gotForm["text"])
}

func TestSMSNotifier_SendAlert_InvalidDestinationSimulated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid destination number"}`))
	}))
	defer server.Close()

	notifier := NewSMSNotifier(testConfig(server.URL))

	// Неверный номер не считается сбоем - доставка имитируется
	status, err := notifier.SendAlert("not-a-number", "test")
	require.NoError(t, err)
	assert.Equal(t, DeliverySimulated, status)
}

func TestSMSNotifier_SendAlert_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "provider exploded"}`))
	}))
	defer server.Close()

	notifier := NewSMSNotifier(testConfig(server.URL))

	status, err := notifier.SendAlert("+919876543210", "test")
	assert.Error(t, err)
	assert.Equal(t, DeliveryFailed, status)
}

func TestSMSNotifier_SendAlert_ProviderUnreachable(t *testing.T) {
	notifier := NewSMSNotifier(testConfig("http://127.0.0.1:1"))

	status, err := notifier.SendAlert("+919876543210", "test")
	assert.Error(t, err)
	assert.Equal(t, DeliveryFailed, status)
}

func TestIsInvalidDestination(t *testing.T) {
	assert.True(t, isInvalidDestination(400, "invalid destination number"))
	assert.True(t, isInvalidDestination(422, `{"message":"Invalid 'to' parameter"}`))
	assert.False(t, isInvalidDestination(500, "invalid destination number"))
	assert.False(t, isInvalidDestination(400, "rate limit exceeded"))
}
