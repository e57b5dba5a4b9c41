package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fraud-monitoring-system/internal/blacklist"
	blacklistmocks "fraud-monitoring-system/internal/blacklist/mocks"
	"fraud-monitoring-system/internal/config"
	"fraud-monitoring-system/internal/models"
	"fraud-monitoring-system/internal/rules"
	"fraud-monitoring-system/internal/services"
	servicemocks "fraud-monitoring-system/internal/services/mocks"
	"fraud-monitoring-system/internal/storage"
	"fraud-monitoring-system/internal/storage/memory"
)

func setupTestRouter(handlers *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/submit", handlers.SubmitTransaction)
	router.GET("/anomalous", handlers.GetAnomalous)
	router.GET("/data", handlers.GetData)
	router.GET("/blacklist", handlers.GetBlacklist)
	router.POST("/blacklist", handlers.AddToBlacklist)
	router.DELETE("/blacklist/:account_number", handlers.RemoveFromBlacklist)
	router.DELETE("/clear", handlers.ClearLedger)
	router.GET("/generate", handlers.GenerateRandomTransaction)
	router.GET("/health", handlers.HealthCheck)

	return router
}

func submitBody() models.SubmitRequest {
	return models.SubmitRequest{
		TransactionID:    "TXN-001",
		SenderAccount:    "ACC-SENDER",
		RecipientAccount: "ACC-RECIPIENT",
		Amount:           500,
		Currency:         "INR",
		Location:         "chennai",
		CardType:         "visa",
	}
}

func TestHandlers_SubmitTransaction_Success(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	handlers := NewHandlers(mockService, nil)
	router := setupTestRouter(handlers)

	response := &models.SubmitResponse{
		Success:       true,
		Anomalous:     false,
		Reasons:       []string{},
		TransactionID: "TXN-001",
	}
	mockService.On("SubmitTransaction", mock.AnythingOfType("*models.SubmitRequest"), mock.AnythingOfType("string")).Return(response, nil)

	body, _ := json.Marshal(submitBody())
	req := httptest.NewRequest("POST", "/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var result models.SubmitResponse
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.Anomalous)
	assert.Equal(t, "TXN-001", result.TransactionID)

	mockService.AssertExpectations(t)
}

func TestHandlers_SubmitTransaction_MissingField(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	handlers := NewHandlers(mockService, nil)
	router := setupTestRouter(handlers)

	reqBody := submitBody()
	reqBody.SenderAccount = ""

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SubmitTransaction", mock.Anything, mock.Anything)
}

func TestHandlers_SubmitTransaction_Duplicate(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	handlers := NewHandlers(mockService, nil)
	router := setupTestRouter(handlers)

	mockService.On("SubmitTransaction", mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicateTransaction)

	body, _ := json.Marshal(submitBody())
	req := httptest.NewRequest("POST", "/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlers_SubmitTransaction_InternalError(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	handlers := NewHandlers(mockService, nil)
	router := setupTestRouter(handlers)

	mockService.On("SubmitTransaction", mock.Anything, mock.Anything).Return(nil, errors.New("storage failure"))

	body, _ := json.Marshal(submitBody())
	req := httptest.NewRequest("POST", "/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandlers_GetAnomalous(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	handlers := NewHandlers(mockService, nil)
	router := setupTestRouter(handlers)

	mockService.On("GetLatestVerdict").Return(true, nil)

	req := httptest.NewRequest("GET", "/anomalous", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result["anomalous"])
}

func TestHandlers_GetData_Empty(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	handlers := NewHandlers(mockService, nil)
	router := setupTestRouter(handlers)

	mockService.On("GetAllTransactions", 100).Return([]*models.Transaction{}, nil)

	req := httptest.NewRequest("GET", "/data", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][]models.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotNil(t, result["transactions"])
	assert.Empty(t, result["transactions"])
}

func TestHandlers_GetData_LimitQuery(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	handlers := NewHandlers(mockService, nil)
	router := setupTestRouter(handlers)

	mockService.On("GetAllTransactions", 5).Return([]*models.Transaction{}, nil)

	req := httptest.NewRequest("GET", "/data?limit=5", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandlers_Blacklist_AddListRemove(t *testing.T) {
	mockRegistry := new(blacklistmocks.MockRegistry)
	handlers := NewHandlers(new(servicemocks.MockTransactionService), mockRegistry)
	router := setupTestRouter(handlers)

	mockRegistry.On("Add", "ACC-BAD", []string{"manually flagged"}).Return(nil)
	mockRegistry.On("List").Return([]models.BlacklistEntry{{AccountNumber: "ACC-BAD"}}, nil)
	mockRegistry.On("Remove", "ACC-BAD").Return(nil)

	// Добавление без причин получает причину по умолчанию
	body, _ := json.Marshal(models.BlacklistRequest{AccountNumber: "ACC-BAD"})
	req := httptest.NewRequest("POST", "/blacklist", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest("GET", "/blacklist", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][]models.BlacklistEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result["blacklist"], 1)
	assert.Equal(t, "ACC-BAD", result["blacklist"][0].AccountNumber)

	req = httptest.NewRequest("DELETE", "/blacklist/ACC-BAD", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	mockRegistry.AssertExpectations(t)
}

func TestHandlers_AddToBlacklist_MissingAccount(t *testing.T) {
	mockRegistry := new(blacklistmocks.MockRegistry)
	handlers := NewHandlers(new(servicemocks.MockTransactionService), mockRegistry)
	router := setupTestRouter(handlers)

	req := httptest.NewRequest("POST", "/blacklist", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRegistry.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestHandlers_HealthCheck(t *testing.T) {
	handlers := NewHandlers(new(servicemocks.MockTransactionService), nil)
	router := setupTestRouter(handlers)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "ok", result["status"])
	assert.Contains(t, result, "uptime_seconds")
	assert.Contains(t, result, "counters")
}

func TestHandlers_GenerateRandomTransaction(t *testing.T) {
	handlers := NewHandlers(new(servicemocks.MockTransactionService), nil)
	router := setupTestRouter(handlers)

	req := httptest.NewRequest("GET", "/generate", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.SubmitRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.TransactionID)
	assert.NotEmpty(t, result.SenderAccount)
	assert.Greater(t, result.Amount, 0.0)
}

// TestHandlers_SubmitAndClearFlow проверяет полный цикл с реальным
// сервисом и хранилищами в памяти
func TestHandlers_SubmitAndClearFlow(t *testing.T) {
	repo := memory.NewRepository()
	registry := blacklist.NewMemoryRegistry()
	engine := rules.NewEngine(registry, nil, config.DefaultRulesConfig())
	service := services.NewTransactionService(repo, registry, engine, nil, nil)

	handlers := NewHandlers(service, registry)
	router := setupTestRouter(handlers)

	body, _ := json.Marshal(submitBody())
	req := httptest.NewRequest("POST", "/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// Повторная отправка того же transaction_id отклоняется
	req = httptest.NewRequest("POST", "/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusConflict, w.Code)

	req = httptest.NewRequest("GET", "/data", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var data map[string][]models.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Len(t, data["transactions"], 1)

	// Очистка леджера
	req = httptest.NewRequest("DELETE", "/clear", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/data", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Empty(t, data["transactions"])

	req = httptest.NewRequest("GET", "/anomalous", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var verdict map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verdict))
	assert.False(t, verdict["anomalous"])
}
