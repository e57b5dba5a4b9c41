package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fraud-monitoring-system/internal/blacklist"
	"fraud-monitoring-system/internal/generator"
	"fraud-monitoring-system/internal/logger"
	"fraud-monitoring-system/internal/models"
	"fraud-monitoring-system/internal/services"
	"fraud-monitoring-system/internal/storage"
)

type Handlers struct {
	transactionService services.TransactionService
	registry           blacklist.Registry
	generator          *generator.TransactionGenerator
	startedAt          time.Time
}

// Создает новые обработчики REST API
func NewHandlers(transactionService services.TransactionService, registry blacklist.Registry) *Handlers {
	return &Handlers{
		transactionService: transactionService,
		registry:           registry,
		generator:          generator.NewTransactionGenerator(),
		startedAt:          time.Now(),
	}
}

// SubmitTransaction обрабатывает POST запрос на проверку транзакции
// @Summary Отправить транзакцию на проверку
// @Description Принимает транзакцию, проверяет её движком правил против истории и сохраняет в леджер с окончательным вердиктом. При мошенническом вердикте отправитель добавляется в черный список, отправляется SMS и событие в Kafka.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.SubmitRequest true "Данные транзакции"
// @Success 201 {object} models.SubmitResponse "Вердикт по транзакции"
// @Failure 400 {object} map[string]string "Bad Request - отсутствует обязательное поле"
// @Failure 409 {object} map[string]string "Conflict - transaction_id уже существует"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /submit [post]
func (h *Handlers) SubmitTransaction(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.transactionService.SubmitTransaction(&req, c.ClientIP())
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateTransaction) {
			c.JSON(http.StatusConflict, gin.H{"error": "Transaction with this transaction_id already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetAnomalous возвращает вердикт последней транзакции
// @Summary Вердикт последней транзакции
// @Description Возвращает булев вердикт самой свежей транзакции (false для пустого леджера)
// @Tags transactions
// @Produce json
// @Success 200 {object} map[string]interface{} "Вердикт"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /anomalous [get]
func (h *Handlers) GetAnomalous(c *gin.Context) {
	anomalous, err := h.transactionService.GetLatestVerdict()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get latest verdict"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"anomalous": anomalous})
}

// GetData возвращает историю транзакций
// @Summary Получить историю транзакций
// @Description Возвращает транзакции леджера по возрастанию времени (номера телефонов не раскрываются). При лимите отдаются самые свежие записи.
// @Tags transactions
// @Produce json
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Success 200 {object} map[string]interface{} "История транзакций"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /data [get]
func (h *Handlers) GetData(c *gin.Context) {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	transactions, err := h.transactionService.GetAllTransactions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions"})
		return
	}

	if transactions == nil {
		transactions = []*models.Transaction{}
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetBlacklist возвращает черный список
// @Summary Получить черный список
// @Tags blacklist
// @Produce json
// @Success 200 {object} map[string]interface{} "Записи черного списка"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /blacklist [get]
func (h *Handlers) GetBlacklist(c *gin.Context) {
	entries, err := h.registry.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get blacklist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blacklist": entries})
}

// AddToBlacklist добавляет счет в черный список
// @Summary Добавить счет в черный список
// @Tags blacklist
// @Accept json
// @Produce json
// @Param entry body models.BlacklistRequest true "Счет и причины"
// @Success 201 {object} map[string]string "Счет добавлен"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /blacklist [post]
func (h *Handlers) AddToBlacklist(c *gin.Context) {
	var req models.BlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reasons := req.Reasons
	if len(reasons) == 0 {
		reasons = []string{"manually flagged"}
	}

	if err := h.registry.Add(req.AccountNumber, reasons); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to blacklist"})
		return
	}

	logger.LogEvent(logger.EventBlacklistUpdated, "fraud-monitoring-service", "blacklist", map[string]interface{}{
		"account_number": req.AccountNumber,
		"action":         "added",
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Account added to blacklist"})
}

// RemoveFromBlacklist удаляет счет из черного списка
// @Summary Удалить счет из черного списка
// @Description Удаление отсутствующего счета не является ошибкой
// @Tags blacklist
// @Produce json
// @Param account_number path string true "Номер счета"
// @Success 200 {object} map[string]string "Счет удален"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /blacklist/{account_number} [delete]
func (h *Handlers) RemoveFromBlacklist(c *gin.Context) {
	accountNumber := c.Param("account_number")

	if err := h.registry.Remove(accountNumber); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from blacklist"})
		return
	}

	logger.LogEvent(logger.EventBlacklistUpdated, "fraud-monitoring-service", "blacklist", map[string]interface{}{
		"account_number": accountNumber,
		"action":         "removed",
	})

	c.JSON(http.StatusOK, gin.H{"message": "Account removed from blacklist"})
}

// ClearLedger очищает леджер транзакций
// @Summary Очистить леджер
// @Description Удаляет все транзакции (тестовая/административная операция)
// @Tags transactions
// @Produce json
// @Success 200 {object} map[string]interface{} "Леджер очищен"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /clear [delete]
func (h *Handlers) ClearLedger(c *gin.Context) {
	if err := h.transactionService.ClearAllTransactions(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear ledger"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "All transactions cleared successfully",
		"clear_storage": true,
	})
}

// HealthCheck возвращает состояние сервиса
// @Summary Проверка работоспособности
// @Tags service
// @Produce json
// @Success 200 {object} map[string]interface{} "Состояние сервиса"
// @Router /health [get]
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"counters":       logger.GetStats(),
	})
}

// GenerateRandomTransaction генерирует случайную транзакцию
// @Summary Сгенерировать случайную транзакцию
// @Description Генерирует случайную транзакцию для тестирования
// @Tags transactions
// @Produce json
// @Success 200 {object} models.SubmitRequest "Сгенерированная транзакция"
// @Router /generate [get]
func (h *Handlers) GenerateRandomTransaction(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.GenerateRandomTransaction())
}
