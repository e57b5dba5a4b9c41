package rules

import (
	"time"

	"fraud-monitoring-system/internal/blacklist"
	"fraud-monitoring-system/internal/config"
	"fraud-monitoring-system/internal/geo"
	"fraud-monitoring-system/internal/models"
	"fraud-monitoring-system/internal/stats"
)

// Причины срабатывания правил. Порядок правил фиксирован и определяет
// порядок причин в вердикте; правила независимы и не прерывают друг друга.
const (
	ReasonBlacklistedAccount   = "blacklisted account"
	ReasonBlacklistedRecipient = "blacklisted recipient"
	ReasonOddHours             = "odd hours"
	ReasonAbnormalAmount       = "abnormal amount"
	ReasonLocationChange       = "implausible location change"
	ReasonRapidTransactions    = "rapid consecutive transactions"
	ReasonHighAmount           = "unusually high amount"
)

// IPResolver резолвит координаты по IP-адресу клиента.
// Реализуется типом geo.IPResolver.
type IPResolver interface {
	ResolveIP(ip string) (geo.Coordinates, bool)
}

// Engine - движок эвристических правил. Он не имеет собственного
// состояния: читает черный список и историю, но никогда не пишет.
// Запись вердикта и побочные эффекты выполняет сервисный слой.
type Engine struct {
	registry   blacklist.Registry
	ipResolver IPResolver
	cfg        config.RulesConfig
}

// NewEngine создает новый движок правил.
// ipResolver может быть nil, тогда координаты берутся только из таблицы мест.
func NewEngine(registry blacklist.Registry, ipResolver IPResolver, cfg config.RulesConfig) *Engine {
	return &Engine{
		registry:   registry,
		ipResolver: ipResolver,
		cfg:        cfg,
	}
}

// Evaluate проверяет транзакцию против истории и возвращает вердикт
// со списком причин. history - транзакции того же отправителя или типа
// карты, отсортированные по возрастанию временной метки, без текущей.
func (e *Engine) Evaluate(tx *models.Transaction, history []*models.Transaction) (*models.Evaluation, error) {
	reasons := []string{}

	// 1. Проверка черного списка: отправитель и получатель
	senderListed, err := e.registry.Contains(tx.SenderAccount)
	if err != nil {
		return nil, err
	}
	if senderListed {
		reasons = append(reasons, ReasonBlacklistedAccount)
	}

	recipientListed, err := e.registry.Contains(tx.RecipientAccount)
	if err != nil {
		return nil, err
	}
	if recipientListed {
		reasons = append(reasons, ReasonBlacklistedRecipient)
	}

	// 2. Проверка необычного времени (ночные операции: 00:00 - 04:00)
	hour := tx.Timestamp.Hour()
	if hour >= 0 && hour < 4 {
		reasons = append(reasons, ReasonOddHours)
	}

	// 3. Статистическая проверка суммы по окну прошлых сумм
	if e.isAbnormalAmount(tx, history) {
		reasons = append(reasons, ReasonAbnormalAmount)
	}

	// 4. Географический дрейф относительно последнего доверенного места
	if e.isImplausibleLocationChange(tx, history) {
		reasons = append(reasons, ReasonLocationChange)
	}

	// 5. Проверка частоты операций отправителя
	if e.isRapidSubmission(tx, history) {
		reasons = append(reasons, ReasonRapidTransactions)
	}

	// 6. Проверка абсолютного потолка суммы
	if tx.Amount > e.cfg.HighAmountCeiling {
		reasons = append(reasons, ReasonHighAmount)
	}

	return &models.Evaluation{
		Anomalous:   len(reasons) > 0,
		Reasons:     reasons,
		EvaluatedAt: time.Now(),
	}, nil
}

// isAbnormalAmount проверяет сумму против окна последних сумм того же
// отправителя или типа карты. Меньше двух выборок - проверка не
// срабатывает (fail open).
func (e *Engine) isAbnormalAmount(tx *models.Transaction, history []*models.Transaction) bool {
	amounts := make([]float64, 0, len(history))
	for _, prev := range history {
		amounts = append(amounts, prev.Amount)
	}

	// Берем последние N сумм
	if len(amounts) > e.cfg.AmountWindowSize {
		amounts = amounts[len(amounts)-e.cfg.AmountWindowSize:]
	}

	return stats.IsOutlier(amounts, tx.Amount, e.cfg.ZScoreThreshold)
}

// isImplausibleLocationChange сравнивает текущие координаты с последним
// доверенным (не аномальным) местом. Порог - фиксированное расстояние,
// без модели скорости перемещения. Неизвестные координаты с любой
// стороны - проверка не срабатывает (fail open).
func (e *Engine) isImplausibleLocationChange(tx *models.Transaction, history []*models.Transaction) bool {
	current, ok := e.resolveCoordinates(tx)
	if !ok {
		return false
	}

	// Последнее доверенное место: самая свежая не аномальная транзакция
	// с распознанными координатами
	for i := len(history) - 1; i >= 0; i-- {
		prev := history[i]
		if prev.Anomalous {
			continue
		}
		trusted, ok := e.resolveCoordinates(prev)
		if !ok {
			continue
		}
		return geo.Distance(trusted, current) > e.cfg.GeoDistanceKm
	}

	return false
}

// isRapidSubmission считает транзакции отправителя в скользящем окне,
// включая текущую
func (e *Engine) isRapidSubmission(tx *models.Transaction, history []*models.Transaction) bool {
	windowStart := tx.Timestamp.Add(-time.Duration(e.cfg.VelocityWindowMin) * time.Minute)

	count := 1 // текущая транзакция
	for _, prev := range history {
		if prev.SenderAccount != tx.SenderAccount {
			continue
		}
		if prev.Timestamp.Before(windowStart) {
			continue
		}
		count++
	}

	return count >= e.cfg.VelocityThreshold
}

// resolveCoordinates возвращает координаты транзакции: сначала по
// названию места, затем по IP-адресу клиента
func (e *Engine) resolveCoordinates(tx *models.Transaction) (geo.Coordinates, bool) {
	if coords, ok := geo.Resolve(tx.Location); ok {
		return coords, true
	}
	if e.ipResolver != nil && tx.ClientIP != "" {
		return e.ipResolver.ResolveIP(tx.ClientIP)
	}
	return geo.Coordinates{}, false
}
