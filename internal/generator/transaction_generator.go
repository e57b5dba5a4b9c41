package generator

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"fraud-monitoring-system/internal/geo"
	"fraud-monitoring-system/internal/models"
)

var cardTypes = []string{"visa", "mastercard", "rupay", "amex"}

var currencies = []string{"INR", "USD", "EUR"}

type TransactionGenerator struct {
	// mu защищает rand: генератор используется из параллельных запросов
	mu   sync.Mutex
	rand *rand.Rand
}

func NewTransactionGenerator() *TransactionGenerator {
	return &TransactionGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateRandomTransaction генерирует случайную транзакцию для тестирования
func (g *TransactionGenerator) GenerateRandomTransaction() *models.SubmitRequest {
	g.mu.Lock()
	defer g.mu.Unlock()

	baseID := time.Now().UnixNano() + g.rand.Int63n(1000000000)

	locations := make([]string, 0)
	for name := range geo.KnownLocations() {
		locations = append(locations, name)
	}

	return &models.SubmitRequest{
		TransactionID:    fmt.Sprintf("TXN-AUTO-%d", baseID),
		SenderAccount:    fmt.Sprintf("ACC%d", 1000000000+g.rand.Int63n(8999999999)),
		RecipientAccount: fmt.Sprintf("ACC%d", 1000000000+g.rand.Int63n(8999999999)),
		Amount:           float64(100 + g.rand.Intn(200000)),
		Currency:         currencies[g.rand.Intn(len(currencies))],
		Location:         locations[g.rand.Intn(len(locations))],
		CardType:         cardTypes[g.rand.Intn(len(cardTypes))],
	}
}
