package generator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraud-monitoring-system/internal/geo"
)

func TestNewTransactionGenerator(t *testing.T) {
	gen := NewTransactionGenerator()
	require.NotNil(t, gen)
	assert.NotNil(t, gen.rand)
}

func TestTransactionGenerator_GenerateRandomTransaction(t *testing.T) {
	gen := NewTransactionGenerator()

	req := gen.GenerateRandomTransaction()
	require.NotNil(t, req)

	assert.NotEmpty(t, req.TransactionID)
	assert.NotEmpty(t, req.SenderAccount)
	assert.NotEmpty(t, req.RecipientAccount)
	assert.NotEmpty(t, req.Currency)
	assert.NotEmpty(t, req.CardType)
	assert.Greater(t, req.Amount, 0.0)

	// Место всегда из таблицы известных мест
	_, ok := geo.Resolve(req.Location)
	assert.True(t, ok)
}

func TestTransactionGenerator_ConcurrentUse(t *testing.T) {
	gen := NewTransactionGenerator()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				req := gen.GenerateRandomTransaction()
				assert.NotEmpty(t, req.TransactionID)
				assert.Greater(t, req.Amount, 0.0)
			}
		}()
	}
	wg.Wait()
}

func TestTransactionGenerator_UniqueIDs(t *testing.T) {
	gen := NewTransactionGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		req := gen.GenerateRandomTransaction()
		assert.False(t, seen[req.TransactionID], "duplicate transaction_id %s", req.TransactionID)
		seen[req.TransactionID] = true
	}
}
