package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraud-monitoring-system/internal/models"
	"fraud-monitoring-system/internal/storage"
)

func testTransaction(id, sender, cardType string, ts time.Time) *models.Transaction {
	return &models.Transaction{
		TransactionID:    id,
		SenderAccount:    sender,
		RecipientAccount: "ACC-RCP",
		Amount:           100,
		Currency:         "INR",
		Location:         "chennai",
		CardType:         cardType,
		Timestamp:        ts,
		CreatedAt:        ts,
	}
}

func TestRepository_AppendAndGetAll(t *testing.T) {
	repo := NewRepository()
	now := time.Now()

	require.NoError(t, repo.Append(testTransaction("TXN-2", "ACC1", "visa", now.Add(time.Minute))))
	require.NoError(t, repo.Append(testTransaction("TXN-1", "ACC1", "visa", now)))

	all, err := repo.GetAll(0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Порядок по возрастанию временной метки, не по порядку вставки
	assert.Equal(t, "TXN-1", all[0].TransactionID)
	assert.Equal(t, "TXN-2", all[1].TransactionID)
}

func TestRepository_AppendDuplicate(t *testing.T) {
	repo := NewRepository()
	now := time.Now()

	require.NoError(t, repo.Append(testTransaction("TXN-1", "ACC1", "visa", now)))

	err := repo.Append(testTransaction("TXN-1", "ACC2", "amex", now))
	assert.ErrorIs(t, err, storage.ErrDuplicateTransaction)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_GetAll_LimitKeepsNewest(t *testing.T) {
	repo := NewRepository()
	now := time.Now()

	require.NoError(t, repo.Append(testTransaction("TXN-1", "ACC1", "visa", now)))
	require.NoError(t, repo.Append(testTransaction("TXN-2", "ACC1", "visa", now.Add(time.Minute))))
	require.NoError(t, repo.Append(testTransaction("TXN-3", "ACC1", "visa", now.Add(2*time.Minute))))

	// Лимит оставляет самые свежие записи, порядок остается по возрастанию
	limited, err := repo.GetAll(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "TXN-2", limited[0].TransactionID)
	assert.Equal(t, "TXN-3", limited[1].TransactionID)
}

func TestRepository_HistoryFilter(t *testing.T) {
	repo := NewRepository()
	now := time.Now()

	require.NoError(t, repo.Append(testTransaction("TXN-1", "ACC1", "visa", now)))
	require.NoError(t, repo.Append(testTransaction("TXN-2", "ACC2", "visa", now.Add(time.Minute))))
	require.NoError(t, repo.Append(testTransaction("TXN-3", "ACC3", "amex", now.Add(2*time.Minute))))

	// Фильтр по отправителю ИЛИ типу карты
	history, err := repo.History(storage.HistoryFilter{SenderAccount: "ACC1", CardType: "visa"})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "TXN-1", history[0].TransactionID)
	assert.Equal(t, "TXN-2", history[1].TransactionID)
}

func TestRepository_HistorySince(t *testing.T) {
	repo := NewRepository()
	now := time.Now()

	require.NoError(t, repo.Append(testTransaction("TXN-1", "ACC1", "visa", now.Add(-time.Hour))))
	require.NoError(t, repo.Append(testTransaction("TXN-2", "ACC1", "visa", now)))

	history, err := repo.History(storage.HistoryFilter{SenderAccount: "ACC1", Since: now.Add(-time.Minute)})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "TXN-2", history[0].TransactionID)
}

func TestRepository_Latest(t *testing.T) {
	repo := NewRepository()

	latest, err := repo.Latest()
	require.NoError(t, err)
	assert.Nil(t, latest)

	now := time.Now()
	require.NoError(t, repo.Append(testTransaction("TXN-1", "ACC1", "visa", now)))
	require.NoError(t, repo.Append(testTransaction("TXN-2", "ACC1", "visa", now.Add(time.Minute))))

	latest, err = repo.Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "TXN-2", latest.TransactionID)
}

func TestRepository_ClearAll(t *testing.T) {
	repo := NewRepository()
	now := time.Now()

	require.NoError(t, repo.Append(testTransaction("TXN-1", "ACC1", "visa", now)))
	require.NoError(t, repo.ClearAll())

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// После очистки тот же transaction_id можно записать снова
	assert.NoError(t, repo.Append(testTransaction("TXN-1", "ACC1", "visa", now)))
}

func TestRepository_ReturnsClones(t *testing.T) {
	repo := NewRepository()
	now := time.Now()

	require.NoError(t, repo.Append(testTransaction("TXN-1", "ACC1", "visa", now)))

	all, err := repo.GetAll(0)
	require.NoError(t, err)
	all[0].Amount = 999999

	again, err := repo.GetAll(0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, again[0].Amount)
}
