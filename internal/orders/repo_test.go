package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
	dbtypes "github.com/IGN03/TMC/pkg/db/types"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  account_id TEXT,
  order_time TEXT NOT NULL DEFAULT '',
  pickup_location TEXT,
  items TEXT NOT NULL DEFAULT '[]',
  cost_of_items TEXT NOT NULL,
  tip TEXT NOT NULL,
  completed TEXT NOT NULL DEFAULT ''
);`
	require.NoError(t, db.Exec(schema).Error)
	require.NoError(t, db.Exec("DELETE FROM orders").Error)
	return db
}

func newTestOrder(accountID uuid.UUID, orderTime string) models.Order {
	return models.Order{
		AccountID: &accountID,
		OrderTime: orderTime,
		Items: dbtypes.CartEntries{
			{MenuItemID: uuid.New(), Quantity: 2},
		},
		CostOfItems: decimal.RequireFromString("19.98"),
		Tip:         decimal.Zero,
	}
}

func TestRepositoryCreateTxAssignsID(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	accountID := uuid.New()

	input := newTestOrder(accountID, time.Now().UTC().Format(time.RFC3339))
	input.ID = uuid.New() // caller-supplied ids never reach the insert

	var created *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		created, txErr = repo.CreateTx(tx, input)
		return txErr
	})
	require.NoError(t, err)
	require.NotEqual(t, input.ID, created.ID)

	loaded, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, accountID, *loaded.AccountID)
	require.True(t, loaded.CostOfItems.Equal(decimal.RequireFromString("19.98")))
	require.Len(t, loaded.Items, 1)
	require.Equal(t, 2, loaded.Items[0].Quantity)
}

func TestRepositoryListByAccountNewestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	accountID := uuid.New()

	for _, ts := range []string{"2026-01-01T10:00:00Z", "2026-01-03T10:00:00Z", "2026-01-02T10:00:00Z"} {
		err := db.Transaction(func(tx *gorm.DB) error {
			_, txErr := repo.CreateTx(tx, newTestOrder(accountID, ts))
			return txErr
		})
		require.NoError(t, err)
	}

	orders, err := repo.ListByAccount(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	require.Equal(t, "2026-01-03T10:00:00Z", orders[0].OrderTime)
	require.Equal(t, "2026-01-01T10:00:00Z", orders[2].OrderTime)
}

func TestRepositoryMarkCompletedOnlyOnce(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	var created *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		created, txErr = repo.CreateTx(tx, newTestOrder(uuid.New(), "2026-01-01T10:00:00Z"))
		return txErr
	})
	require.NoError(t, err)

	open, err := repo.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)

	done, err := repo.MarkCompleted(ctx, created.ID, "2026-01-01T11:00:00Z")
	require.NoError(t, err)
	require.True(t, done)

	// Second completion finds no open row.
	done, err = repo.MarkCompleted(ctx, created.ID, "2026-01-01T12:00:00Z")
	require.NoError(t, err)
	require.False(t, done)

	open, err = repo.ListOpen(ctx)
	require.NoError(t, err)
	require.Empty(t, open)

	loaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "2026-01-01T11:00:00Z", loaded.Completed)
}

func TestRepositoryMarkCompletedUnknownOrder(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	done, err := repo.MarkCompleted(context.Background(), uuid.New(), "2026-01-01T11:00:00Z")
	require.NoError(t, err)
	require.False(t, done)
}
