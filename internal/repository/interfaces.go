package repository

import (
	"context"
	"time"

	"github.com/daehokimm/point-service/internal/models"
)

// Balances is a plain key-value view of account balances. Each call is atomic
// on its own but the store provides no multi-step atomicity; serializing a
// read-modify-write is the caller's job.
type Balances interface {
	// Get returns the stored balance, or a zero-valued snapshot for an
	// account that has never been written.
	Get(ctx context.Context, accountID int64) (models.PointBalance, error)
	Upsert(ctx context.Context, accountID, amount int64) (models.PointBalance, error)
}

// Histories is an append-only record log. Insert assigns the record id;
// ListByAccount returns records in insertion order.
type Histories interface {
	Insert(ctx context.Context, accountID, amount int64, typ models.TransactionType, at time.Time) (models.PointHistory, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.PointHistory, error)
}
