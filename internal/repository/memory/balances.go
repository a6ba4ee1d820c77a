// Package memory provides map-backed store implementations. Each single call
// is atomic under the store's own mutex; nothing spanning two calls is, which
// is exactly the contract the update engine is written against.
package memory

import (
	"context"
	"time"

	"github.com/daehokimm/point-service/internal/models"
)

type Balances struct {
	table   *table
	entries map[int64]models.PointBalance
}

func NewBalances(opts ...Option) *Balances {
	return &Balances{
		table:   newTable(opts...),
		entries: make(map[int64]models.PointBalance),
	}
}

// Get returns a zero-valued snapshot for an account that was never written.
func (s *Balances) Get(ctx context.Context, accountID int64) (models.PointBalance, error) {
	if err := s.table.enter(ctx); err != nil {
		return models.PointBalance{}, err
	}
	defer s.table.leave()

	if b, ok := s.entries[accountID]; ok {
		return b, nil
	}
	return models.PointBalance{AccountID: accountID}, nil
}

func (s *Balances) Upsert(ctx context.Context, accountID, amount int64) (models.PointBalance, error) {
	if err := s.table.enter(ctx); err != nil {
		return models.PointBalance{}, err
	}
	defer s.table.leave()

	b := models.PointBalance{AccountID: accountID, Amount: amount, LastUpdatedAt: time.Now()}
	s.entries[accountID] = b
	return b, nil
}
