package memory

import (
	"context"
	"time"

	"github.com/daehokimm/point-service/internal/models"
)

type Histories struct {
	table   *table
	nextID  int64
	entries map[int64][]models.PointHistory
}

func NewHistories(opts ...Option) *Histories {
	return &Histories{
		table:   newTable(opts...),
		nextID:  1,
		entries: make(map[int64][]models.PointHistory),
	}
}

// Insert assigns the next record id and appends. Ids increase in insertion
// order across all accounts.
func (s *Histories) Insert(ctx context.Context, accountID, amount int64, typ models.TransactionType, at time.Time) (models.PointHistory, error) {
	if err := s.table.enter(ctx); err != nil {
		return models.PointHistory{}, err
	}
	defer s.table.leave()

	h := models.PointHistory{
		RecordID:  s.nextID,
		AccountID: accountID,
		Amount:    amount,
		Type:      typ,
		CreatedAt: at,
	}
	s.nextID++
	s.entries[accountID] = append(s.entries[accountID], h)
	return h, nil
}

func (s *Histories) ListByAccount(ctx context.Context, accountID int64) ([]models.PointHistory, error) {
	if err := s.table.enter(ctx); err != nil {
		return nil, err
	}
	defer s.table.leave()

	src := s.entries[accountID]
	out := make([]models.PointHistory, len(src))
	copy(out, src)
	return out, nil
}
