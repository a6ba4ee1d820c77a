package point

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/daehokimm/point-service/internal/metrics"
	"github.com/daehokimm/point-service/internal/models"
	"github.com/daehokimm/point-service/internal/repository"
)

// Service is the serialized balance-update engine. All mutations for one
// account happen under that account's lock, so the stores themselves need no
// cross-call guarantees.
type Service struct {
	balances  repository.Balances
	histories repository.Histories
	locks     *LockRegistry
	log       *slog.Logger
	now       func() time.Time
}

func NewService(balances repository.Balances, histories repository.Histories, log *slog.Logger) *Service {
	return &Service{
		balances:  balances,
		histories: histories,
		locks:     NewLockRegistry(),
		log:       log,
		now:       time.Now,
	}
}

func (s *Service) GetBalance(ctx context.Context, accountID int64) (models.PointBalance, error) {
	b, err := s.balances.Get(ctx, accountID)
	if err != nil {
		return models.PointBalance{}, fmt.Errorf("read balance: %w", err)
	}
	return b, nil
}

func (s *Service) GetHistory(ctx context.Context, accountID int64) ([]models.PointHistory, error) {
	hs, err := s.histories.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return hs, nil
}

func (s *Service) Charge(ctx context.Context, accountID, amount int64) (models.PointBalance, error) {
	return s.updateBalance(ctx, accountID, amount, models.TxnCharge)
}

func (s *Service) Use(ctx context.Context, accountID, amount int64) (models.PointBalance, error) {
	return s.updateBalance(ctx, accountID, amount, models.TxnUse)
}

// updateBalance runs the full read-validate-mutate-record sequence under the
// account's exclusive lock:
//
// 1) Static amount validation (rejects before any store access).
// 2) Read current balance (zero for an unknown account).
// 3) Balance-dependent validation (overdraw, ceiling).
// 4) Append the history record.
// 5) Write the new balance.
//
// The history append comes before the balance write, so an observer reading
// both stores can never see a balance whose record is missing. The lock is
// released on every exit path; a store failure propagates to the caller with
// no retry and no partial state, since nothing was written before it.
func (s *Service) updateBalance(ctx context.Context, accountID, amount int64, typ models.TransactionType) (models.PointBalance, error) {
	// Static validation is pure, so it is hoisted above Acquire: a bad amount
	// is rejected without ever contending for the account's lock.
	if err := validateAmount(amount, typ); err != nil {
		s.count(typ, err)
		return models.PointBalance{}, err
	}

	waitStart := time.Now()
	release := s.locks.Acquire(accountID)
	defer release()
	metrics.LockWaitSeconds.Observe(time.Since(waitStart).Seconds())

	// Once the lock is held the operation runs to completion. A caller
	// cancellation landing between the history append and the balance write
	// would otherwise commit a record with no matching balance.
	ctx = context.WithoutCancel(ctx)

	current, err := s.balances.Get(ctx, accountID)
	if err != nil {
		s.count(typ, err)
		return models.PointBalance{}, fmt.Errorf("read balance: %w", err)
	}

	if err := validateBalance(current.Amount, amount, typ); err != nil {
		s.count(typ, err)
		return models.PointBalance{}, err
	}

	newAmount := current.Amount + amount
	if typ == models.TxnUse {
		newAmount = current.Amount - amount
	}

	if _, err := s.histories.Insert(ctx, accountID, amount, typ, s.now()); err != nil {
		s.count(typ, err)
		return models.PointBalance{}, fmt.Errorf("append history: %w", err)
	}

	updated, err := s.balances.Upsert(ctx, accountID, newAmount)
	if err != nil {
		s.count(typ, err)
		return models.PointBalance{}, fmt.Errorf("write balance: %w", err)
	}

	s.log.Debug("balance updated",
		"account_id", accountID, "type", typ, "amount", amount, "balance", updated.Amount)
	s.count(typ, nil)
	return updated, nil
}

func (s *Service) count(typ models.TransactionType, err error) {
	var outcome string
	switch {
	case err == nil:
		outcome = "ok"
	case errors.Is(err, ErrInvalidAmount):
		outcome = "invalid_amount"
	case errors.Is(err, ErrInsufficientBalance):
		outcome = "insufficient_balance"
	case errors.Is(err, ErrBalanceLimitExceeded):
		outcome = "balance_limit_exceeded"
	default:
		outcome = "store_error"
	}
	metrics.OperationsTotal.WithLabelValues(string(typ), outcome).Inc()
}
