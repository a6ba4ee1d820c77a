// Package seed loads demo accounts on startup. Everything goes through the
// update engine, so seeded balances and histories satisfy the same invariant
// as live traffic.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/daehokimm/point-service/internal/models"
	"github.com/daehokimm/point-service/internal/point"
	"github.com/daehokimm/point-service/internal/worker"
)

type op struct {
	accountID int64
	amount    int64
	typ       models.TransactionType
}

// Demo account fixtures: account 1 holds 5_000, account 2 holds 10_000 with a
// charge and a use on record, account 3 is left untouched (reads as zero).
var demoOps = [][]op{
	{
		{accountID: 1, amount: 5_000, typ: models.TxnCharge},
	},
	{
		{accountID: 2, amount: 15_000, typ: models.TxnCharge},
		{accountID: 2, amount: 5_000, typ: models.TxnUse},
	},
}

// Run replays the demo fixtures through the engine, one account per worker
// task. Per-account operation order is kept; accounts load in parallel.
func Run(ctx context.Context, svc *point.Service, wp *worker.Pool, log *slog.Logger) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, ops := range demoOps {
		ops := ops
		wg.Add(1)
		wp.Submit(func() {
			defer wg.Done()
			for _, o := range ops {
				var err error
				switch o.typ {
				case models.TxnCharge:
					_, err = svc.Charge(ctx, o.accountID, o.amount)
				case models.TxnUse:
					_, err = svc.Use(ctx, o.accountID, o.amount)
				}
				if err != nil {
					mu.Lock()
					errs = append(errs, fmt.Errorf("seed account %d: %w", o.accountID, err))
					mu.Unlock()
					return
				}
			}
		})
	}
	wg.Wait()

	if len(errs) > 0 {
		return errs[0]
	}
	log.Info("demo data seeded", "accounts", len(demoOps))
	return nil
}
