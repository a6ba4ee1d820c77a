package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daehokimm/point-service/internal/models"
)

type balancesRepo struct{ pool *pgxpool.Pool }

func (r *balancesRepo) Get(ctx context.Context, accountID int64) (models.PointBalance, error) {
	var b models.PointBalance
	err := r.pool.QueryRow(ctx,
		`SELECT account_id, amount, last_updated_at
		   FROM balances
		  WHERE account_id=$1`,
		accountID,
	).Scan(&b.AccountID, &b.Amount, &b.LastUpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.PointBalance{AccountID: accountID}, nil
	}
	return b, err
}

func (r *balancesRepo) Upsert(ctx context.Context, accountID, amount int64) (models.PointBalance, error) {
	var b models.PointBalance
	err := r.pool.QueryRow(ctx,
		`INSERT INTO balances(account_id, amount, last_updated_at)
		 VALUES($1, $2, now())
		 ON CONFLICT (account_id) DO UPDATE
		    SET amount = EXCLUDED.amount,
		        last_updated_at = now()
		 RETURNING account_id, amount, last_updated_at`,
		accountID, amount,
	).Scan(&b.AccountID, &b.Amount, &b.LastUpdatedAt)
	return b, err
}
