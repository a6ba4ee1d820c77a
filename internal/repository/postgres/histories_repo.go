package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daehokimm/point-service/internal/models"
)

type historiesRepo struct{ pool *pgxpool.Pool }

func (r *historiesRepo) Insert(ctx context.Context, accountID, amount int64, typ models.TransactionType, at time.Time) (models.PointHistory, error) {
	var h models.PointHistory
	err := r.pool.QueryRow(ctx,
		`INSERT INTO histories(account_id, amount, type, created_at)
		 VALUES($1, $2, $3, $4)
		 RETURNING record_id, account_id, amount, type, created_at`,
		accountID, amount, typ, at,
	).Scan(&h.RecordID, &h.AccountID, &h.Amount, &h.Type, &h.CreatedAt)
	return h, err
}

func (r *historiesRepo) ListByAccount(ctx context.Context, accountID int64) ([]models.PointHistory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT record_id, account_id, amount, type, created_at
		   FROM histories
		  WHERE account_id=$1
		  ORDER BY record_id`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PointHistory
	for rows.Next() {
		var h models.PointHistory
		if err := rows.Scan(&h.RecordID, &h.AccountID, &h.Amount, &h.Type, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
