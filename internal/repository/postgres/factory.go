package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/daehokimm/point-service/internal/repository"
)

type Repositories struct {
	Balances  repo.Balances
	Histories repo.Histories
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Balances:  &balancesRepo{pool},
		Histories: &historiesRepo{pool},
	}
}
