package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PledgeBoard_Go/internal/database/postgres"
	"github.com/osse101/PledgeBoard_Go/internal/repository"
)

// Repositories holds the repository implementations used by the application
type Repositories struct {
	Accounts repository.Account
	Tips     repository.Tip
}

// InitializeRepositories creates the Postgres-backed repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Accounts: postgres.NewAccountRepository(dbPool),
		Tips:     postgres.NewTipRepository(dbPool),
	}
}
