package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/osse101/PledgeBoard_Go/internal/bootstrap"
	"github.com/osse101/PledgeBoard_Go/internal/config"
	"github.com/osse101/PledgeBoard_Go/internal/database"
	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/identity"
	"github.com/osse101/PledgeBoard_Go/internal/repository"
)

// dummyUsers are GitHub identities with stable ids for local development
var dummyUsers = []domain.Profile{
	{ExternalID: "1775515", Handle: "seed-alice", DisplayName: "Seed Alice"},
	{ExternalID: "1903357", Handle: "seed-bob", DisplayName: "Seed Bob"},
	{ExternalID: "1933953", Handle: "seed-carol", DisplayName: "Seed Carol"},
}

// sampleTip is tipper -> tippee by index into dummyUsers
type sampleTip struct {
	tipper, tippee int
	amount         string
}

var sampleTips = []sampleTip{
	{1, 0, "3.00"},
	{2, 0, "1.50"},
	{0, 2, "0.25"},
	{1, 2, "0.00"},
}

func main() {
	cfg, err := config.LoadTooling()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repos := bootstrap.InitializeRepositories(pool)
	ids, err := seed(context.Background(), identity.NewService(repos.Accounts, nil, nil), repos.Tips)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	for i, id := range ids {
		fmt.Printf("%-12s %s\n", dummyUsers[i].Handle, id)
	}
	fmt.Printf("Seeded %d accounts and %d tips.\n", len(ids), len(sampleTips))
}

// seed resolves every dummy user and appends the sample tips.
// Re-running supersedes the tips with identical amounts.
func seed(ctx context.Context, identitySvc identity.Service, tips repository.Tip) ([]string, error) {
	ids := make([]string, len(dummyUsers))
	for i, p := range dummyUsers {
		account, _, err := identitySvc.Resolve(ctx, domain.NetworkGitHub, p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p.Handle, err)
		}
		ids[i] = account.ID
	}

	for _, t := range sampleTips {
		amount, err := decimal.NewFromString(t.amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", t.amount, err)
		}
		if _, err := tips.AppendTip(ctx, ids[t.tipper], ids[t.tippee], amount); err != nil {
			return nil, fmt.Errorf("append tip %s -> %s: %w", dummyUsers[t.tipper].Handle, dummyUsers[t.tippee].Handle, err)
		}
	}
	return ids, nil
}
