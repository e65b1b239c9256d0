package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interiorhq/interman-api/internal/application/issue"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ issue.TxRunner = (*TxRunner)(nil)

// TxRunner executes a unit of work inside one database transaction, handing fn
// repositories bound to that transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds a runner over the shared pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, invokes fn with tx-bound repositories, and commits
// when fn returns nil. Any error (including a panic unwound through the defer)
// rolls the whole unit back.
func (r *TxRunner) Run(ctx context.Context, fn func(
	issueRepo repository.MaterialIssueRepository,
	materialRepo repository.MaterialRepository,
	logRepo repository.MaterialLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = fn(
		NewMaterialIssueRepository(tx),
		NewMaterialRepository(tx),
		NewMaterialLogRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
