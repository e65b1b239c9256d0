package memory

import (
	"context"
	"sync"

	"github.com/interiorhq/interman-api/internal/application/issue"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ issue.TxRunner = (*TxRunner)(nil)

// TxRunner gives the issue flow the same all-or-nothing behavior the SQL
// backend gets from a database transaction: a store-wide lock serializes
// concurrent issues, and on error every touched table is rewound to its
// pre-call snapshot.
type TxRunner struct {
	mu        sync.Mutex
	issues    *MaterialIssueRepo
	materials *MaterialRepo
	logs      *MaterialLogRepo
}

// NewTxRunner builds a runner over the shared in-memory stores.
func NewTxRunner(issues *MaterialIssueRepo, materials *MaterialRepo, logs *MaterialLogRepo) *TxRunner {
	return &TxRunner{issues: issues, materials: materials, logs: logs}
}

// Run snapshots the three stores, invokes fn, and restores the snapshots when
// fn fails.
func (r *TxRunner) Run(ctx context.Context, fn func(
	issueRepo repository.MaterialIssueRepository,
	materialRepo repository.MaterialRepository,
	logRepo repository.MaterialLogRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	issueItems, issueOrder := r.issues.t.snapshot()
	materialItems, materialOrder := r.materials.t.snapshot()
	logItems, logOrder := r.logs.t.snapshot()

	if err := fn(r.issues, r.materials, r.logs); err != nil {
		r.issues.t.restore(issueItems, issueOrder)
		r.materials.t.restore(materialItems, materialOrder)
		r.logs.t.restore(logItems, logOrder)
		return err
	}
	return nil
}
