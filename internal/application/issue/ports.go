package issue

import (
	"context"

	"github.com/interiorhq/interman-api/internal/domain/repository"
)

// TxRunner runs fn with repositories bound to one transaction. Commit on nil,
// rollback otherwise — an issue either fully applies (event + stock decrement +
// audit entry) or not at all.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		issueRepo repository.MaterialIssueRepository,
		materialRepo repository.MaterialRepository,
		logRepo repository.MaterialLogRepository,
	) error) error
}
