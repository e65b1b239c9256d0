package entity

import "time"

// Reasons recorded on audit entries.
const (
	LogReasonIssue      = "issue"
	LogReasonCorrection = "correction"
)

// MaterialLog is an append-only audit entry for an inventory change. Entries are
// never updated or deleted; the repository port exposes no mutation beyond Append.
type MaterialLog struct {
	ID             string
	MaterialID     string
	QuantityChange int // negative for issues, positive for corrections
	ProjectID      *string
	UsedBy         string // User id
	Reason         string
	CreatedAt      time.Time
}
