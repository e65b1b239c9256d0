package entity

import "time"

// Customer represents a client of the design firm. CreatedAt is set once at
// creation and preserved across edits.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
