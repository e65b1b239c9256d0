package entity

import "time"

// Vendor represents a material supplier. Phone and Address are optional.
type Vendor struct {
	ID        string
	Name      string
	Phone     *string
	Address   *string
	CreatedAt time.Time
}
