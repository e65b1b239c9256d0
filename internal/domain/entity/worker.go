package entity

import "time"

// Worker represents a site worker on the roster. Phone and Trade are optional.
type Worker struct {
	ID        string
	Name      string
	Phone     *string
	Trade     *string // carpenter, electrician, painter, ...
	CreatedAt time.Time
}
