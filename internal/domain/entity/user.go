package entity

import "time"

// Valid roles for User. The role lives on the profile row, is issued once and is
// never writable through the API.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User represents an application user (profile row keyed by the session's user id).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plain in the domain after persisting
	Name         string
	Role         string // admin, employee
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
