package repository

import "github.com/interiorhq/interman-api/internal/domain/entity"

// UserRepository defines the persistence port for user profiles (DIP).
// There is no role mutation: roles are immutable once issued.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Create(user *entity.User) error
}
