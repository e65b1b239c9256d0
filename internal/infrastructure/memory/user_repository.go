package memory

import (
	"strings"

	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo keeps user profiles in process memory. Email lookups are
// case-insensitive, matching the citext-style unique index on the SQL side.
type UserRepo struct {
	t *table[entity.User]
}

// NewUserRepository builds an empty in-memory user store.
func NewUserRepository() *UserRepo {
	return &UserRepo{t: newTable[entity.User]()}
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.t.get(id), nil
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.t.list() {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Create(user *entity.User) error {
	if existing, _ := r.FindByEmail(user.Email); existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	if r.t.get(user.ID) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(user.ID, user)
	return nil
}
