package repository

import "github.com/interiorhq/interman-api/internal/domain/entity"

// MaterialRepository defines the persistence port for inventory materials (DIP).
// Create and Update are explicit: the optional-id save of the form layer is split
// at this boundary. Delete of a missing id is not an error.
type MaterialRepository interface {
	List() ([]*entity.Material, error)
	GetByID(id string) (*entity.Material, error)
	// GetForUpdate locks the row inside a transaction (SELECT FOR UPDATE) so
	// concurrent issues cannot both pass the stock check.
	GetForUpdate(id string) (*entity.Material, error)
	Create(material *entity.Material) error
	Update(material *entity.Material) error
	Delete(id string) error
}
