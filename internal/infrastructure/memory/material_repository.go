package memory

import (
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo keeps materials in process memory.
type MaterialRepo struct {
	t *table[entity.Material]
}

// NewMaterialRepository builds an empty in-memory material store.
func NewMaterialRepository() *MaterialRepo {
	return &MaterialRepo{t: newTable[entity.Material]()}
}

func (r *MaterialRepo) List() ([]*entity.Material, error) {
	return r.t.list(), nil
}

func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.t.get(id), nil
}

// GetForUpdate has no row locks to take here; atomicity of the issue flow comes
// from the TxRunner's store-wide lock.
func (r *MaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	return r.t.get(id), nil
}

func (r *MaterialRepo) Create(material *entity.Material) error {
	if r.t.get(material.ID) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(material.ID, material)
	return nil
}

func (r *MaterialRepo) Update(material *entity.Material) error {
	r.t.put(material.ID, material)
	return nil
}

func (r *MaterialRepo) Delete(id string) error {
	r.t.del(id)
	return nil
}
