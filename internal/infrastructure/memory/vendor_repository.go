package memory

import (
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo keeps vendors in process memory.
type VendorRepo struct {
	t *table[entity.Vendor]
}

// NewVendorRepository builds an empty in-memory vendor store.
func NewVendorRepository() *VendorRepo {
	return &VendorRepo{t: newTable[entity.Vendor]()}
}

func (r *VendorRepo) List() ([]*entity.Vendor, error) {
	return r.t.list(), nil
}

func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	return r.t.get(id), nil
}

func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	if r.t.get(vendor.ID) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(vendor.ID, vendor)
	return nil
}

func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	r.t.put(vendor.ID, vendor)
	return nil
}

func (r *VendorRepo) Delete(id string) error {
	r.t.del(id)
	return nil
}
