package memory

import (
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.VendorPurchaseRepository = (*VendorPurchaseRepo)(nil)

// VendorPurchaseRepo keeps vendor purchases in process memory.
type VendorPurchaseRepo struct {
	t *table[entity.VendorPurchase]
}

// NewVendorPurchaseRepository builds an empty in-memory purchase store.
func NewVendorPurchaseRepository() *VendorPurchaseRepo {
	return &VendorPurchaseRepo{t: newTable[entity.VendorPurchase]()}
}

func (r *VendorPurchaseRepo) List() ([]*entity.VendorPurchase, error) {
	return r.t.list(), nil
}

func (r *VendorPurchaseRepo) Create(purchase *entity.VendorPurchase) error {
	if r.t.get(purchase.ID) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(purchase.ID, purchase)
	return nil
}
