package repository

import "github.com/interiorhq/interman-api/internal/domain/entity"

// VendorPurchaseRepository defines the persistence port for vendor purchases (DIP).
type VendorPurchaseRepository interface {
	List() ([]*entity.VendorPurchase, error)
	Create(purchase *entity.VendorPurchase) error
}
