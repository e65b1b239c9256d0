package postgres

import (
	"context"
	"fmt"

	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.VendorPurchaseRepository = (*VendorPurchaseRepo)(nil)

// VendorPurchaseRepo implements VendorPurchaseRepository over PostgreSQL.
type VendorPurchaseRepo struct {
	q Querier
}

// NewVendorPurchaseRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewVendorPurchaseRepository(q Querier) *VendorPurchaseRepo {
	return &VendorPurchaseRepo{q: q}
}

// List returns every vendor purchase, newest first.
func (r *VendorPurchaseRepo) List() ([]*entity.VendorPurchase, error) {
	query := `
		SELECT id, customer_id, vendor_id, item_description, quantity, unit, rate, total_amount, purchased_by, created_at
		FROM project_vendor_purchases ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vendor purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.VendorPurchase
	for rows.Next() {
		var p entity.VendorPurchase
		err := rows.Scan(&p.ID, &p.CustomerID, &p.VendorID, &p.ItemDescription, &p.Quantity,
			&p.Unit, &p.Rate, &p.TotalAmount, &p.PurchasedBy, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan vendor purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Create persists a vendor purchase. Purchases are immutable once written.
func (r *VendorPurchaseRepo) Create(purchase *entity.VendorPurchase) error {
	query := `
		INSERT INTO project_vendor_purchases
			(id, customer_id, vendor_id, item_description, quantity, unit, rate, total_amount, purchased_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.CustomerID, purchase.VendorID, purchase.ItemDescription,
		purchase.Quantity, purchase.Unit, purchase.Rate, purchase.TotalAmount,
		purchase.PurchasedBy, purchase.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor purchase: %w", err)
	}
	return nil
}
