package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implements VendorRepository over PostgreSQL (usable with pool or tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// List returns every vendor, newest first.
func (r *VendorRepo) List() ([]*entity.Vendor, error) {
	query := `SELECT id, name, phone, address, created_at FROM vendors ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Phone, &v.Address, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// GetByID returns one vendor, or nil when absent.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	query := `SELECT id, name, phone, address, created_at FROM vendors WHERE id = $1`
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(), query, id).Scan(&v.ID, &v.Name, &v.Phone, &v.Address, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// Create persists a new vendor.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `INSERT INTO vendors (id, name, phone, address, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.Phone, vendor.Address, vendor.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// Update edits a vendor keyed on id.
func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	query := `UPDATE vendors SET name = $2, phone = $3, address = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, vendor.ID, vendor.Name, vendor.Phone, vendor.Address)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// Delete removes a vendor. A missing id is not an error.
func (r *VendorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}
