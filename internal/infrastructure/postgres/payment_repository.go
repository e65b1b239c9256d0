package postgres

import (
	"context"
	"fmt"

	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements PaymentRepository over PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// List returns every payment, newest first.
func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	query := `
		SELECT id, payee_type, worker_id, vendor_id, customer_id, amount, notes, paid_by, created_at
		FROM payments ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		err := rows.Scan(&p.ID, &p.PayeeType, &p.WorkerID, &p.VendorID, &p.CustomerID,
			&p.Amount, &p.Notes, &p.PaidBy, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Create persists a payment. Payments are immutable once written.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, payee_type, worker_id, vendor_id, customer_id, amount, notes, paid_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.PayeeType, payment.WorkerID, payment.VendorID, payment.CustomerID,
		payment.Amount, payment.Notes, payment.PaidBy, payment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}
