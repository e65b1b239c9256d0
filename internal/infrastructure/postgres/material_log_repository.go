package postgres

import (
	"context"
	"fmt"

	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.MaterialLogRepository = (*MaterialLogRepo)(nil)

// MaterialLogRepo implements MaterialLogRepository over PostgreSQL. The audit
// trail lives in inventory_history with its own column names (inventory_item_id,
// quantity_change, related_project_id, created_by); the translation stays here.
type MaterialLogRepo struct {
	q Querier
}

// NewMaterialLogRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewMaterialLogRepository(q Querier) *MaterialLogRepo {
	return &MaterialLogRepo{q: q}
}

// List returns the full audit trail, newest first.
func (r *MaterialLogRepo) List() ([]*entity.MaterialLog, error) {
	query := `
		SELECT id, inventory_item_id, quantity_change, related_project_id, created_by, reason, created_at
		FROM inventory_history ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory history: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialLog
	for rows.Next() {
		var l entity.MaterialLog
		err := rows.Scan(&l.ID, &l.MaterialID, &l.QuantityChange, &l.ProjectID, &l.UsedBy, &l.Reason, &l.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan inventory history row: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Append writes one audit entry. Entries are never updated or deleted.
func (r *MaterialLogRepo) Append(log *entity.MaterialLog) error {
	query := `
		INSERT INTO inventory_history (id, inventory_item_id, quantity_change, related_project_id, created_by, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.MaterialID, log.QuantityChange, log.ProjectID, log.UsedBy, log.Reason, log.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}
