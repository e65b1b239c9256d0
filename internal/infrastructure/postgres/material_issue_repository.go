package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.MaterialIssueRepository = (*MaterialIssueRepo)(nil)

// MaterialIssueRepo implements MaterialIssueRepository over PostgreSQL.
// Issue events live in customer_material_issue; the material column there is
// inventory_item_id. This adapter owns that translation.
type MaterialIssueRepo struct {
	q Querier
}

// NewMaterialIssueRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewMaterialIssueRepository(q Querier) *MaterialIssueRepo {
	return &MaterialIssueRepo{q: q}
}

const issueColumns = `id, project_id, inventory_item_id, quantity, rate_at_issue, issued_by, created_at`

func scanIssues(rows pgx.Rows) ([]*entity.MaterialIssue, error) {
	defer rows.Close()
	var list []*entity.MaterialIssue
	for rows.Next() {
		var i entity.MaterialIssue
		err := rows.Scan(&i.ID, &i.ProjectID, &i.MaterialID, &i.Quantity, &i.RateAtIssue, &i.IssuedBy, &i.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan material issue: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// List returns every issue event, newest first.
func (r *MaterialIssueRepo) List() ([]*entity.MaterialIssue, error) {
	query := `SELECT ` + issueColumns + ` FROM customer_material_issue ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list material issues: %w", err)
	}
	return scanIssues(rows)
}

// ListByProject returns the issue events for one project, newest first.
func (r *MaterialIssueRepo) ListByProject(projectID string) ([]*entity.MaterialIssue, error) {
	query := `SELECT ` + issueColumns + ` FROM customer_material_issue WHERE project_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list material issues by project: %w", err)
	}
	return scanIssues(rows)
}

// Create persists an issue event. Events are immutable once written.
func (r *MaterialIssueRepo) Create(issue *entity.MaterialIssue) error {
	query := `
		INSERT INTO customer_material_issue (id, project_id, inventory_item_id, quantity, rate_at_issue, issued_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		issue.ID, issue.ProjectID, issue.MaterialID, issue.Quantity,
		issue.RateAtIssue, issue.IssuedBy, issue.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material issue: %w", err)
	}
	return nil
}
