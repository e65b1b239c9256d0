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

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implements WorkerRepository over PostgreSQL (usable with pool or tx).
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

// List returns every worker, newest first.
func (r *WorkerRepo) List() ([]*entity.Worker, error) {
	query := `SELECT id, name, phone, trade, created_at FROM workers ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Phone, &w.Trade, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// GetByID returns one worker, or nil when absent.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	query := `SELECT id, name, phone, trade, created_at FROM workers WHERE id = $1`
	var w entity.Worker
	err := r.q.QueryRow(context.Background(), query, id).Scan(&w.ID, &w.Name, &w.Phone, &w.Trade, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return &w, nil
}

// Create persists a new worker.
func (r *WorkerRepo) Create(worker *entity.Worker) error {
	query := `INSERT INTO workers (id, name, phone, trade, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.Name, worker.Phone, worker.Trade, worker.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

// Update edits a worker keyed on id.
func (r *WorkerRepo) Update(worker *entity.Worker) error {
	query := `UPDATE workers SET name = $2, phone = $3, trade = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, worker.ID, worker.Name, worker.Phone, worker.Trade)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	return nil
}

// Delete removes a worker. A missing id is not an error.
func (r *WorkerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}
