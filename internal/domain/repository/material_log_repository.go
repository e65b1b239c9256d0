package repository

import "github.com/interiorhq/interman-api/internal/domain/entity"

// MaterialLogRepository defines the persistence port for the audit log (DIP).
// The log is append-only; the port deliberately exposes no update or delete.
type MaterialLogRepository interface {
	List() ([]*entity.MaterialLog, error)
	Append(log *entity.MaterialLog) error
}
