package memory

import (
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.MaterialLogRepository = (*MaterialLogRepo)(nil)

// MaterialLogRepo keeps the audit trail in process memory. Append-only, like
// the port.
type MaterialLogRepo struct {
	t *table[entity.MaterialLog]
}

// NewMaterialLogRepository builds an empty in-memory audit log.
func NewMaterialLogRepository() *MaterialLogRepo {
	return &MaterialLogRepo{t: newTable[entity.MaterialLog]()}
}

func (r *MaterialLogRepo) List() ([]*entity.MaterialLog, error) {
	return r.t.list(), nil
}

func (r *MaterialLogRepo) Append(log *entity.MaterialLog) error {
	if r.t.get(log.ID) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(log.ID, log)
	return nil
}
