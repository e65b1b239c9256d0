package memory

import (
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.MaterialIssueRepository = (*MaterialIssueRepo)(nil)

// MaterialIssueRepo keeps issue events in process memory.
type MaterialIssueRepo struct {
	t *table[entity.MaterialIssue]
}

// NewMaterialIssueRepository builds an empty in-memory issue store.
func NewMaterialIssueRepository() *MaterialIssueRepo {
	return &MaterialIssueRepo{t: newTable[entity.MaterialIssue]()}
}

func (r *MaterialIssueRepo) List() ([]*entity.MaterialIssue, error) {
	return r.t.list(), nil
}

func (r *MaterialIssueRepo) ListByProject(projectID string) ([]*entity.MaterialIssue, error) {
	all := r.t.list()
	var list []*entity.MaterialIssue
	for _, i := range all {
		if i.ProjectID == projectID {
			list = append(list, i)
		}
	}
	return list, nil
}

func (r *MaterialIssueRepo) Create(issue *entity.MaterialIssue) error {
	if r.t.get(issue.ID) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(issue.ID, issue)
	return nil
}
