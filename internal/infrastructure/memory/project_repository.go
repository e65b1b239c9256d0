package memory

import (
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo keeps projects in process memory.
type ProjectRepo struct {
	t *table[entity.Project]
}

// NewProjectRepository builds an empty in-memory project store.
func NewProjectRepository() *ProjectRepo {
	return &ProjectRepo{t: newTable[entity.Project]()}
}

func (r *ProjectRepo) List() ([]*entity.Project, error) {
	return r.t.list(), nil
}

func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	return r.t.get(id), nil
}

func (r *ProjectRepo) Create(project *entity.Project) error {
	if r.t.get(project.ID) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(project.ID, project)
	return nil
}

func (r *ProjectRepo) Update(project *entity.Project) error {
	r.t.put(project.ID, project)
	return nil
}

func (r *ProjectRepo) Delete(id string) error {
	r.t.del(id)
	return nil
}
