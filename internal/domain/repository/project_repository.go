package repository

import "github.com/interiorhq/interman-api/internal/domain/entity"

// ProjectRepository defines the persistence port for projects (DIP).
type ProjectRepository interface {
	List() ([]*entity.Project, error)
	GetByID(id string) (*entity.Project, error)
	Create(project *entity.Project) error
	Update(project *entity.Project) error
	Delete(id string) error
}
