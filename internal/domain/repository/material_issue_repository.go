package repository

import "github.com/interiorhq/interman-api/internal/domain/entity"

// MaterialIssueRepository defines the persistence port for issue events (DIP).
// Events are historical facts: there is no update or delete.
type MaterialIssueRepository interface {
	List() ([]*entity.MaterialIssue, error)
	ListByProject(projectID string) ([]*entity.MaterialIssue, error)
	Create(issue *entity.MaterialIssue) error
}
