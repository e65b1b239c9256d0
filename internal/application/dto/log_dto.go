package dto

import "time"

// MaterialLogResponse one audit entry.
type MaterialLogResponse struct {
	ID             string    `json:"id"`
	MaterialID     string    `json:"material_id"`
	QuantityChange int       `json:"quantity_change"`
	ProjectID      *string   `json:"project_id"`
	UsedBy         string    `json:"used_by"`
	Reason         string    `json:"reason"`
	Timestamp      time.Time `json:"timestamp"`
}

// MaterialLogListResponse audit-log list.
type MaterialLogListResponse struct {
	Items []MaterialLogResponse `json:"items"`
}
