package model

import "time"

// Assignment represents equipment either issued to a named person (still
// on-base) or irreversibly expended. Assigned records carry the personnel
// name; expended records leave it empty.
type Assignment struct {
	ID            int64     `json:"id"`
	Date          Date      `json:"date"`
	Base          string    `json:"base"`
	EquipmentType string    `json:"equipment_type"`
	Quantity      int       `json:"quantity"`
	Status        string    `json:"status"`
	Personnel     string    `json:"personnel,omitempty"`
	RecordedBy    *int64    `json:"recorded_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Assignment statuses.
const (
	StatusAssigned = "assigned"
	StatusExpended = "expended"
)

// ValidAssignmentStatus reports whether status is a known assignment status.
func ValidAssignmentStatus(status string) bool {
	return status == StatusAssigned || status == StatusExpended
}
