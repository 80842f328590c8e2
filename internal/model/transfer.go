package model

import "time"

// Transfer represents a quantity moving from one base's inventory to
// another's on a given date. FromBase and ToBase are always distinct.
type Transfer struct {
	ID            int64     `json:"id"`
	Date          Date      `json:"date"`
	FromBase      string    `json:"from_base"`
	ToBase        string    `json:"to_base"`
	EquipmentType string    `json:"equipment_type"`
	Quantity      int       `json:"quantity"`
	RecordedBy    *int64    `json:"recorded_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
