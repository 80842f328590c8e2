package model

import "time"

// Purchase represents equipment bought into a base's inventory. Purchases
// are append-only: once recorded they are never updated or deleted.
type Purchase struct {
	ID            int64     `json:"id"`
	Date          Date      `json:"date"`
	Base          string    `json:"base"`
	EquipmentType string    `json:"equipment_type"`
	Quantity      int       `json:"quantity"`
	RecordedBy    *int64    `json:"recorded_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
