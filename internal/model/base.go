package model

import "time"

// Base represents a named installation holding inventory. Movement records
// reference bases by name.
type Base struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
