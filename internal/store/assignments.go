package store

import (
	"context"
	"database/sql"
	"fmt"

	"garrison/internal/model"
)

// CreateAssignment appends an assignment record and returns it with its
// assigned id. Personnel is stored as the empty string for expended
// records.
func CreateAssignment(ctx context.Context, db *sql.DB, date model.Date, base, equipmentType string, quantity int, status, personnel string, recordedBy *int64) (*model.Assignment, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO assignments (date, base, equipment_type, quantity, status, personnel, recorded_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		date, base, equipmentType, quantity, status, personnel, recordedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("creating assignment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting assignment id: %w", err)
	}

	return GetAssignment(ctx, db, id)
}

// GetAssignment returns an assignment by ID.
func GetAssignment(ctx context.Context, db *sql.DB, id int64) (*model.Assignment, error) {
	a := &model.Assignment{}
	err := db.QueryRowContext(ctx,
		`SELECT id, date, base, equipment_type, quantity, status, personnel, recorded_by, created_at
		 FROM assignments WHERE id = ?`, id,
	).Scan(&a.ID, &a.Date, &a.Base, &a.EquipmentType, &a.Quantity, &a.Status, &a.Personnel, &a.RecordedBy, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting assignment: %w", err)
	}
	return a, nil
}

// ListAssignments returns all assignments in insertion order.
func ListAssignments(ctx context.Context, db *sql.DB) ([]model.Assignment, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, date, base, equipment_type, quantity, status, personnel, recorded_by, created_at
		 FROM assignments ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.Date, &a.Base, &a.EquipmentType, &a.Quantity, &a.Status, &a.Personnel, &a.RecordedBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
