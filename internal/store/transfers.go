package store

import (
	"context"
	"database/sql"
	"fmt"

	"garrison/internal/model"
)

// CreateTransfer appends a transfer record and returns it with its assigned
// id. Validation happens before the store is reached; the schema's checks
// are a backstop.
func CreateTransfer(ctx context.Context, db *sql.DB, date model.Date, fromBase, toBase, equipmentType string, quantity int, recordedBy *int64) (*model.Transfer, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO transfers (date, from_base, to_base, equipment_type, quantity, recorded_by)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		date, fromBase, toBase, equipmentType, quantity, recordedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting transfer id: %w", err)
	}

	return GetTransfer(ctx, db, id)
}

// GetTransfer returns a transfer by ID.
func GetTransfer(ctx context.Context, db *sql.DB, id int64) (*model.Transfer, error) {
	t := &model.Transfer{}
	err := db.QueryRowContext(ctx,
		`SELECT id, date, from_base, to_base, equipment_type, quantity, recorded_by, created_at
		 FROM transfers WHERE id = ?`, id,
	).Scan(&t.ID, &t.Date, &t.FromBase, &t.ToBase, &t.EquipmentType, &t.Quantity, &t.RecordedBy, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting transfer: %w", err)
	}
	return t, nil
}

// ListTransfers returns all transfers in insertion order.
func ListTransfers(ctx context.Context, db *sql.DB) ([]model.Transfer, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, date, from_base, to_base, equipment_type, quantity, recorded_by, created_at
		 FROM transfers ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	defer rows.Close()

	var transfers []model.Transfer
	for rows.Next() {
		var t model.Transfer
		if err := rows.Scan(&t.ID, &t.Date, &t.FromBase, &t.ToBase, &t.EquipmentType, &t.Quantity, &t.RecordedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transfer: %w", err)
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}
