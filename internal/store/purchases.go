package store

import (
	"context"
	"database/sql"
	"fmt"

	"garrison/internal/model"
)

// CreatePurchase appends a purchase record and returns it with its assigned
// id. The insert is a single statement, so append and id assignment are
// atomic. Purchase rows are never updated or deleted.
func CreatePurchase(ctx context.Context, db *sql.DB, date model.Date, base, equipmentType string, quantity int, recordedBy *int64) (*model.Purchase, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO purchases (date, base, equipment_type, quantity, recorded_by)
		 VALUES (?, ?, ?, ?, ?)`,
		date, base, equipmentType, quantity, recordedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("creating purchase: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting purchase id: %w", err)
	}

	return GetPurchase(ctx, db, id)
}

// GetPurchase returns a purchase by ID.
func GetPurchase(ctx context.Context, db *sql.DB, id int64) (*model.Purchase, error) {
	p := &model.Purchase{}
	err := db.QueryRowContext(ctx,
		`SELECT id, date, base, equipment_type, quantity, recorded_by, created_at
		 FROM purchases WHERE id = ?`, id,
	).Scan(&p.ID, &p.Date, &p.Base, &p.EquipmentType, &p.Quantity, &p.RecordedBy, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting purchase: %w", err)
	}
	return p, nil
}

// ListPurchases returns all purchases in insertion order.
func ListPurchases(ctx context.Context, db *sql.DB) ([]model.Purchase, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, date, base, equipment_type, quantity, recorded_by, created_at
		 FROM purchases ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing purchases: %w", err)
	}
	defer rows.Close()

	var purchases []model.Purchase
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(&p.ID, &p.Date, &p.Base, &p.EquipmentType, &p.Quantity, &p.RecordedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
