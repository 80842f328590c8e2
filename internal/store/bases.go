package store

import (
	"context"
	"database/sql"
	"fmt"

	"garrison/internal/model"
)

// CreateBase registers a new base.
func CreateBase(ctx context.Context, db *sql.DB, name string) (*model.Base, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO bases (name) VALUES (?)`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("creating base: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting base id: %w", err)
	}

	return GetBase(ctx, db, id)
}

// GetBase returns a base by ID.
func GetBase(ctx context.Context, db *sql.DB, id int64) (*model.Base, error) {
	b := &model.Base{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM bases WHERE id = ?`, id,
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting base: %w", err)
	}
	return b, nil
}

// BaseExists reports whether a base with the given name is registered.
func BaseExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM bases WHERE name = ?)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking base: %w", err)
	}
	return exists, nil
}

// ListBases returns all bases ordered by name.
func ListBases(ctx context.Context, db *sql.DB) ([]model.Base, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, created_at FROM bases ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing bases: %w", err)
	}
	defer rows.Close()

	var bases []model.Base
	for rows.Next() {
		var b model.Base
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning base: %w", err)
		}
		bases = append(bases, b)
	}
	return bases, rows.Err()
}
