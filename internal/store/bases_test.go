package store

import (
	"context"
	"testing"

	"garrison/internal/db"
)

func TestBasesSeeded(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	bases, err := ListBases(ctx, database)
	if err != nil {
		t.Fatalf("ListBases: %v", err)
	}
	if len(bases) != 3 {
		t.Fatalf("expected 3 seeded bases, got %d", len(bases))
	}
	// Ordered by name.
	if bases[0].Name != "Base Alpha" || bases[1].Name != "Base Bravo" || bases[2].Name != "Base Charlie" {
		t.Errorf("unexpected base names: %v", bases)
	}
}

func TestBaseExists(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	exists, err := BaseExists(ctx, database, "Base Alpha")
	if err != nil {
		t.Fatalf("BaseExists: %v", err)
	}
	if !exists {
		t.Error("seeded base should exist")
	}

	exists, err = BaseExists(ctx, database, "Base Delta")
	if err != nil {
		t.Fatalf("BaseExists: %v", err)
	}
	if exists {
		t.Error("unregistered base should not exist")
	}
}

func TestCreateBase(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	b, err := CreateBase(ctx, database, "Base Delta")
	if err != nil {
		t.Fatalf("CreateBase: %v", err)
	}
	if b.Name != "Base Delta" {
		t.Errorf("expected Base Delta, got %q", b.Name)
	}

	// Duplicate names are rejected.
	if _, err := CreateBase(ctx, database, "Base Delta"); err == nil {
		t.Error("expected error for duplicate base name")
	}
}
