package store

import (
	"context"
	"testing"

	"garrison/internal/db"
	"garrison/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "commander1", "hash", model.RoleBaseCommander, "Base Alpha")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Role != model.RoleBaseCommander || user.HomeBase != "Base Alpha" {
		t.Errorf("unexpected user: %+v", user)
	}

	byName, err := GetUserByUsername(ctx, database, "commander1")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if byName == nil || byName.ID != user.ID {
		t.Errorf("expected to find commander1, got %+v", byName)
	}

	missing, err := GetUser(ctx, database, 999)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing user, got %+v", missing)
	}
}

func TestDuplicateUsernameRejected(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "admin", "hash", model.RoleAdmin, ""); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := CreateUser(ctx, database, "admin", "hash", model.RoleAdmin, ""); err == nil {
		t.Error("expected error for duplicate username")
	}
}

func TestSoftDeleteFreesUsername(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "temp", "hash", model.RoleLogisticsOfficer, "")
	if err := DeleteUser(ctx, database, user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	users, _ := ListUsers(ctx, database)
	if len(users) != 0 {
		t.Errorf("expected no active users, got %d", len(users))
	}

	// The username can be reused after soft deletion, and lookups resolve
	// to the new account rather than the deleted one.
	replacement, err := CreateUser(ctx, database, "temp", "hash", model.RoleLogisticsOfficer, "")
	if err != nil {
		t.Fatalf("expected soft-deleted username to be reusable: %v", err)
	}

	byName, err := GetUserByUsername(ctx, database, "temp")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if byName == nil || byName.ID != replacement.ID {
		t.Errorf("expected lookup to return the replacement account, got %+v", byName)
	}
}

func TestUpdateUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "mover", "hash", model.RoleLogisticsOfficer, "")
	if err := UpdateUser(ctx, database, user.ID, model.RoleBaseCommander, "Base Bravo"); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	updated, _ := GetUser(ctx, database, user.ID)
	if updated.Role != model.RoleBaseCommander || updated.HomeBase != "Base Bravo" {
		t.Errorf("unexpected updated user: %+v", updated)
	}
}
