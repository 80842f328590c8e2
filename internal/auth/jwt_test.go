package auth

import (
	"testing"
	"time"

	"garrison/internal/model"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateToken(secret, 1, "commander1", model.RoleBaseCommander, "Base Alpha")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 1 {
		t.Errorf("expected user_id 1, got %d", claims.UserID)
	}
	if claims.Username != "commander1" {
		t.Errorf("expected username 'commander1', got %q", claims.Username)
	}
	if claims.Role != model.RoleBaseCommander {
		t.Errorf("expected role 'base_commander', got %q", claims.Role)
	}
	if claims.HomeBase != "Base Alpha" {
		t.Errorf("expected home base 'Base Alpha', got %q", claims.HomeBase)
	}
}

func TestTokenWithoutHomeBase(t *testing.T) {
	secret := "test-secret-key"

	token, _ := GenerateToken(secret, 2, "admin", model.RoleAdmin, "")
	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.HomeBase != "" {
		t.Errorf("expected empty home base, got %q", claims.HomeBase)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret1", 1, "admin", model.RoleAdmin, "")

	_, err := ValidateToken("secret2", token)
	if err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("secret", "not-a-token")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestTokenExpiry(t *testing.T) {
	// Just verify the expiry is set correctly.
	secret := "test"
	token, _ := GenerateToken(secret, 1, "test", model.RoleLogisticsOfficer, "")
	claims, _ := ValidateToken(secret, token)

	expiresAt := claims.ExpiresAt.Time
	expectedExpiry := time.Now().Add(TokenExpiry)

	// Should be within a few seconds.
	diff := expectedExpiry.Sub(expiresAt)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected: diff=%v", diff)
	}
}
