package model

import "testing"

func TestValidRole(t *testing.T) {
	tests := []struct {
		role     string
		expected bool
	}{
		{RoleAdmin, true},
		{RoleBaseCommander, true},
		{RoleLogisticsOfficer, true},
		{"manager", false},
		{"Admin", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidRole(tt.role); got != tt.expected {
			t.Errorf("ValidRole(%q) = %v, want %v", tt.role, got, tt.expected)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"short", true},
		{"1234567", true},
		{"12345678", false},
		{"a-valid-password", false},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}

func TestValidEquipmentType(t *testing.T) {
	for _, typ := range EquipmentTypes {
		if !ValidEquipmentType(typ) {
			t.Errorf("ValidEquipmentType(%q) = false, want true", typ)
		}
	}
	for _, typ := range []string{"", "Weapons", "rations"} {
		if ValidEquipmentType(typ) {
			t.Errorf("ValidEquipmentType(%q) = true, want false", typ)
		}
	}
}

func TestValidAssignmentStatus(t *testing.T) {
	if !ValidAssignmentStatus(StatusAssigned) || !ValidAssignmentStatus(StatusExpended) {
		t.Error("known statuses should be valid")
	}
	for _, status := range []string{"", "Assigned", "lost"} {
		if ValidAssignmentStatus(status) {
			t.Errorf("ValidAssignmentStatus(%q) = true, want false", status)
		}
	}
}
