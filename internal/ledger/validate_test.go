package ledger

import (
	"testing"

	"garrison/internal/model"
)

func TestValidatePurchase(t *testing.T) {
	valid := func(t *testing.T) PurchaseDraft {
		return PurchaseDraft{Date: date(t, "2024-06-01"), Base: "Base Alpha", EquipmentType: model.EquipmentWeapons, Quantity: 10}
	}

	tests := []struct {
		name     string
		viewer   Viewer
		mutate   func(*PurchaseDraft)
		wantCode string
	}{
		{"admin valid", admin, nil, ""},
		{"logistics valid", logistics, nil, ""},
		{"commander own base", commander("Base Alpha"), nil, ""},
		{"unknown role", Viewer{Role: "clerk"}, nil, CodeForbidden},
		{"commander other base", commander("Base Bravo"), nil, CodeForbidden},
		{"missing date", admin, func(d *PurchaseDraft) { d.Date = model.Date{} }, CodeInvalidInput},
		{"missing base", admin, func(d *PurchaseDraft) { d.Base = "" }, CodeInvalidInput},
		{"missing type", admin, func(d *PurchaseDraft) { d.EquipmentType = "" }, CodeInvalidInput},
		{"unknown type", admin, func(d *PurchaseDraft) { d.EquipmentType = "rations" }, CodeInvalidInput},
		{"zero quantity", admin, func(d *PurchaseDraft) { d.Quantity = 0 }, CodeInvalidInput},
		{"negative quantity", admin, func(d *PurchaseDraft) { d.Quantity = -5 }, CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid(t)
			if tt.mutate != nil {
				tt.mutate(&draft)
			}
			err := ValidatePurchase(tt.viewer, draft)
			checkCode(t, err, tt.wantCode)
		})
	}
}

func TestValidateTransfer(t *testing.T) {
	valid := func(t *testing.T) TransferDraft {
		return TransferDraft{Date: date(t, "2024-06-04"), FromBase: "Base Alpha", ToBase: "Base Bravo", EquipmentType: model.EquipmentWeapons, Quantity: 3}
	}

	tests := []struct {
		name     string
		viewer   Viewer
		mutate   func(*TransferDraft)
		wantCode string
	}{
		{"admin valid", admin, nil, ""},
		{"commander from own base", commander("Base Alpha"), nil, ""},
		{"logistics forbidden", logistics, nil, CodeForbidden},
		{"commander from other base", commander("Base Bravo"), nil, CodeForbidden},
		{"same base", admin, func(d *TransferDraft) { d.ToBase = d.FromBase }, CodeInvalidInput},
		{"missing from base", admin, func(d *TransferDraft) { d.FromBase = "" }, CodeInvalidInput},
		{"missing to base", admin, func(d *TransferDraft) { d.ToBase = "" }, CodeInvalidInput},
		{"missing date", admin, func(d *TransferDraft) { d.Date = model.Date{} }, CodeInvalidInput},
		{"zero quantity", admin, func(d *TransferDraft) { d.Quantity = 0 }, CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid(t)
			if tt.mutate != nil {
				tt.mutate(&draft)
			}
			err := ValidateTransfer(tt.viewer, draft)
			checkCode(t, err, tt.wantCode)
		})
	}
}

func TestValidateTransferRejectionIsStable(t *testing.T) {
	// Rejecting the same invalid draft repeatedly yields the same error.
	draft := TransferDraft{Date: date(t, "2024-06-04"), FromBase: "Base Alpha", ToBase: "Base Alpha", EquipmentType: model.EquipmentWeapons, Quantity: 3}
	first := ValidateTransfer(admin, draft)
	second := ValidateTransfer(admin, draft)
	if first == nil || second == nil || *first != *second {
		t.Errorf("expected identical rejections, got %v and %v", first, second)
	}
}

func TestValidateAssignment(t *testing.T) {
	valid := func(t *testing.T) AssignmentDraft {
		return AssignmentDraft{Date: date(t, "2024-06-05"), Base: "Base Bravo", EquipmentType: model.EquipmentWeapons, Quantity: 2, Status: model.StatusAssigned, Personnel: "Captain Smith"}
	}

	tests := []struct {
		name     string
		viewer   Viewer
		mutate   func(*AssignmentDraft)
		wantCode string
	}{
		{"admin assigned", admin, nil, ""},
		{"admin expended", admin, func(d *AssignmentDraft) { d.Status = model.StatusExpended; d.Personnel = "" }, ""},
		{"expended with personnel still valid", admin, func(d *AssignmentDraft) { d.Status = model.StatusExpended }, ""},
		{"commander own base", commander("Base Bravo"), nil, ""},
		{"logistics forbidden", logistics, nil, CodeForbidden},
		{"commander other base", commander("Base Alpha"), nil, CodeForbidden},
		{"missing status", admin, func(d *AssignmentDraft) { d.Status = "" }, CodeInvalidInput},
		{"unknown status", admin, func(d *AssignmentDraft) { d.Status = "lost" }, CodeInvalidInput},
		{"assigned without personnel", admin, func(d *AssignmentDraft) { d.Personnel = "" }, CodeInvalidInput},
		{"assigned with blank personnel", admin, func(d *AssignmentDraft) { d.Personnel = "   " }, CodeInvalidInput},
		{"missing base", admin, func(d *AssignmentDraft) { d.Base = "" }, CodeInvalidInput},
		{"zero quantity", admin, func(d *AssignmentDraft) { d.Quantity = 0 }, CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid(t)
			if tt.mutate != nil {
				tt.mutate(&draft)
			}
			err := ValidateAssignment(tt.viewer, draft)
			checkCode(t, err, tt.wantCode)
		})
	}
}

func TestValidationPrecedence(t *testing.T) {
	// Role eligibility is checked before field completeness: a logistics
	// officer submitting a broken transfer gets forbidden, not invalid.
	draft := TransferDraft{}
	err := ValidateTransfer(logistics, draft)
	if err == nil || err.Code != CodeForbidden {
		t.Errorf("expected forbidden for logistics officer, got %v", err)
	}

	// Field completeness is checked before base ownership: a commander
	// submitting a zero quantity for a foreign base gets invalid input.
	purchase := PurchaseDraft{Date: date(t, "2024-06-01"), Base: "Base Bravo", EquipmentType: model.EquipmentWeapons, Quantity: 0}
	perr := ValidatePurchase(commander("Base Alpha"), purchase)
	if perr == nil || perr.Code != CodeInvalidInput {
		t.Errorf("expected invalid input before ownership check, got %v", perr)
	}
}

func checkCode(t *testing.T, err *ValidationError, wantCode string) {
	t.Helper()
	if wantCode == "" {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Errorf("expected %s error, got nil", wantCode)
		return
	}
	if err.Code != wantCode {
		t.Errorf("expected code %s, got %s (%s)", wantCode, err.Code, err.Message)
	}
}
