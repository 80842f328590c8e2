package ledger

import (
	"fmt"
	"strings"

	"garrison/internal/model"
)

// ValidationError codes. Forbidden rejections are role or base-ownership
// violations; invalid-input rejections are malformed payloads.
const (
	CodeForbidden    = "forbidden"
	CodeInvalidInput = "invalid_input"
)

// ValidationError rejects a mutation before it reaches the store.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func forbidden(format string, args ...any) *ValidationError {
	return &ValidationError{Code: CodeForbidden, Message: fmt.Sprintf(format, args...)}
}

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// PurchaseDraft is a purchase payload before id assignment.
type PurchaseDraft struct {
	Date          model.Date
	Base          string
	EquipmentType string
	Quantity      int
}

// TransferDraft is a transfer payload before id assignment.
type TransferDraft struct {
	Date          model.Date
	FromBase      string
	ToBase        string
	EquipmentType string
	Quantity      int
}

// AssignmentDraft is an assignment payload before id assignment.
type AssignmentDraft struct {
	Date          model.Date
	Base          string
	EquipmentType string
	Quantity      int
	Status        string
	Personnel     string
}

// ValidatePurchase checks a purchase draft for the viewer. Rules apply in
// precedence order: role eligibility, field completeness, base ownership.
// The first failure wins.
func ValidatePurchase(v Viewer, d PurchaseDraft) *ValidationError {
	if !CanRecordPurchase(v) {
		return forbidden("role %q may not record purchases", v.Role)
	}
	if err := checkCommon(d.Date, d.EquipmentType, d.Quantity); err != nil {
		return err
	}
	if d.Base == "" {
		return invalid("base is required")
	}
	if v.Role == model.RoleBaseCommander && d.Base != v.HomeBase {
		return forbidden("base commanders may only record purchases for their own base")
	}
	return nil
}

// ValidateTransfer checks a transfer draft for the viewer.
func ValidateTransfer(v Viewer, d TransferDraft) *ValidationError {
	if !CanRecordMovement(v) {
		return forbidden("role %q may not record transfers", v.Role)
	}
	if err := checkCommon(d.Date, d.EquipmentType, d.Quantity); err != nil {
		return err
	}
	if d.FromBase == "" || d.ToBase == "" {
		return invalid("from_base and to_base are required")
	}
	if d.FromBase == d.ToBase {
		return invalid("cannot transfer from a base to itself")
	}
	if v.Role == model.RoleBaseCommander && d.FromBase != v.HomeBase {
		return forbidden("base commanders may only transfer from their own base")
	}
	return nil
}

// ValidateAssignment checks an assignment draft for the viewer. Assigned
// records need a personnel name; expended records carry none.
func ValidateAssignment(v Viewer, d AssignmentDraft) *ValidationError {
	if !CanRecordMovement(v) {
		return forbidden("role %q may not record assignments", v.Role)
	}
	if err := checkCommon(d.Date, d.EquipmentType, d.Quantity); err != nil {
		return err
	}
	if d.Base == "" {
		return invalid("base is required")
	}
	if !model.ValidAssignmentStatus(d.Status) {
		return invalid("status must be %q or %q", model.StatusAssigned, model.StatusExpended)
	}
	if d.Status == model.StatusAssigned && strings.TrimSpace(d.Personnel) == "" {
		return invalid("personnel is required when status is %q", model.StatusAssigned)
	}
	if v.Role == model.RoleBaseCommander && d.Base != v.HomeBase {
		return forbidden("base commanders may only record assignments for their own base")
	}
	return nil
}

func checkCommon(date model.Date, equipmentType string, quantity int) *ValidationError {
	if date.IsZero() {
		return invalid("date is required")
	}
	if equipmentType == "" {
		return invalid("equipment_type is required")
	}
	if !model.ValidEquipmentType(equipmentType) {
		return invalid("unknown equipment type %q", equipmentType)
	}
	if quantity <= 0 {
		return invalid("quantity must be positive")
	}
	return nil
}
