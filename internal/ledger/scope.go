package ledger

import "garrison/internal/model"

// CanSeeBase reports whether the viewer may see records filed under base.
// Admins and logistics officers see every base; base commanders only
// their own.
func CanSeeBase(v Viewer, base string) bool {
	if v.Role == model.RoleBaseCommander {
		return base == v.HomeBase
	}
	return true
}

// CanSeeTransfer reports whether the viewer may see a transfer. Base
// commanders see movements touching their base on either end.
func CanSeeTransfer(v Viewer, t model.Transfer) bool {
	if v.Role == model.RoleBaseCommander {
		return t.FromBase == v.HomeBase || t.ToBase == v.HomeBase
	}
	return true
}

// CanRecordPurchase reports whether the viewer's role may create purchases.
func CanRecordPurchase(v Viewer) bool {
	switch v.Role {
	case model.RoleAdmin, model.RoleBaseCommander, model.RoleLogisticsOfficer:
		return true
	}
	return false
}

// CanRecordMovement reports whether the viewer's role may create transfers
// or assignments. Logistics officers are limited to purchases.
func CanRecordMovement(v Viewer) bool {
	return v.Role == model.RoleAdmin || v.Role == model.RoleBaseCommander
}

// CanViewAssignments reports whether the viewer may list assignment
// records. Logistics officers see assignment totals in the report but not
// the individual records.
func CanViewAssignments(v Viewer) bool {
	return v.Role == model.RoleAdmin || v.Role == model.RoleBaseCommander
}
