package ledger

import "garrison/internal/model"

// Filter narrows listing and report queries. Unset fields impose no
// constraint. For listings the date matches exactly; the report engine
// instead treats it as a cutoff with its own comparisons.
type Filter struct {
	Date          model.Date
	Base          string
	EquipmentType string
}

// MatchesPurchase reports whether a purchase satisfies every set filter
// field.
func (f Filter) MatchesPurchase(p model.Purchase) bool {
	if !f.Date.IsZero() && !p.Date.Equal(f.Date) {
		return false
	}
	return f.matchesBaseType(p.Base, p.EquipmentType)
}

// MatchesTransfer reports whether a transfer satisfies every set filter
// field. The base filter matches either endpoint.
func (f Filter) MatchesTransfer(t model.Transfer) bool {
	if !f.Date.IsZero() && !t.Date.Equal(f.Date) {
		return false
	}
	if f.Base != "" && t.FromBase != f.Base && t.ToBase != f.Base {
		return false
	}
	if f.EquipmentType != "" && t.EquipmentType != f.EquipmentType {
		return false
	}
	return true
}

// MatchesAssignment reports whether an assignment satisfies every set
// filter field.
func (f Filter) MatchesAssignment(a model.Assignment) bool {
	if !f.Date.IsZero() && !a.Date.Equal(f.Date) {
		return false
	}
	return f.matchesBaseType(a.Base, a.EquipmentType)
}

func (f Filter) matchesBaseType(base, equipmentType string) bool {
	if f.Base != "" && base != f.Base {
		return false
	}
	if f.EquipmentType != "" && equipmentType != f.EquipmentType {
		return false
	}
	return true
}

// VisiblePurchases returns the purchases the viewer may see that match the
// filter, preserving insertion order.
func VisiblePurchases(v Viewer, purchases []model.Purchase, f Filter) []model.Purchase {
	var out []model.Purchase
	for _, p := range purchases {
		if CanSeeBase(v, p.Base) && f.MatchesPurchase(p) {
			out = append(out, p)
		}
	}
	return out
}

// VisibleTransfers returns the transfers the viewer may see that match the
// filter, preserving insertion order.
func VisibleTransfers(v Viewer, transfers []model.Transfer, f Filter) []model.Transfer {
	var out []model.Transfer
	for _, t := range transfers {
		if CanSeeTransfer(v, t) && f.MatchesTransfer(t) {
			out = append(out, t)
		}
	}
	return out
}

// VisibleAssignments returns the assignments the viewer may see that match
// the filter, preserving insertion order.
func VisibleAssignments(v Viewer, assignments []model.Assignment, f Filter) []model.Assignment {
	var out []model.Assignment
	for _, a := range assignments {
		if CanSeeBase(v, a.Base) && f.MatchesAssignment(a) {
			out = append(out, a)
		}
	}
	return out
}
