package ledger

import "garrison/internal/model"

// Report is the balance sheet computed for a viewer and filter.
type Report struct {
	OpeningBalance int `json:"opening_balance"`
	ClosingBalance int `json:"closing_balance"`
	NetMovement    int `json:"net_movement"`
	Purchases      int `json:"purchases"`
	TransfersIn    int `json:"transfers_in"`
	TransfersOut   int `json:"transfers_out"`
	Assigned       int `json:"assigned"`
	Expended       int `json:"expended"`
}

// ComputeReport aggregates a record snapshot into a balance sheet.
//
// The date is the pivot of the ledger: with no date set every aggregate is
// zero. Opening balance sums visible purchases strictly before the cutoff
// and ignores the base and equipment type filters — it is the baseline
// stock before the report window, scoped only by role. The remaining
// aggregates include the cutoff date itself. The equipment type filter
// narrows only the purchase component; transfer and assignment sums honor
// the base filter alone. For base commanders the transfer sums are
// directional: transfers-in counts only movements into the home base,
// transfers-out only movements out of it.
//
// Empty candidate sets are not an error; their sums are zero.
func ComputeReport(rec Records, v Viewer, f Filter) Report {
	var rep Report
	if f.Date.IsZero() {
		return rep
	}
	cutoff := f.Date

	for _, p := range rec.Purchases {
		if !CanSeeBase(v, p.Base) {
			continue
		}
		if p.Date.Before(cutoff) {
			rep.OpeningBalance += p.Quantity
		}
		if !p.Date.After(cutoff) && f.matchesBaseType(p.Base, p.EquipmentType) {
			rep.Purchases += p.Quantity
		}
	}

	for _, t := range rec.Transfers {
		if t.Date.After(cutoff) {
			continue
		}
		if (f.Base == "" || f.Base == t.ToBase) && CanSeeBase(v, t.ToBase) {
			rep.TransfersIn += t.Quantity
		}
		if (f.Base == "" || f.Base == t.FromBase) && CanSeeBase(v, t.FromBase) {
			rep.TransfersOut += t.Quantity
		}
	}

	for _, a := range rec.Assignments {
		if a.Date.After(cutoff) || !CanSeeBase(v, a.Base) {
			continue
		}
		if f.Base != "" && f.Base != a.Base {
			continue
		}
		switch a.Status {
		case model.StatusAssigned:
			rep.Assigned += a.Quantity
		case model.StatusExpended:
			rep.Expended += a.Quantity
		}
	}

	rep.NetMovement = rep.Purchases + rep.TransfersIn - rep.TransfersOut
	rep.ClosingBalance = rep.OpeningBalance + rep.NetMovement - rep.Expended
	return rep
}
