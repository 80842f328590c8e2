// Package ledger implements the balance-computation core: role-based
// visibility scoping, report filtering, the balance sheet aggregation, and
// validation of new movement records. Everything here is a pure function
// over immutable record values; storage and transport live elsewhere.
package ledger

import "garrison/internal/model"

// Viewer identifies the caller a computation runs on behalf of. HomeBase
// is set only for base commanders.
type Viewer struct {
	Username string
	Role     string
	HomeBase string
}

// Records is a snapshot of the three movement collections, each in
// insertion order.
type Records struct {
	Purchases   []model.Purchase
	Transfers   []model.Transfer
	Assignments []model.Assignment
}
