package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"garrison/internal/ledger"
	"garrison/internal/store"
)

// ReportHandler serves the balance sheet.
type ReportHandler struct {
	DB *sql.DB
}

// Get handles GET /api/report. The date parameter is the ledger's pivot:
// without it every aggregate is zero.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	var rec ledger.Records
	if rec.Purchases, err = store.ListPurchases(r.Context(), h.DB); err != nil {
		slog.Error("failed to load purchases", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to compute report")
		return
	}
	if rec.Transfers, err = store.ListTransfers(r.Context(), h.DB); err != nil {
		slog.Error("failed to load transfers", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to compute report")
		return
	}
	if rec.Assignments, err = store.ListAssignments(r.Context(), h.DB); err != nil {
		slog.Error("failed to load assignments", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to compute report")
		return
	}

	jsonResponse(w, http.StatusOK, ledger.ComputeReport(rec, viewer, filter))
}
