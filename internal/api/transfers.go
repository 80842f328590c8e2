package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"garrison/internal/ledger"
	"garrison/internal/model"
	"garrison/internal/store"
)

// TransfersHandler handles transfer endpoints.
type TransfersHandler struct {
	DB *sql.DB
}

type createTransferRequest struct {
	Date          string `json:"date"`
	FromBase      string `json:"from_base"`
	ToBase        string `json:"to_base"`
	EquipmentType string `json:"equipment_type"`
	Quantity      int    `json:"quantity"`
}

// Create handles POST /api/transfers.
func (h *TransfersHandler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createTransferRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid date")
		return
	}

	draft := ledger.TransferDraft{
		Date:          date,
		FromBase:      req.FromBase,
		ToBase:        req.ToBase,
		EquipmentType: req.EquipmentType,
		Quantity:      req.Quantity,
	}
	if verr := ledger.ValidateTransfer(viewer, draft); verr != nil {
		validationError(w, verr)
		return
	}

	for _, base := range []string{req.FromBase, req.ToBase} {
		exists, err := store.BaseExists(r.Context(), h.DB, base)
		if err != nil {
			slog.Error("failed to check base", "error", err)
			jsonError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !exists {
			jsonError(w, http.StatusBadRequest, "unknown base")
			return
		}
	}

	claims := GetClaims(r.Context())
	transfer, err := store.CreateTransfer(r.Context(), h.DB, date, req.FromBase, req.ToBase, req.EquipmentType, req.Quantity, &claims.UserID)
	if err != nil {
		slog.Error("failed to create transfer", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create transfer")
		return
	}

	slog.Info("transfer recorded", "user", viewer.Username, "from", transfer.FromBase,
		"to", transfer.ToBase, "type", transfer.EquipmentType, "quantity", transfer.Quantity)
	jsonResponse(w, http.StatusCreated, transfer)
}

// List handles GET /api/transfers.
func (h *TransfersHandler) List(w http.ResponseWriter, r *http.Request) {
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

	transfers, err := store.ListTransfers(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list transfers", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list transfers")
		return
	}

	visible := ledger.VisibleTransfers(viewer, transfers, filter)
	if visible == nil {
		visible = []model.Transfer{}
	}
	jsonResponse(w, http.StatusOK, visible)
}
