package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"garrison/internal/ledger"
	"garrison/internal/model"
	"garrison/internal/store"
)

// PurchasesHandler handles purchase endpoints.
type PurchasesHandler struct {
	DB *sql.DB
}

type createPurchaseRequest struct {
	Date          string `json:"date"`
	Base          string `json:"base"`
	EquipmentType string `json:"equipment_type"`
	Quantity      int    `json:"quantity"`
}

// Create handles POST /api/purchases.
func (h *PurchasesHandler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createPurchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid date")
		return
	}

	draft := ledger.PurchaseDraft{
		Date:          date,
		Base:          req.Base,
		EquipmentType: req.EquipmentType,
		Quantity:      req.Quantity,
	}
	if verr := ledger.ValidatePurchase(viewer, draft); verr != nil {
		validationError(w, verr)
		return
	}

	exists, err := store.BaseExists(r.Context(), h.DB, req.Base)
	if err != nil {
		slog.Error("failed to check base", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusBadRequest, "unknown base")
		return
	}

	claims := GetClaims(r.Context())
	purchase, err := store.CreatePurchase(r.Context(), h.DB, date, req.Base, req.EquipmentType, req.Quantity, &claims.UserID)
	if err != nil {
		slog.Error("failed to create purchase", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create purchase")
		return
	}

	slog.Info("purchase recorded", "user", viewer.Username, "base", purchase.Base,
		"type", purchase.EquipmentType, "quantity", purchase.Quantity)
	jsonResponse(w, http.StatusCreated, purchase)
}

// List handles GET /api/purchases.
func (h *PurchasesHandler) List(w http.ResponseWriter, r *http.Request) {
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

	purchases, err := store.ListPurchases(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list purchases", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list purchases")
		return
	}

	visible := ledger.VisiblePurchases(viewer, purchases, filter)
	if visible == nil {
		visible = []model.Purchase{}
	}
	jsonResponse(w, http.StatusOK, visible)
}
