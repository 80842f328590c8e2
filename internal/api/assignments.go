package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"garrison/internal/ledger"
	"garrison/internal/model"
	"garrison/internal/store"
)

// AssignmentsHandler handles assignment and expenditure endpoints.
type AssignmentsHandler struct {
	DB *sql.DB
}

type createAssignmentRequest struct {
	Date          string `json:"date"`
	Base          string `json:"base"`
	EquipmentType string `json:"equipment_type"`
	Quantity      int    `json:"quantity"`
	Status        string `json:"status"`
	Personnel     string `json:"personnel"`
}

// Create handles POST /api/assignments.
func (h *AssignmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createAssignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid date")
		return
	}

	draft := ledger.AssignmentDraft{
		Date:          date,
		Base:          req.Base,
		EquipmentType: req.EquipmentType,
		Quantity:      req.Quantity,
		Status:        req.Status,
		Personnel:     req.Personnel,
	}
	if verr := ledger.ValidateAssignment(viewer, draft); verr != nil {
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

	// Personnel is not applicable to expenditures.
	personnel := req.Personnel
	if req.Status == model.StatusExpended {
		personnel = ""
	}

	claims := GetClaims(r.Context())
	assignment, err := store.CreateAssignment(r.Context(), h.DB, date, req.Base, req.EquipmentType, req.Quantity, req.Status, personnel, &claims.UserID)
	if err != nil {
		slog.Error("failed to create assignment", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create assignment")
		return
	}

	slog.Info("assignment recorded", "user", viewer.Username, "base", assignment.Base,
		"type", assignment.EquipmentType, "quantity", assignment.Quantity, "status", assignment.Status)
	jsonResponse(w, http.StatusCreated, assignment)
}

// List handles GET /api/assignments. The router limits this to admins and
// base commanders.
func (h *AssignmentsHandler) List(w http.ResponseWriter, r *http.Request) {
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

	assignments, err := store.ListAssignments(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list assignments", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list assignments")
		return
	}

	visible := ledger.VisibleAssignments(viewer, assignments, filter)
	if visible == nil {
		visible = []model.Assignment{}
	}
	jsonResponse(w, http.StatusOK, visible)
}
