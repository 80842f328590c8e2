package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"garrison/internal/model"
	"garrison/internal/store"
)

// BasesHandler handles base registry endpoints.
type BasesHandler struct {
	DB *sql.DB
}

type createBaseRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/bases.
func (h *BasesHandler) List(w http.ResponseWriter, r *http.Request) {
	bases, err := store.ListBases(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list bases", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list bases")
		return
	}
	if bases == nil {
		bases = []model.Base{}
	}
	jsonResponse(w, http.StatusOK, bases)
}

// Create handles POST /api/bases (admin only).
func (h *BasesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBaseRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	base, err := store.CreateBase(r.Context(), h.DB, req.Name)
	if err != nil {
		jsonError(w, http.StatusConflict, "base already exists")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("base registered", "user", claims.Username, "base", base.Name)
	jsonResponse(w, http.StatusCreated, base)
}
