package api

import (
	"database/sql"
	"net/http"

	"garrison/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	basesHandler := &BasesHandler{DB: db}
	purchasesHandler := &PurchasesHandler{DB: db}
	transfersHandler := &TransfersHandler{DB: db}
	assignmentsHandler := &AssignmentsHandler{DB: db}
	reportHandler := &ReportHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret)
	requireAdmin := RequireRoles(model.RoleAdmin)
	requireCommand := RequireRoles(model.RoleAdmin, model.RoleBaseCommander)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Get))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("PUT /api/users/{id}/password", authMW(requireAdmin(http.HandlerFunc(usersHandler.ResetPassword))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	// Bases: read (all roles), write (admin).
	mux.Handle("GET /api/bases", authMW(http.HandlerFunc(basesHandler.List)))
	mux.Handle("POST /api/bases", authMW(requireAdmin(http.HandlerFunc(basesHandler.Create))))

	// Movement records. Write-side role rules live in the ledger validator,
	// which distinguishes forbidden roles from malformed payloads.
	mux.Handle("GET /api/purchases", authMW(http.HandlerFunc(purchasesHandler.List)))
	mux.Handle("POST /api/purchases", authMW(http.HandlerFunc(purchasesHandler.Create)))
	mux.Handle("GET /api/transfers", authMW(http.HandlerFunc(transfersHandler.List)))
	mux.Handle("POST /api/transfers", authMW(http.HandlerFunc(transfersHandler.Create)))

	// Assignment listings are for admins and base commanders only.
	mux.Handle("GET /api/assignments", authMW(requireCommand(http.HandlerFunc(assignmentsHandler.List))))
	mux.Handle("POST /api/assignments", authMW(http.HandlerFunc(assignmentsHandler.Create)))

	// Balance report.
	mux.Handle("GET /api/report", authMW(http.HandlerFunc(reportHandler.Get)))

	return mux
}
