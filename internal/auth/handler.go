package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/HerbHall/shadetree/internal/server"
)

// TokenRequest is the request body for POST /auth/token.
type TokenRequest struct {
	Password string `json:"password" example:"securepassword123"`
}

// Handler provides the HTTP handler for the token endpoint.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates an auth Handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers auth-related routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/auth/token", h.handleToken)
}

// Middleware returns the JWT authentication middleware.
func (h *Handler) Middleware() func(http.Handler) http.Handler {
	return Middleware(h.service)
}

// handleToken exchanges the editor password for an access token.
//
//	@Summary		Issue access token
//	@Description	Exchange the configured editor password for a short-lived JWT.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TokenRequest	true	"Editor password"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	server.Problem
//	@Failure		401		{object}	server.Problem
//	@Failure		503		{object}	server.Problem
//	@Router			/auth/token [post]
func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password == "" {
		writeAuthError(w, http.StatusBadRequest, "password is required")
		return
	}

	resp, err := h.service.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			writeAuthError(w, http.StatusServiceUnavailable, "token auth is not configured")
		case errors.Is(err, ErrInvalidCredentials):
			writeAuthError(w, http.StatusUnauthorized, "invalid password")
		default:
			h.logger.Error("token issue error", zap.Error(err))
			writeAuthError(w, http.StatusInternalServerError, "authentication failed")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// problemTypeAuth distinguishes authentication failures from the
// generic problem types.
const problemTypeAuth = "https://shadetree.dev/problems/auth-error"

// writeAuthError writes an RFC 7807 problem response.
func writeAuthError(w http.ResponseWriter, status int, detail string) {
	server.WriteProblem(w, server.Problem{
		Type:   problemTypeAuth,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}
