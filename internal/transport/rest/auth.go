package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/service/auth"
)

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

// AuthHandler serves POST /admin/login.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login exchanges the admin password for a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	res, err := h.svc.Login(r.Context(), auth.LoginInput{Password: req.Password})
	switch {
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Password login is disabled")
		return
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid password")
		return
	case err != nil:
		handleError(h.log, w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt,
	})
}
