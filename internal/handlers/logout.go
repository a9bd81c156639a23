package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/middlewares"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, sessionID string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// example: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// @Summary Log out
// @Description Invalidates the session behind the presented token.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session ended"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.Logout(r.Context(), claims.ID); err != nil {
			logger.Log.Errorw("failed to end session", "session_id", claims.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{Message: "Logged out"})
	}
}
