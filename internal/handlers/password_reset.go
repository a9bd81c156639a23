package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/middlewares"
	"github.com/skosovan/data-analyzer/internal/repositories"
	"github.com/skosovan/data-analyzer/internal/services"
)

// PasswordResetter defines the interface that the account service must implement.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, username, newPassword string) error
}

// ResetPasswordRequest carries the replacement password
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// New password
	// required: true
	// example: newpw
	Password string `json:"password"`
}

// ResetPasswordResponse confirms a reset
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	// Success message
	// example: Password reset
	Message string `json:"message"`
}

// NewResetPasswordHandler returns an HTTP handler that resets a password.
// @Summary Reset a password
// @Description Replaces the stored hash for a username. The underlying clear-and-rewrite is not atomic across processes.
// @Tags admin
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "New password"
// @Success 200 {object} handlers.ResetPasswordResponse "Password reset"
// @Failure 400 {object} handlers.ErrorResponse "Empty password"
// @Failure 404 {object} handlers.ErrorResponse "No such user"
// @Failure 503 {object} handlers.ErrorResponse "Account store unavailable"
// @Router /admin/users/{username}/password [post]
// @Security BearerAuth
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.ResetPassword(r.Context(), chi.URLParam(r, "username"), req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Password must not be empty"})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "No such user"})
			case errors.Is(err, repositories.ErrStoreUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Account store unavailable, try again"})
			default:
				logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetPasswordResponse{Message: "Password reset"})
	}
}
