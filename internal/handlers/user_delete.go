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

// UserDeleter defines the interface that the account service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, username string) (bool, error)
}

// DeleteUserResponse confirms a deletion
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Success message
	// example: User deleted
	Message string `json:"message"`
}

// NewDeleteUserHandler returns an HTTP handler that deletes an account.
// @Summary Delete a user
// @Description Removes the account's row from the store. The reserved admin account is refused. The underlying clear-and-rewrite is not atomic across processes.
// @Tags admin
// @Produce json
// @Param username path string true "Username to delete"
// @Success 200 {object} handlers.DeleteUserResponse "User deleted"
// @Failure 403 {object} handlers.ErrorResponse "Reserved account"
// @Failure 404 {object} handlers.ErrorResponse "No such user"
// @Failure 503 {object} handlers.ErrorResponse "Account store unavailable"
// @Router /admin/users/{username} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		if username == services.AdminUsername {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "The admin account cannot be deleted"})
			return
		}

		deleted, err := svc.Delete(r.Context(), username)
		if err != nil {
			switch {
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
		if !deleted {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No such user"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteUserResponse{Message: "User deleted"})
	}
}
