package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/middlewares"
	"github.com/skosovan/data-analyzer/internal/repositories"
)

// UserLister defines the interface that the account service must implement.
type UserLister interface {
	ListUsernames(ctx context.Context) ([]string, error)
}

// UsersResponse lists registered usernames
// swagger:model UsersResponse
type UsersResponse struct {
	// Registered usernames, sorted
	Users []string `json:"users"`
}

// NewListUsersHandler returns an HTTP handler that lists all accounts.
// @Summary List users
// @Description Returns every registered username. Admin only. A store failure is reported as such, never as an empty list.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.UsersResponse "Registered usernames"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Failure 503 {object} handlers.ErrorResponse "Account store unavailable"
// @Router /admin/users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsernames(r.Context())
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UsersResponse{Users: users})
	}
}
