package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/middlewares"
	"github.com/skosovan/data-analyzer/internal/models"
	"github.com/skosovan/data-analyzer/internal/repositories"
)

// UploadHistoryReader defines the interface that the audit service must implement.
type UploadHistoryReader interface {
	List(ctx context.Context) ([]models.UploadEntry, error)
}

// UploadHistoryResponse lists upload audit entries
// swagger:model UploadHistoryResponse
type UploadHistoryResponse struct {
	// Entries in insertion order, oldest first
	Uploads []models.UploadEntry `json:"uploads"`
}

// NewUploadHistoryHandler returns an HTTP handler for the upload audit log.
// @Summary List upload history
// @Description Returns who uploaded what, when, oldest first. Admin only. A store failure is reported as such, never as an empty log.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.UploadHistoryResponse "Upload history"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Failure 503 {object} handlers.ErrorResponse "History store unavailable"
// @Router /admin/uploads [get]
// @Security BearerAuth
func NewUploadHistoryHandler(svc UploadHistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uploads, err := svc.List(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrStoreUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Upload history unavailable, try again"})
			default:
				logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		if uploads == nil {
			uploads = []models.UploadEntry{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UploadHistoryResponse{Uploads: uploads})
	}
}
