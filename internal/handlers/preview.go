package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/middlewares"
	"github.com/skosovan/data-analyzer/internal/models"
	"github.com/skosovan/data-analyzer/internal/repositories"
)

const defaultPreviewRows = 20

// DatasetPreviewer defines the interface that the dataset service must implement.
type DatasetPreviewer interface {
	Preview(ctx context.Context, id string, n int) (*models.Dataset, [][]string, error)
}

// PreviewResponse represents the first rows of a dataset
// swagger:model PreviewResponse
type PreviewResponse struct {
	// Dataset identifier
	ID string `json:"id"`

	// Original filename
	Name string `json:"name"`

	// Header columns
	Columns []string `json:"columns"`

	// Previewed rows
	Rows [][]string `json:"rows"`

	// Total number of data rows in the dataset
	RowCount int `json:"row_count"`
}

// NewPreviewHandler returns an HTTP handler that previews a cached dataset.
// @Summary Preview a dataset
// @Description Returns column names and the first rows of an uploaded dataset.
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Param rows query int false "Number of rows to return" default(20)
// @Success 200 {object} handlers.PreviewResponse "Dataset preview"
// @Failure 404 {object} handlers.ErrorResponse "Dataset not found or expired"
// @Router /datasets/{id} [get]
// @Security BearerAuth
func NewPreviewHandler(svc DatasetPreviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		n := defaultPreviewRows
		if raw := r.URL.Query().Get("rows"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				n = parsed
			}
		}

		ds, rows, err := svc.Preview(r.Context(), id, n)
		if err != nil {
			writeDatasetError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PreviewResponse{
			ID:       ds.ID,
			Name:     ds.Name,
			Columns:  ds.Columns,
			Rows:     rows,
			RowCount: len(ds.Rows),
		})
	}
}

// writeDatasetError maps dataset lookup failures onto HTTP statuses.
func writeDatasetError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repositories.ErrDatasetNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Dataset not found or expired"})
	default:
		logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
	}
}
