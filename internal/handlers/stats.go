package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skosovan/data-analyzer/internal/models"
)

// DatasetDescriber defines the interface that the dataset service must implement.
type DatasetDescriber interface {
	Stats(ctx context.Context, id string) ([]models.ColumnStats, error)
}

// StatsResponse represents per-column summary statistics
// swagger:model StatsResponse
type StatsResponse struct {
	// Statistics for each numeric column
	Stats []models.ColumnStats `json:"stats"`
}

// NewStatsHandler returns an HTTP handler for dataset summary statistics.
// @Summary Describe a dataset
// @Description Returns count, mean, min, max, missing and distinct counts for each numeric column.
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} handlers.StatsResponse "Summary statistics"
// @Failure 404 {object} handlers.ErrorResponse "Dataset not found or expired"
// @Router /datasets/{id}/stats [get]
// @Security BearerAuth
func NewStatsHandler(svc DatasetDescriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDatasetError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatsResponse{Stats: stats})
	}
}
