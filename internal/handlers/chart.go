package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skosovan/data-analyzer/internal/services"
)

// ChartRenderer defines the interface that the chart service must implement.
type ChartRenderer interface {
	Render(ctx context.Context, datasetID, kind, xColumn, yColumn string) ([]byte, error)
}

// ChartRequest selects a chart type and its columns
// swagger:model ChartRequest
type ChartRequest struct {
	// Chart type: scatter, line, histogram, bar, pie
	// required: true
	// example: scatter
	Type string `json:"type"`

	// X-axis column (or the single column for histogram/bar/pie)
	// required: true
	// example: age
	X string `json:"x"`

	// Y-axis column (scatter and line only)
	// example: income
	Y string `json:"y,omitempty"`
}

// NewChartHandler returns an HTTP handler that renders a chart as PNG.
// @Summary Render a chart
// @Description Renders one of the canned chart types over a cached dataset and returns the PNG image.
// @Tags datasets
// @Accept json
// @Produce png
// @Param id path string true "Dataset ID"
// @Param chartRequest body handlers.ChartRequest true "Chart to render"
// @Success 200 {file} file "PNG image"
// @Failure 400 {object} handlers.ErrorResponse "Chart cannot be built from the chosen columns"
// @Failure 404 {object} handlers.ErrorResponse "Dataset not found or expired"
// @Router /datasets/{id}/chart [post]
// @Security BearerAuth
func NewChartHandler(svc ChartRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		png, err := svc.Render(r.Context(), chi.URLParam(r, "id"), req.Type, req.X, req.Y)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBadChart):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				writeDatasetError(w, r, err)
			}
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(png)
	}
}
