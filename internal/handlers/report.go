package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skosovan/data-analyzer/internal/services"
)

// ReportBuilder defines the interface that the report service must implement.
type ReportBuilder interface {
	Build(ctx context.Context, datasetID string, specs []services.ChartSpec, summary string) ([]byte, error)
}

// ReportRequest selects the report contents
// swagger:model ReportRequest
type ReportRequest struct {
	// Charts to include, in order
	Charts []services.ChartSpec `json:"charts"`

	// Optional summary text for the final slide
	Summary string `json:"summary,omitempty"`
}

// NewReportHandler returns an HTTP handler that exports a slide-deck report.
// @Summary Export a report
// @Description Bundles a dataset preview table, the requested charts, and an optional summary into a downloadable deck.
// @Tags datasets
// @Accept json
// @Produce octet-stream
// @Param id path string true "Dataset ID"
// @Param reportRequest body handlers.ReportRequest true "Report contents"
// @Success 200 {file} file "Report document"
// @Failure 404 {object} handlers.ErrorResponse "Dataset not found or expired"
// @Router /datasets/{id}/report [post]
// @Security BearerAuth
func NewReportHandler(svc ReportBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		deck, err := svc.Build(r.Context(), chi.URLParam(r, "id"), req.Charts, req.Summary)
		if err != nil {
			writeDatasetError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
		w.WriteHeader(http.StatusOK)
		w.Write(deck)
	}
}
