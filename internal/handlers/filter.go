package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skosovan/data-analyzer/internal/models"
	"github.com/skosovan/data-analyzer/internal/services"
)

// DatasetFilterer defines the interface that the dataset service must implement.
type DatasetFilterer interface {
	Filter(ctx context.Context, id, column, op, value string) (*models.Dataset, error)
}

// FilterRequest selects rows by a column predicate
// swagger:model FilterRequest
type FilterRequest struct {
	// Column to filter on
	// required: true
	// example: country
	Column string `json:"column"`

	// Operator: eq, neq, contains, gt, lt
	// required: true
	// example: eq
	Op string `json:"op"`

	// Comparison value
	// required: true
	// example: DE
	Value string `json:"value"`
}

// FilterResponse describes the derived dataset
// swagger:model FilterResponse
type FilterResponse struct {
	// Identifier of the derived dataset
	ID string `json:"id"`

	// Header columns
	Columns []string `json:"columns"`

	// Matching rows
	Rows [][]string `json:"rows"`

	// Number of matching rows
	RowCount int `json:"row_count"`
}

// NewFilterHandler returns an HTTP handler that filters dataset rows.
// @Summary Filter dataset rows
// @Description Applies a column/operator/value predicate and caches the result as a new dataset.
// @Tags datasets
// @Accept json
// @Produce json
// @Param id path string true "Dataset ID"
// @Param filterRequest body handlers.FilterRequest true "Filter to apply"
// @Success 200 {object} handlers.FilterResponse "Filtered dataset"
// @Failure 400 {object} handlers.ErrorResponse "Unknown column or unsupported filter"
// @Failure 404 {object} handlers.ErrorResponse "Dataset not found or expired"
// @Router /datasets/{id}/filter [post]
// @Security BearerAuth
func NewFilterHandler(svc DatasetFilterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FilterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		ds, err := svc.Filter(r.Context(), chi.URLParam(r, "id"), req.Column, req.Op, req.Value)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownColumn), errors.Is(err, services.ErrBadFilter):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				writeDatasetError(w, r, err)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FilterResponse{
			ID:       ds.ID,
			Columns:  ds.Columns,
			Rows:     ds.Rows,
			RowCount: len(ds.Rows),
		})
	}
}
