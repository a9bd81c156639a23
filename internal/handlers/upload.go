package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/middlewares"
	"github.com/skosovan/data-analyzer/internal/models"
	"github.com/skosovan/data-analyzer/internal/services"
)

const maxUploadBytes = 32 << 20

// DatasetUploader defines the interface that the dataset service must implement.
type DatasetUploader interface {
	Upload(ctx context.Context, name, username string, r io.Reader) (*models.Dataset, error)
}

// UploadRecorder records upload audit entries, best-effort.
type UploadRecorder interface {
	Record(ctx context.Context, username, filename string)
}

// UploadResponse describes the parsed dataset
// swagger:model UploadResponse
type UploadResponse struct {
	// Dataset identifier for subsequent requests
	// example: 8a7c9d4e-1b2f-4c3a-9e8d-7f6a5b4c3d2e
	ID string `json:"id"`

	// Original filename
	// example: sales.csv
	Name string `json:"name"`

	// Header columns
	Columns []string `json:"columns"`

	// Columns usable for numeric charts
	NumericColumns []string `json:"numeric_columns"`

	// Number of data rows
	// example: 120
	RowCount int `json:"row_count"`
}

// NewUploadHandler returns an HTTP handler for CSV uploads.
// @Summary Upload a CSV file
// @Description Parses the uploaded CSV, caches it, and records the upload in the audit log. Audit failures never block the upload.
// @Tags datasets
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV file"
// @Success 201 {object} handlers.UploadResponse "Dataset parsed and cached"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed file"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /datasets [post]
// @Security BearerAuth
func NewUploadHandler(datasets DatasetUploader, audit UploadRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Missing file field"})
			return
		}
		defer file.Close()

		ds, err := datasets.Upload(r.Context(), header.Filename, claims.Username, file)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrEmptyDataset):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Could not parse CSV file"})
			default:
				logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		audit.Record(r.Context(), claims.Username, header.Filename)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadResponse{
			ID:             ds.ID,
			Name:           ds.Name,
			Columns:        ds.Columns,
			NumericColumns: ds.NumericColumns(),
			RowCount:       len(ds.Rows),
		})
	}
}
