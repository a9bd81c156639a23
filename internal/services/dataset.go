package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/models"
)

// Filter operators accepted by Filter.
const (
	OpEq       = "eq"
	OpNeq      = "neq"
	OpContains = "contains"
	OpGt       = "gt"
	OpLt       = "lt"
)

var (
	// ErrEmptyDataset is returned for a CSV with no header row.
	ErrEmptyDataset = errors.New("csv file has no header row")
	// ErrUnknownColumn is returned when a request names a column the dataset lacks.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrBadFilter is returned for an unsupported operator or a non-numeric
	// value used with a numeric comparison.
	ErrBadFilter = errors.New("unsupported filter")
)

// DatasetCache stores parsed datasets between requests.
type DatasetCache interface {
	Save(ctx context.Context, ds *models.Dataset) error
	Get(ctx context.Context, id string) (*models.Dataset, error)
}

// DatasetService parses uploaded CSVs and serves previews, statistics and
// row filters over the cached result.
type DatasetService struct {
	cache DatasetCache
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(cache DatasetCache) *DatasetService {
	return &DatasetService{cache: cache}
}

// Upload parses a CSV stream and caches the dataset under a fresh ID.
func (svc *DatasetService) Upload(ctx context.Context, name, username string, r io.Reader) (*models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are previewed, not rejected

	records, err := reader.ReadAll()
	if err != nil {
		logger.Log.Warnw("failed to parse csv", "file", name, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &models.Dataset{
		ID:         uuid.New().String(),
		Name:       name,
		Columns:    records[0],
		Rows:       records[1:],
		UploadedBy: username,
		UploadedAt: time.Now(),
	}

	if err := svc.cache.Save(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// Get returns a cached dataset by ID.
func (svc *DatasetService) Get(ctx context.Context, id string) (*models.Dataset, error) {
	return svc.cache.Get(ctx, id)
}

// Preview returns the dataset's first n rows.
func (svc *DatasetService) Preview(ctx context.Context, id string, n int) (*models.Dataset, [][]string, error) {
	ds, err := svc.cache.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if n <= 0 || n > len(ds.Rows) {
		n = len(ds.Rows)
	}
	return ds, ds.Rows[:n], nil
}

// Stats computes per-numeric-column summary statistics.
func (svc *DatasetService) Stats(ctx context.Context, id string) ([]models.ColumnStats, error) {
	ds, err := svc.cache.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := make([]models.ColumnStats, 0, len(ds.Columns))
	for _, col := range ds.NumericColumns() {
		vals := ds.ColumnValues(col)
		if len(vals) == 0 {
			continue
		}

		cs := models.ColumnStats{Column: col, Count: len(vals), Min: vals[0], Max: vals[0]}
		sum := 0.0
		distinct := make(map[float64]struct{}, len(vals))
		for _, v := range vals {
			sum += v
			if v < cs.Min {
				cs.Min = v
			}
			if v > cs.Max {
				cs.Max = v
			}
			distinct[v] = struct{}{}
		}
		cs.Mean = sum / float64(len(vals))
		cs.Missing = len(ds.Rows) - len(vals)
		cs.Distinct = len(distinct)
		stats = append(stats, cs)
	}
	return stats, nil
}

// Filter applies column/op/value to the rows of a dataset and caches the
// result as a new derived dataset.
func (svc *DatasetService) Filter(ctx context.Context, id, column, op, value string) (*models.Dataset, error) {
	ds, err := svc.cache.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	idx := ds.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}

	match, err := buildMatcher(op, value)
	if err != nil {
		return nil, err
	}

	filtered := &models.Dataset{
		ID:         uuid.New().String(),
		Name:       ds.Name,
		Columns:    ds.Columns,
		UploadedBy: ds.UploadedBy,
		UploadedAt: ds.UploadedAt,
	}
	for _, row := range ds.Rows {
		cell := ""
		if idx < len(row) {
			cell = row[idx]
		}
		if match(cell) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}

	if err := svc.cache.Save(ctx, filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}
