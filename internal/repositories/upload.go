package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/models"
)

var uploadHeader = []string{"username", "filename", "timestamp"}

// UploadLogRepository is the append-only audit trail of uploads, stored as
// rows in a second remote table. Entries are never mutated in normal flow.
type UploadLogRepository struct {
	table Table
}

// NewUploadLogRepository creates an upload-log repository over a table.
func NewUploadLogRepository(table Table) *UploadLogRepository {
	return &UploadLogRepository{table: table}
}

// Add appends one timestamped entry.
func (r *UploadLogRepository) Add(ctx context.Context, entry models.UploadEntry) error {
	if err := ensureHeader(ctx, r.table, uploadHeader); err != nil {
		logger.Log.Errorw("failed to provision upload table header", "error", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	row := []string{
		entry.Username,
		entry.Filename,
		entry.Timestamp.Format(models.UploadTimeLayout),
	}
	if err := r.table.Append(ctx, row); err != nil {
		logger.Log.Errorw("failed to append upload entry", "username", entry.Username, "error", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// List returns all entries in insertion order, oldest first. Rows with an
// unparseable timestamp are kept with a zero time rather than dropped.
func (r *UploadLogRepository) List(ctx context.Context) ([]models.UploadEntry, error) {
	rows, err := r.table.ReadAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read upload table", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	entries := make([]models.UploadEntry, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < 2 || row[0] == "" {
			continue
		}
		entry := models.UploadEntry{Username: row[0], Filename: row[1]}
		if len(row) > 2 {
			if ts, err := time.Parse(models.UploadTimeLayout, row[2]); err == nil {
				entry.Timestamp = ts
			} else {
				logger.Log.Warnw("unparseable upload timestamp", "value", row[2])
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
