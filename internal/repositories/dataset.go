package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/models"
)

// ErrDatasetNotFound is returned when no cached dataset exists for an ID,
// either because it was never uploaded or because its TTL expired.
var ErrDatasetNotFound = errors.New("dataset not found")

// DatasetCacheRepository keeps parsed datasets between requests.
// Uploads are interactive session state, not durable data, so a TTL'd
// cache entry is the system of record for them.
type DatasetCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewDatasetCacheRepository creates a dataset cache with the given TTL.
func NewDatasetCacheRepository(client *redis.Client, expiration time.Duration) *DatasetCacheRepository {
	return &DatasetCacheRepository{client: client, exp: expiration}
}

func datasetKey(id string) string {
	return fmt.Sprintf("dataset:%s", id)
}

// Save caches a dataset under its ID.
func (r *DatasetCacheRepository) Save(ctx context.Context, ds *models.Dataset) error {
	data, err := json.Marshal(ds)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, datasetKey(ds.ID), data, r.exp).Err()
	if err != nil {
		logger.Log.Errorw("failed to cache dataset", "dataset_id", ds.ID, "error", err)
	}
	return err
}

// Get returns a cached dataset by ID.
func (r *DatasetCacheRepository) Get(ctx context.Context, id string) (*models.Dataset, error) {
	data, err := r.client.Get(ctx, datasetKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDatasetNotFound
		}
		logger.Log.Errorw("failed to read cached dataset", "dataset_id", id, "error", err)
		return nil, err
	}

	var ds models.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}
