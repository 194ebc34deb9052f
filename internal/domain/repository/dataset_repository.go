package repository

import (
	"context"

	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
)

// DatasetRepository loads the dataset from a local path, an http(s) URL or an
// s3://bucket/key location.
type DatasetRepository interface {
	Load(ctx context.Context, source string) (entity.Dataset, error)
}

// RecordStore holds the dataset once it has been loaded. Install succeeds exactly once.
type RecordStore interface {
	Install(ds entity.Dataset) error
	Dataset() (entity.Dataset, error)
	Loaded() bool
}
