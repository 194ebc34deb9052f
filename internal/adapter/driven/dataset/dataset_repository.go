package dataset

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
	"github.com/diillson/payments-dashboard-go/internal/domain/repository"
	"github.com/diillson/payments-dashboard-go/internal/shared/types"
	"github.com/rs/zerolog"
)

// ObjectGetter is the subset of the S3 client used to download the dataset.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// DatasetRepositoryImpl implementa o DatasetRepository.
type DatasetRepositoryImpl struct {
	logger     *zerolog.Logger
	httpClient *http.Client

	mu       sync.Mutex
	s3Client ObjectGetter
}

// Option customizes a DatasetRepositoryImpl.
type Option func(*DatasetRepositoryImpl)

// WithHTTPClient replaces the client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(r *DatasetRepositoryImpl) {
		r.httpClient = c
	}
}

// WithS3Client replaces the client used for s3:// sources. Without it the client is
// built from the default AWS configuration on first use.
func WithS3Client(c ObjectGetter) Option {
	return func(r *DatasetRepositoryImpl) {
		r.s3Client = c
	}
}

// NewDatasetRepository cria uma nova implementação do DatasetRepository.
func NewDatasetRepository(logger zerolog.Logger, opts ...Option) repository.DatasetRepository {
	r := &DatasetRepositoryImpl{
		logger:     &logger,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load fetches source and parses it into a dataset. Sources ending in .xls are read as
// a legacy Excel workbook, everything else as delimited text.
func (r *DatasetRepositoryImpl) Load(ctx context.Context, source string) (entity.Dataset, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return entity.Dataset{}, types.ErrEmptySource
	}

	data, err := r.fetch(ctx, source)
	if err != nil {
		return entity.Dataset{}, err
	}

	var rows [][]string
	if isWorkbook(source) {
		rows, err = readWorkbook(data)
	} else {
		rows, err = readDelimited(data)
	}
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	ds, stats, err := buildDataset(rows)
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("failed to read %s: %w", source, err)
	}

	r.logger.Debug().
		Str("source", source).
		Int("records", ds.Len()).
		Int("blank_cells", stats.blank).
		Int("malformed_cells", stats.malformed).
		Msg("dataset loaded")

	return ds, nil
}

func (r *DatasetRepositoryImpl) objectGetter(ctx context.Context) (ObjectGetter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s3Client != nil {
		return r.s3Client, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	r.s3Client = s3.NewFromConfig(cfg)
	return r.s3Client, nil
}

func isWorkbook(source string) bool {
	if i := strings.IndexAny(source, "?#"); i >= 0 && strings.Contains(source, "://") {
		source = source[:i]
	}
	return strings.EqualFold(path.Ext(source), ".xls")
}
