package types

import "errors"

var (
	ErrDatasetNotLoaded     = errors.New("dataset not loaded")
	ErrDatasetAlreadyLoaded = errors.New("dataset already loaded")
	ErrMissingColumn        = errors.New("required column missing from header")
	ErrEmptySource          = errors.New("dataset source is empty")
	ErrInvalidMetric        = errors.New("invalid metric: expected volume or value")
	ErrInvalidPeriod        = errors.New("invalid period")
	ErrInvalidScope         = errors.New("invalid table scope: expected filtered or all")
	ErrInvalidSubCategory   = errors.New("sub-category is not offered for the selected category")
	ErrUnsupportedReport    = errors.New("unsupported report type")
)
