package entity

// Source column names of the two classification fields.
const (
	CategoryColumn    = "Transaction Type"
	SubCategoryColumn = "Sub_type"
)

// Record is one row of the dataset. Metric cells keep the raw source text because the
// data may carry thousands separators, blanks or placeholders.
type Record struct {
	Category    string                     `json:"category"`
	SubCategory string                     `json:"sub_category"`
	Metrics     map[PeriodMetricKey]string `json:"-"`
}

// Raw returns the raw text of a metric cell, or "" when the cell is absent.
func (r Record) Raw(key PeriodMetricKey) string {
	if r.Metrics == nil {
		return ""
	}
	return r.Metrics[key]
}

// Columns returns the raw metric cells keyed by source column name.
func (r Record) Columns() map[string]string {
	out := make(map[string]string, len(r.Metrics))
	for _, key := range MetricKeys() {
		out[key.Column()] = r.Raw(key)
	}
	return out
}

// Dataset is the ordered, immutable sequence of records loaded from the source file.
type Dataset struct {
	Records []Record
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d.Records)
}

// Header returns the export header: the classification columns followed by every
// period's Volume and Value columns.
func Header() []string {
	header := []string{CategoryColumn, SubCategoryColumn}
	for _, key := range MetricKeys() {
		header = append(header, key.Column())
	}
	return header
}
