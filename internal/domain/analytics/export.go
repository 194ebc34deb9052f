package analytics

import (
	"strings"

	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
)

// DefaultExportName is the file name offered for the filtered-data download.
const DefaultExportName = "pakistan_payment_data_filtered.csv"

const delimiter = ","

// EncodeCSV serializes records with the fixed export header. Raw cell text is written
// as-is; a field is wrapped in double quotes only when it contains the delimiter, and
// embedded quotes are not escaped.
func EncodeCSV(records []entity.Record) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(entity.Header(), delimiter))

	keys := entity.MetricKeys()
	fields := make([]string, 0, len(keys)+2)
	for _, r := range records {
		fields = fields[:0]
		fields = append(fields, quoteField(r.Category), quoteField(r.SubCategory))
		for _, key := range keys {
			fields = append(fields, quoteField(r.Raw(key)))
		}
		lines = append(lines, strings.Join(fields, delimiter))
	}
	return strings.Join(lines, "\n")
}

func quoteField(v string) string {
	if strings.Contains(v, delimiter) {
		return `"` + v + `"`
	}
	return v
}
