package analytics

import "github.com/diillson/payments-dashboard-go/internal/domain/entity"

// record builds a record from column-name/raw-text pairs.
func record(category, subCategory string, cells map[string]string) entity.Record {
	r := entity.Record{Category: category, SubCategory: subCategory, Metrics: map[entity.PeriodMetricKey]string{}}
	for _, key := range entity.MetricKeys() {
		if v, ok := cells[key.Column()]; ok {
			r.Metrics[key] = v
		}
	}
	return r
}

// sampleDataset mirrors the shape of the payments file: a few transaction types with
// overlapping sub-types.
func sampleDataset() entity.Dataset {
	return entity.Dataset{Records: []entity.Record{
		record("Mobile Banking", "IBFT", map[string]string{
			"Q3_FY24_Volume": "1,200", "Q3_FY24_Value": "3,400.5",
			"Q3_FY25_Volume": "1,900", "Q3_FY25_Value": "5,000",
		}),
		record("Mobile Banking", "Bill Payment", map[string]string{
			"Q3_FY24_Volume": "300", "Q3_FY25_Volume": "0",
		}),
		record("Internet Banking", "IBFT", map[string]string{
			"Q3_FY24_Volume": "800", "Q3_FY25_Volume": "950",
		}),
		record("Internet Banking", "Utility", map[string]string{
			"Q3_FY24_Volume": "-", "Q3_FY25_Volume": " 12 ",
		}),
		record("POS", "Card", map[string]string{
			"Q3_FY24_Volume": "5,000", "Q3_FY25_Volume": "",
		}),
	}}
}
