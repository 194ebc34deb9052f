package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{in: "Q3_FY24", want: Q3FY24},
		{in: "q1 fy25", want: Q1FY25},
		{in: " Q3_FY25 ", want: Q3FY25},
		{in: "Q1_FY24", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestMetricKeys_ColumnOrder(t *testing.T) {
	assert.Equal(t, []string{
		"Transaction Type", "Sub_type",
		"Q3_FY24_Volume", "Q3_FY24_Value",
		"Q4_FY24_Volume", "Q4_FY24_Value",
		"Q1_FY25_Volume", "Q1_FY25_Value",
		"Q2_FY25_Volume", "Q2_FY25_Value",
		"Q3_FY25_Volume", "Q3_FY25_Value",
	}, Header())
}

func TestSelector(t *testing.T) {
	assert.True(t, ParseSelector("").IsAll())
	assert.True(t, ParseSelector("ALL").IsAll())
	assert.Equal(t, All(), Selector{})

	pos := ParseSelector("POS")
	assert.False(t, pos.IsAll())
	assert.True(t, pos.Matches("POS"))
	assert.False(t, pos.Matches("pos"))
	assert.True(t, All().Matches("anything"))
	assert.Equal(t, "all", All().String())
}

func TestNewReport(t *testing.T) {
	sel := DefaultSelection()
	sel.Filter.Category = Only("POS")
	sel.Metric = Value

	view := DashboardView{
		Selection: sel,
		Rows: []Record{{
			Category:    "POS",
			SubCategory: "Card",
			Metrics:     map[PeriodMetricKey]string{Key(Q3FY24, Value): "1,000"},
		}},
		Summary:       Summary{Period: Q3FY25, TotalValue: 12},
		Distributions: []PeriodDistribution{{Period: Q4FY24}},
	}

	report := NewReport(view)
	assert.Equal(t, "POS", report.Selection.Category)
	assert.Equal(t, "all", report.Selection.SubCategory)
	assert.Equal(t, "Value", report.Selection.Metric)
	assert.Equal(t, "Value (Millions PKR)", report.TrendAxis)
	assert.Equal(t, "Q3 FY25", report.Summary.PeriodLabel)
	assert.Equal(t, "1,000", report.Rows[0]["Q3_FY24_Value"])
	assert.Equal(t, "", report.Rows[0]["Q3_FY25_Volume"])
	assert.Equal(t, "Card", report.Rows[0][SubCategoryColumn])

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"distributions":[{"period":"Q4_FY24","points":[]}]`)
	assert.Contains(t, string(data), `"table":[]`)
	assert.Contains(t, string(data), `"total_value":12`)
}
