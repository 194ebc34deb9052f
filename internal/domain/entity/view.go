package entity

// Series holds one number per period, aligned with Periods().
type Series []float64

// Sum returns the total of the series.
func (s Series) Sum() float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

// Summary is the headline statistics block for one period.
type Summary struct {
	Period           Period  `json:"-"`
	TotalVolume      float64 `json:"total_volume"`
	TotalValue       float64 `json:"total_value"`
	CategoryCount    int     `json:"category_count"`
	SubCategoryCount int     `json:"sub_category_count"`
}

// TrendSeries is one line of the trend chart.
type TrendSeries struct {
	Key    string `json:"key"`
	Series Series `json:"series"`
}

// DistributionPoint is one slice of a distribution chart.
type DistributionPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PeriodDistribution is the distribution of one category for one period.
type PeriodDistribution struct {
	Period Period              `json:"-"`
	Points []DistributionPoint `json:"points"`
}

// TableRow is one line of the data table: the chosen metric for every period.
type TableRow struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	Values      Series `json:"values"`
}

// DashboardView bundles every pipeline output for one selection.
type DashboardView struct {
	Selection          Selection
	CategoryOptions    []string
	SubCategoryOptions []string
	Rows               []Record
	Summary            Summary
	Table              []TableRow
	Trend              []TrendSeries
	Distributions      []PeriodDistribution
}
