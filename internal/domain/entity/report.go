package entity

// Report is the serialized form of a DashboardView shared by the JSON export and the
// HTTP API. Periods and metrics are spelled with their source tokens.
type Report struct {
	Selection     ReportSelection      `json:"selection"`
	Periods       []string             `json:"periods"`
	Summary       ReportSummary        `json:"summary"`
	Rows          []map[string]string  `json:"rows"`
	Table         []TableRow           `json:"table"`
	TrendAxis     string               `json:"trend_axis"`
	Trend         []TrendSeries        `json:"trend"`
	Distributions []ReportDistribution `json:"distributions"`
}

// ReportSelection echoes the selection that produced a report.
type ReportSelection struct {
	Category      string `json:"category"`
	SubCategory   string `json:"sub_category"`
	Search        string `json:"search,omitempty"`
	Metric        string `json:"metric"`
	SummaryPeriod string `json:"summary_period"`
	TableScope    string `json:"table_scope"`
	Reset         bool   `json:"reset"`
}

// ReportSummary is a Summary labelled with its period.
type ReportSummary struct {
	Period      string `json:"period"`
	PeriodLabel string `json:"period_label"`
	Summary
}

// ReportDistribution is a PeriodDistribution labelled with its period.
type ReportDistribution struct {
	Period string              `json:"period"`
	Points []DistributionPoint `json:"points"`
}

// NewReport flattens view. Rows are keyed by source column name so that the JSON
// mirrors the CSV export.
func NewReport(view DashboardView) Report {
	sel := view.Selection

	periods := make([]string, 0, len(Periods()))
	for _, p := range Periods() {
		periods = append(periods, p.String())
	}

	rows := make([]map[string]string, 0, len(view.Rows))
	for _, r := range view.Rows {
		row := r.Columns()
		row[CategoryColumn] = r.Category
		row[SubCategoryColumn] = r.SubCategory
		rows = append(rows, row)
	}

	dists := make([]ReportDistribution, 0, len(view.Distributions))
	for _, d := range view.Distributions {
		points := d.Points
		if points == nil {
			points = []DistributionPoint{}
		}
		dists = append(dists, ReportDistribution{Period: d.Period.String(), Points: points})
	}

	table := view.Table
	if table == nil {
		table = []TableRow{}
	}
	trend := view.Trend
	if trend == nil {
		trend = []TrendSeries{}
	}

	return Report{
		Selection: ReportSelection{
			Category:      sel.Filter.Category.String(),
			SubCategory:   sel.Filter.SubCategory.String(),
			Search:        sel.Filter.SearchTerm,
			Metric:        sel.Metric.String(),
			SummaryPeriod: sel.SummaryPeriod.String(),
			TableScope:    string(sel.TableScope),
			Reset:         sel.Reset,
		},
		Periods: periods,
		Summary: ReportSummary{
			Period:      view.Summary.Period.String(),
			PeriodLabel: view.Summary.Period.Label(),
			Summary:     view.Summary,
		},
		Rows:          rows,
		Table:         table,
		TrendAxis:     sel.Metric.AxisTitle(),
		Trend:         trend,
		Distributions: dists,
	}
}
