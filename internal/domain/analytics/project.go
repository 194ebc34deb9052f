package analytics

import (
	"sort"

	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
)

// TrendLimit caps the number of series in the trend chart.
const TrendLimit = 10

// TrendKey is the display key of a (category, sub-category) group.
func TrendKey(r entity.Record) string {
	return r.Category + " - " + r.SubCategory
}

// SeriesFor extracts the normalized metric of a record for every period.
func SeriesFor(r entity.Record, metric entity.MetricKind) entity.Series {
	periods := entity.Periods()
	series := make(entity.Series, len(periods))
	for i, p := range periods {
		series[i] = Normalize(r.Raw(entity.Key(p, metric)))
	}
	return series
}

// ProjectTrend groups records by (category, sub-category), takes the first record of
// each group as its representative, and returns at most TrendLimit series ordered by
// descending total. Groups with equal totals keep their first-seen order.
func ProjectTrend(records []entity.Record, metric entity.MetricKind) []entity.TrendSeries {
	index := make(map[string]struct{}, len(records))
	groups := make([]entity.TrendSeries, 0, len(records))
	for _, r := range records {
		key := TrendKey(r)
		if _, ok := index[key]; ok {
			continue
		}
		index[key] = struct{}{}
		groups = append(groups, entity.TrendSeries{Key: key, Series: SeriesFor(r, metric)})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Series.Sum() > groups[j].Series.Sum()
	})

	if len(groups) > TrendLimit {
		groups = groups[:TrendLimit]
	}
	return groups
}

// ProjectDistribution returns the sub-category breakdown of one category for one period,
// ordered by descending value (stable). It always reads the full record set and is
// empty when category is ALL.
func ProjectDistribution(all []entity.Record, category entity.Selector, metric entity.MetricKind, period entity.Period) []entity.DistributionPoint {
	points := []entity.DistributionPoint{}
	if category.IsAll() {
		return points
	}

	key := entity.Key(period, metric)
	for _, r := range all {
		if r.Category != category.Value() {
			continue
		}
		points = append(points, entity.DistributionPoint{
			Label: r.SubCategory,
			Value: Normalize(r.Raw(key)),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})
	return points
}

// ProjectDistributions computes ProjectDistribution for every period in order.
func ProjectDistributions(all []entity.Record, category entity.Selector, metric entity.MetricKind) []entity.PeriodDistribution {
	out := make([]entity.PeriodDistribution, 0, len(entity.Periods()))
	for _, p := range entity.Periods() {
		out = append(out, entity.PeriodDistribution{
			Period: p,
			Points: ProjectDistribution(all, category, metric, p),
		})
	}
	return out
}

// ProjectTable renders each record as a table row of the chosen metric.
func ProjectTable(records []entity.Record, metric entity.MetricKind) []entity.TableRow {
	rows := make([]entity.TableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, entity.TableRow{
			Category:    r.Category,
			SubCategory: r.SubCategory,
			Values:      SeriesFor(r, metric),
		})
	}
	return rows
}
