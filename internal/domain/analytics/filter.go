package analytics

import (
	"strings"

	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
)

// Default period and metric of the reset filter.
var (
	DefaultResetPeriod = entity.LatestPeriod()
	DefaultResetMetric = entity.Volume
)

// Matches reports whether a record passes the category and sub-category selectors.
func Matches(r entity.Record, criteria entity.FilterSpec) bool {
	return criteria.Category.Matches(r.Category) && criteria.SubCategory.Matches(r.SubCategory)
}

// Filter returns, in dataset order, every record matching criteria. The search term is not
// applied here; see Search.
func Filter(ds entity.Dataset, criteria entity.FilterSpec) []entity.Record {
	out := make([]entity.Record, 0, len(ds.Records))
	for _, r := range ds.Records {
		if Matches(r, criteria) {
			out = append(out, r)
		}
	}
	return out
}

// Search keeps the records whose category or sub-category contains term,
// case-insensitively. An empty term keeps everything.
func Search(records []entity.Record, term string) []entity.Record {
	out := make([]entity.Record, 0, len(records))
	needle := strings.ToLower(term)
	for _, r := range records {
		if needle == "" ||
			strings.Contains(strings.ToLower(r.Category), needle) ||
			strings.Contains(strings.ToLower(r.SubCategory), needle) {
			out = append(out, r)
		}
	}
	return out
}

// ResetFilter keeps only the records with non-zero activity for the default reset
// period and metric.
func ResetFilter(ds entity.Dataset) []entity.Record {
	key := entity.Key(DefaultResetPeriod, DefaultResetMetric)
	out := make([]entity.Record, 0, len(ds.Records))
	for _, r := range ds.Records {
		if Normalize(r.Raw(key)) != 0 {
			out = append(out, r)
		}
	}
	return out
}

// CategoryOptions lists the distinct categories in first-seen order.
func CategoryOptions(ds entity.Dataset) []string {
	return distinct(ds.Records, func(r entity.Record) (string, bool) {
		return r.Category, true
	})
}

// SubCategoryOptions lists the distinct sub-categories, in first-seen order, of the
// records belonging to category (or of every record when category is ALL).
func SubCategoryOptions(ds entity.Dataset, category entity.Selector) []string {
	return distinct(ds.Records, func(r entity.Record) (string, bool) {
		return r.SubCategory, category.Matches(r.Category)
	})
}

func distinct(records []entity.Record, pick func(entity.Record) (string, bool)) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range records {
		v, ok := pick(r)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
