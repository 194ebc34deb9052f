package analytics

import "github.com/diillson/payments-dashboard-go/internal/domain/entity"

// Summarize totals the Volume and Value cells of period over records and counts the
// distinct categories and sub-categories present.
func Summarize(records []entity.Record, period entity.Period) entity.Summary {
	summary := entity.Summary{Period: period}
	categories := make(map[string]struct{})
	subCategories := make(map[string]struct{})

	volumeKey := entity.Key(period, entity.Volume)
	valueKey := entity.Key(period, entity.Value)
	for _, r := range records {
		summary.TotalVolume += Normalize(r.Raw(volumeKey))
		summary.TotalValue += Normalize(r.Raw(valueKey))
		categories[r.Category] = struct{}{}
		subCategories[r.SubCategory] = struct{}{}
	}

	summary.CategoryCount = len(categories)
	summary.SubCategoryCount = len(subCategories)
	return summary
}
