package usecase

import (
	"fmt"

	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
	"github.com/diillson/payments-dashboard-go/internal/shared/types"
	"github.com/diillson/payments-dashboard-go/pkg/console"
)

// distributionPaletteStride spaces the palettes of consecutive period charts apart.
const distributionPaletteStride = 7

func (uc *DashboardUseCase) renderView(view entity.DashboardView, showTrend, showDistribution bool) {
	uc.renderSummary(view)
	uc.renderTable(view)

	if showTrend {
		uc.renderTrend(view)
	}
	if showDistribution {
		uc.renderDistributions(view)
	}
}

func (uc *DashboardUseCase) renderSummary(view entity.DashboardView) {
	s := view.Summary
	sel := view.Selection

	title := fmt.Sprintf("Summary - %s", s.Period.Label())
	if sel.Reset {
		title += " (reset)"
	} else if !sel.Filter.Category.IsAll() || !sel.Filter.SubCategory.IsAll() {
		title += fmt.Sprintf(" (%s / %s)", sel.Filter.Category, sel.Filter.SubCategory)
	}

	uc.console.DisplaySummary(title, []types.SummaryCard{
		{Label: "Total Volume", Value: console.FormatNumber(s.TotalVolume)},
		{Label: "Total Value", Value: console.FormatNumber(s.TotalValue)},
		{Label: "Transaction Types", Value: fmt.Sprintf("%d", s.CategoryCount)},
		{Label: "Sub-types", Value: fmt.Sprintf("%d", s.SubCategoryCount)},
	})
}

func (uc *DashboardUseCase) renderTable(view entity.DashboardView) {
	if len(view.Table) == 0 {
		uc.console.LogWarning("No records match the current selection")
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Transaction Type")
	table.AddColumn("Sub-type")
	for _, p := range entity.Periods() {
		table.AddColumn(fmt.Sprintf("%s %s", p.Label(), view.Selection.Metric))
	}

	for _, row := range view.Table {
		cells := []interface{}{row.Category, row.SubCategory}
		for _, v := range row.Values {
			cells = append(cells, console.FormatNumber(v))
		}
		table.AddRow(cells...)
	}

	uc.console.Print(table.Render())
	uc.console.Println()
}

func (uc *DashboardUseCase) renderTrend(view entity.DashboardView) {
	periods := make([]string, 0, len(entity.Periods()))
	for _, p := range entity.Periods() {
		periods = append(periods, p.Label())
	}

	series := make([]types.ChartSeries, 0, len(view.Trend))
	for _, s := range view.Trend {
		series = append(series, types.ChartSeries{Label: s.Key, Values: s.Series})
	}

	uc.console.DisplayTrendChart(fmt.Sprintf("Trend - %s", view.Selection.Metric.AxisTitle()), periods, series)
}

func (uc *DashboardUseCase) renderDistributions(view entity.DashboardView) {
	category := view.Selection.Filter.Category
	if category.IsAll() {
		uc.console.LogInfo("Select a transaction type to see its sub-type distribution")
		return
	}

	for _, dist := range view.Distributions {
		slices := make([]types.ChartSlice, 0, len(dist.Points))
		for _, p := range dist.Points {
			slices = append(slices, types.ChartSlice{Label: p.Label, Value: p.Value})
		}
		title := fmt.Sprintf("%s - %s Distribution (%s)", category, dist.Period.Label(), view.Selection.Metric)
		uc.console.DisplayDistribution(title, slices, dist.Period.Index()*distributionPaletteStride)
	}
}
