package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/diillson/payments-dashboard-go/internal/domain/analytics"
	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
	"github.com/diillson/payments-dashboard-go/internal/domain/repository"
	"github.com/diillson/payments-dashboard-go/internal/shared/types"
)

// SelectionParams is the unparsed form of a Selection as it arrives from flags, config
// files or query strings.
type SelectionParams struct {
	Category    string
	SubCategory string
	Metric      string
	Period      string
	Search      string
	Scope       string
	Reset       bool
}

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	store       repository.RecordStore
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	store repository.RecordStore,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		store:       store,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// LoadConfig reads the optional config file. An empty path yields an empty config.
func (uc *DashboardUseCase) LoadConfig(path string) (*types.Config, error) {
	if path == "" {
		return &types.Config{}, nil
	}
	return uc.configRepo.LoadConfigFile(path)
}

// LoadDataset fetches and parses source, then installs it in the record store. On
// failure the store stays empty.
func (uc *DashboardUseCase) LoadDataset(ctx context.Context, source string) error {
	if uc.store.Loaded() {
		return types.ErrDatasetAlreadyLoaded
	}

	status := uc.console.Status(fmt.Sprintf("Loading dataset from %s...", source))
	defer status.Stop()

	ds, err := uc.datasetRepo.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("error loading data: %w", err)
	}

	status.Update(fmt.Sprintf("Indexing %d records...", ds.Len()))
	return uc.store.Install(ds)
}

// Dataset returns the installed dataset.
func (uc *DashboardUseCase) Dataset() (entity.Dataset, error) {
	return uc.store.Dataset()
}

// Options lists the category choices and the sub-category choices offered for category.
func (uc *DashboardUseCase) Options(category string) ([]string, []string, error) {
	ds, err := uc.store.Dataset()
	if err != nil {
		return nil, nil, err
	}
	return analytics.CategoryOptions(ds), analytics.SubCategoryOptions(ds, entity.ParseSelector(category)), nil
}

// ResolveSelection validates params against the loaded dataset. Empty values take the
// defaults of a freshly opened dashboard. Reset forces ALL/ALL and the Volume metric.
func (uc *DashboardUseCase) ResolveSelection(params SelectionParams) (entity.Selection, error) {
	ds, err := uc.store.Dataset()
	if err != nil {
		return entity.Selection{}, err
	}

	sel := entity.DefaultSelection()
	sel.Reset = params.Reset
	sel.Filter.SearchTerm = strings.TrimSpace(params.Search)

	if params.Metric != "" {
		if sel.Metric, err = entity.ParseMetricKind(params.Metric); err != nil {
			return entity.Selection{}, fmt.Errorf("%w: %q", types.ErrInvalidMetric, params.Metric)
		}
	}
	if params.Period != "" {
		if sel.SummaryPeriod, err = entity.ParsePeriod(params.Period); err != nil {
			return entity.Selection{}, fmt.Errorf("%w: %q", types.ErrInvalidPeriod, params.Period)
		}
	}
	if sel.TableScope, err = entity.ParseTableScope(params.Scope); err != nil {
		return entity.Selection{}, fmt.Errorf("%w: %q", types.ErrInvalidScope, params.Scope)
	}

	if sel.Reset {
		sel.Filter.Category = entity.All()
		sel.Filter.SubCategory = entity.All()
		sel.Metric = analytics.DefaultResetMetric
		return sel, nil
	}

	sel.Filter.Category = entity.ParseSelector(strings.TrimSpace(params.Category))
	sel.Filter.SubCategory = entity.ParseSelector(strings.TrimSpace(params.SubCategory))
	if !sel.Filter.SubCategory.IsAll() && !slices.Contains(analytics.SubCategoryOptions(ds, sel.Filter.Category), sel.Filter.SubCategory.Value()) {
		return entity.Selection{}, fmt.Errorf("%w: %q under %q", types.ErrInvalidSubCategory, sel.Filter.SubCategory, sel.Filter.Category)
	}

	return sel, nil
}

// ActiveRows returns the subset the summary and trend chart are computed from.
func (uc *DashboardUseCase) ActiveRows(sel entity.Selection) ([]entity.Record, error) {
	ds, err := uc.store.Dataset()
	if err != nil {
		return nil, err
	}
	return activeRows(ds, sel), nil
}

func activeRows(ds entity.Dataset, sel entity.Selection) []entity.Record {
	if sel.Reset {
		return analytics.ResetFilter(ds)
	}
	return analytics.Filter(ds, entity.FilterSpec{
		Category:    sel.Filter.Category,
		SubCategory: sel.Filter.SubCategory,
	})
}

// BuildView runs the whole pipeline for sel. The table starts from the active subset or
// the full dataset depending on the table scope and then applies the search term; the
// distributions always read the full dataset.
func (uc *DashboardUseCase) BuildView(sel entity.Selection) (entity.DashboardView, error) {
	ds, err := uc.store.Dataset()
	if err != nil {
		return entity.DashboardView{}, err
	}

	rows := activeRows(ds, sel)

	tableSource := rows
	if sel.TableScope == entity.ScopeAll {
		tableSource = ds.Records
	}

	return entity.DashboardView{
		Selection:          sel,
		CategoryOptions:    analytics.CategoryOptions(ds),
		SubCategoryOptions: analytics.SubCategoryOptions(ds, sel.Filter.Category),
		Rows:               rows,
		Summary:            analytics.Summarize(rows, sel.SummaryPeriod),
		Table:              analytics.ProjectTable(analytics.Search(tableSource, sel.Filter.SearchTerm), sel.Metric),
		Trend:              analytics.ProjectTrend(rows, sel.Metric),
		Distributions:      analytics.ProjectDistributions(ds.Records, sel.Filter.Category, sel.Metric),
	}, nil
}

// ExportCSV encodes the active subset for download.
func (uc *DashboardUseCase) ExportCSV(sel entity.Selection) (string, error) {
	rows, err := uc.ActiveRows(sel)
	if err != nil {
		return "", err
	}
	return analytics.EncodeCSV(rows), nil
}

// WriteReports writes view in every requested format. Failures are reported per format
// and joined into the returned error.
func (uc *DashboardUseCase) WriteReports(view entity.DashboardView, reportName string, reportTypes []string, dir string) error {
	var errs []error
	for _, reportType := range reportTypes {
		var (
			path string
			err  error
		)
		switch strings.ToLower(reportType) {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(view.Rows, reportName, dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(view, reportName, dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(view, reportName, dir)
		default:
			err = fmt.Errorf("%w: %s", types.ErrUnsupportedReport, reportType)
		}

		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", strings.ToUpper(reportType), err)
			errs = append(errs, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", strings.ToUpper(reportType), path)
	}
	return errors.Join(errs...)
}

// RunDashboard executa a funcionalidade principal do dashboard: carrega o dataset,
// renderiza o painel no terminal e exporta os relatórios pedidos.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	if !uc.store.Loaded() {
		if err := uc.LoadDataset(ctx, args.Data); err != nil {
			return err
		}
	}

	sel, err := uc.ResolveSelection(paramsFromArgs(args))
	if err != nil {
		return err
	}

	view, err := uc.BuildView(sel)
	if err != nil {
		return err
	}

	uc.renderView(view, args.Trend, args.Distribution)

	if len(args.ReportType) > 0 {
		return uc.WriteReports(view, args.ReportName, args.ReportType, args.Dir)
	}
	return nil
}

// RunExport writes the reports for the selection without rendering the dashboard.
func (uc *DashboardUseCase) RunExport(ctx context.Context, args *types.CLIArgs) error {
	if !uc.store.Loaded() {
		if err := uc.LoadDataset(ctx, args.Data); err != nil {
			return err
		}
	}

	sel, err := uc.ResolveSelection(paramsFromArgs(args))
	if err != nil {
		return err
	}

	view, err := uc.BuildView(sel)
	if err != nil {
		return err
	}

	reportTypes := args.ReportType
	if len(reportTypes) == 0 {
		reportTypes = []string{"csv"}
	}
	uc.console.LogInfo("Exporting %d records...", len(view.Rows))
	return uc.WriteReports(view, args.ReportName, reportTypes, args.Dir)
}

func paramsFromArgs(args *types.CLIArgs) SelectionParams {
	return SelectionParams{
		Category:    args.Category,
		SubCategory: args.SubCategory,
		Metric:      args.Metric,
		Period:      args.Period,
		Search:      args.Search,
		Scope:       args.Scope,
		Reset:       args.Reset,
	}
}
