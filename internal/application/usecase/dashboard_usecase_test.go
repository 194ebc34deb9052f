package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/diillson/payments-dashboard-go/internal/adapter/driven/memory"
	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
	"github.com/diillson/payments-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDatasetRepository struct {
	mock.Mock
}

func (m *mockDatasetRepository) Load(ctx context.Context, source string) (entity.Dataset, error) {
	args := m.Called(ctx, source)
	return args.Get(0).(entity.Dataset), args.Error(1)
}

type mockExportRepository struct {
	mock.Mock
}

func (m *mockExportRepository) ExportToCSV(rows []entity.Record, filename, outputDir string) (string, error) {
	args := m.Called(rows, filename, outputDir)
	return args.String(0), args.Error(1)
}

func (m *mockExportRepository) ExportToJSON(view entity.DashboardView, filename, outputDir string) (string, error) {
	args := m.Called(view, filename, outputDir)
	return args.String(0), args.Error(1)
}

func (m *mockExportRepository) ExportToPDF(view entity.DashboardView, filename, outputDir string) (string, error) {
	args := m.Called(view, filename, outputDir)
	return args.String(0), args.Error(1)
}

type mockConfigRepository struct {
	mock.Mock
}

func (m *mockConfigRepository) LoadConfigFile(filePath string) (*types.Config, error) {
	args := m.Called(filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Config), args.Error(1)
}

// fakeConsole records what the use case renders.
type fakeConsole struct {
	errors        []string
	successes     []string
	summaries     []string
	trendCharts   [][]types.ChartSeries
	distributions []string
	offsets       []int
	tables        int
	status        *fakeStatus
}

type fakeStatus struct {
	messages []string
	stopped  bool
}

func (s *fakeStatus) Update(msg string) { s.messages = append(s.messages, msg) }
func (s *fakeStatus) Stop() { s.stopped = true }

type nopTable struct{ rows int }

func (t *nopTable) AddColumn(string, ...interface{}) {}
func (t *nopTable) AddRow(...interface{}) { t.rows++ }
func (t *nopTable) Render() string { return "" }

func (c *fakeConsole) Print(...interface{}) {}
func (c *fakeConsole) Println(...interface{}) {}
func (c *fakeConsole) LogInfo(string, ...interface{}) {}
func (c *fakeConsole) LogWarning(string, ...interface{}) {}
func (c *fakeConsole) Status(msg string) types.StatusHandle {
	c.status = &fakeStatus{messages: []string{msg}}
	return c.status
}
func (c *fakeConsole) CreateTable() types.TableInterface { c.tables++; return &nopTable{} }
func (c *fakeConsole) LogError(f string, a ...interface{}) { c.errors = append(c.errors, fmt.Sprintf(f, a...)) }
func (c *fakeConsole) LogSuccess(f string, a ...interface{}) { c.successes = append(c.successes, fmt.Sprintf(f, a...)) }

func (c *fakeConsole) DisplaySummary(title string, _ []types.SummaryCard) {
	c.summaries = append(c.summaries, title)
}

func (c *fakeConsole) DisplayTrendChart(_ string, _ []string, series []types.ChartSeries) {
	c.trendCharts = append(c.trendCharts, series)
}

func (c *fakeConsole) DisplayDistribution(title string, _ []types.ChartSlice, offset int) {
	c.distributions = append(c.distributions, title)
	c.offsets = append(c.offsets, offset)
}

func rec(category, subCategory string, cells map[string]string) entity.Record {
	r := entity.Record{Category: category, SubCategory: subCategory, Metrics: map[entity.PeriodMetricKey]string{}}
	for _, key := range entity.MetricKeys() {
		r.Metrics[key] = cells[key.Column()]
	}
	return r
}

func testDataset() entity.Dataset {
	return entity.Dataset{Records: []entity.Record{
		rec("Mobile Banking", "IBFT", map[string]string{"Q3_FY24_Volume": "1,000", "Q3_FY25_Volume": "2,000", "Q3_FY25_Value": "50"}),
		rec("Mobile Banking", "Bill Payment", map[string]string{"Q3_FY24_Volume": "10", "Q3_FY25_Volume": "0"}),
		rec("POS", "Card", map[string]string{"Q3_FY24_Volume": "500", "Q3_FY25_Volume": "700", "Q3_FY25_Value": "9"}),
	}}
}

type fixture struct {
	uc      *DashboardUseCase
	data    *mockDatasetRepository
	export  *mockExportRepository
	config  *mockConfigRepository
	console *fakeConsole
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		data:    new(mockDatasetRepository),
		export:  new(mockExportRepository),
		config:  new(mockConfigRepository),
		console: &fakeConsole{},
	}
	f.uc = NewDashboardUseCase(f.data, memory.NewRecordStore(), f.export, f.config, f.console)
	return f
}

func loadedFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	f.data.On("Load", mock.Anything, "data.csv").Return(testDataset(), nil)
	require.NoError(t, f.uc.LoadDataset(context.Background(), "data.csv"))
	return f
}

func TestLoadDataset_FailureLeavesStoreEmpty(t *testing.T) {
	f := newFixture(t)
	f.data.On("Load", mock.Anything, "missing.csv").Return(entity.Dataset{}, errors.New("no such file"))

	err := f.uc.LoadDataset(context.Background(), "missing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading data")

	_, err = f.uc.Dataset()
	assert.ErrorIs(t, err, types.ErrDatasetNotLoaded)
	assert.True(t, f.console.status.stopped)
}

func TestLoadDataset_ReportsProgress(t *testing.T) {
	f := loadedFixture(t)

	require.NotNil(t, f.console.status)
	assert.Equal(t, []string{"Loading dataset from data.csv...", "Indexing 3 records..."}, f.console.status.messages)
	assert.True(t, f.console.status.stopped)
}

func TestLoadDataset_Once(t *testing.T) {
	f := loadedFixture(t)

	err := f.uc.LoadDataset(context.Background(), "data.csv")
	assert.ErrorIs(t, err, types.ErrDatasetAlreadyLoaded)
	f.data.AssertNumberOfCalls(t, "Load", 1)
}

func TestResolveSelection_RequiresDataset(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ResolveSelection(SelectionParams{})
	assert.ErrorIs(t, err, types.ErrDatasetNotLoaded)
}

func TestResolveSelection(t *testing.T) {
	f := loadedFixture(t)

	tests := []struct {
		name    string
		params  SelectionParams
		wantErr error
		check   func(t *testing.T, sel entity.Selection)
	}{
		{
			name:   "defaults",
			params: SelectionParams{},
			check: func(t *testing.T, sel entity.Selection) {
				assert.Equal(t, entity.DefaultSelection(), sel)
			},
		},
		{
			name:   "explicit",
			params: SelectionParams{Category: "Mobile Banking", SubCategory: "IBFT", Metric: "VALUE", Period: "Q3 FY24", Scope: "all", Search: " ibft "},
			check: func(t *testing.T, sel entity.Selection) {
				assert.Equal(t, entity.Only("Mobile Banking"), sel.Filter.Category)
				assert.Equal(t, entity.Only("IBFT"), sel.Filter.SubCategory)
				assert.Equal(t, entity.Value, sel.Metric)
				assert.Equal(t, entity.Q3FY24, sel.SummaryPeriod)
				assert.Equal(t, entity.ScopeAll, sel.TableScope)
				assert.Equal(t, "ibft", sel.Filter.SearchTerm)
			},
		},
		{
			name:   "reset forces all and volume",
			params: SelectionParams{Category: "POS", Metric: "value", Reset: true},
			check: func(t *testing.T, sel entity.Selection) {
				assert.True(t, sel.Filter.Category.IsAll())
				assert.True(t, sel.Filter.SubCategory.IsAll())
				assert.Equal(t, entity.Volume, sel.Metric)
			},
		},
		{name: "bad metric", params: SelectionParams{Metric: "count"}, wantErr: types.ErrInvalidMetric},
		{name: "bad period", params: SelectionParams{Period: "Q1_FY23"}, wantErr: types.ErrInvalidPeriod},
		{name: "bad scope", params: SelectionParams{Scope: "some"}, wantErr: types.ErrInvalidScope},
		{name: "stale sub-category", params: SelectionParams{Category: "POS", SubCategory: "IBFT"}, wantErr: types.ErrInvalidSubCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := f.uc.ResolveSelection(tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, sel)
		})
	}
}

func TestBuildView(t *testing.T) {
	f := loadedFixture(t)

	sel, err := f.uc.ResolveSelection(SelectionParams{Category: "Mobile Banking", Search: "bill"})
	require.NoError(t, err)

	view, err := f.uc.BuildView(sel)
	require.NoError(t, err)

	assert.Equal(t, []string{"Mobile Banking", "POS"}, view.CategoryOptions)
	assert.Equal(t, []string{"IBFT", "Bill Payment"}, view.SubCategoryOptions)
	assert.Len(t, view.Rows, 2)
	assert.Equal(t, 2000.0, view.Summary.TotalVolume)
	assert.Equal(t, 50.0, view.Summary.TotalValue)
	assert.Equal(t, 1, view.Summary.CategoryCount)
	assert.Equal(t, 2, view.Summary.SubCategoryCount)

	require.Len(t, view.Table, 1)
	assert.Equal(t, "Bill Payment", view.Table[0].SubCategory)

	require.Len(t, view.Trend, 2)
	assert.Equal(t, "Mobile Banking - IBFT", view.Trend[0].Key)

	require.Len(t, view.Distributions, 5)
	assert.Equal(t, []entity.DistributionPoint{{Label: "IBFT", Value: 2000}, {Label: "Bill Payment", Value: 0}}, view.Distributions[4].Points)
}

func TestBuildView_ScopeAllAndReset(t *testing.T) {
	f := loadedFixture(t)

	sel, err := f.uc.ResolveSelection(SelectionParams{Category: "POS", Scope: "all"})
	require.NoError(t, err)
	view, err := f.uc.BuildView(sel)
	require.NoError(t, err)
	assert.Len(t, view.Rows, 1)
	assert.Len(t, view.Table, 3)

	sel, err = f.uc.ResolveSelection(SelectionParams{Reset: true})
	require.NoError(t, err)
	view, err = f.uc.BuildView(sel)
	require.NoError(t, err)

	// Bill Payment has no Q3 FY25 volume.
	require.Len(t, view.Rows, 2)
	assert.Equal(t, "IBFT", view.Rows[0].SubCategory)
	assert.Equal(t, "Card", view.Rows[1].SubCategory)
	for _, d := range view.Distributions {
		assert.Empty(t, d.Points)
	}
}

func TestExportCSV(t *testing.T) {
	f := loadedFixture(t)

	sel, err := f.uc.ResolveSelection(SelectionParams{Category: "POS"})
	require.NoError(t, err)

	out, err := f.uc.ExportCSV(sel)
	require.NoError(t, err)
	assert.Contains(t, out, "Transaction Type,Sub_type,Q3_FY24_Volume")
	assert.Contains(t, out, "\nPOS,Card,500,")
	assert.NotContains(t, out, "Mobile Banking")
}

func TestRunDashboard(t *testing.T) {
	f := newFixture(t)
	f.data.On("Load", mock.Anything, "data.csv").Return(testDataset(), nil)
	f.export.On("ExportToCSV", mock.Anything, "out", "/tmp/reports").Return("/tmp/reports/out.csv", nil)
	f.export.On("ExportToPDF", mock.Anything, "out", "/tmp/reports").Return("", errors.New("disk full"))

	args := &types.CLIArgs{
		Data:         "data.csv",
		Category:     "Mobile Banking",
		ReportName:   "out",
		ReportType:   []string{"csv", "pdf", "xml"},
		Dir:          "/tmp/reports",
		Trend:        true,
		Distribution: true,
	}

	err := f.uc.RunDashboard(context.Background(), args)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnsupportedReport)
	assert.Contains(t, err.Error(), "disk full")

	assert.Equal(t, []string{"Summary - Q3 FY25 (Mobile Banking / all)"}, f.console.summaries)
	assert.Equal(t, 1, f.console.tables)
	require.Len(t, f.console.trendCharts, 1)
	assert.Len(t, f.console.trendCharts[0], 2)
	assert.Equal(t, []int{0, 7, 14, 21, 28}, f.console.offsets)
	assert.Equal(t, []string{"Successfully exported to CSV: /tmp/reports/out.csv"}, f.console.successes)
	assert.Len(t, f.console.errors, 2)

	f.export.AssertExpectations(t)
}

func TestRunExport_DefaultsToCSV(t *testing.T) {
	f := newFixture(t)
	f.data.On("Load", mock.Anything, "data.csv").Return(testDataset(), nil)
	f.export.On("ExportToCSV", mock.MatchedBy(func(rows []entity.Record) bool { return len(rows) == 3 }), "name", "").
		Return("name.csv", nil)

	err := f.uc.RunExport(context.Background(), &types.CLIArgs{Data: "data.csv", ReportName: "name"})
	require.NoError(t, err)
	f.export.AssertExpectations(t)
}

func TestLoadConfig(t *testing.T) {
	f := newFixture(t)
	f.config.On("LoadConfigFile", "dashboard.toml").Return(&types.Config{Metric: "value"}, nil)

	cfg, err := f.uc.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, types.Config{}, *cfg)

	cfg, err = f.uc.LoadConfig("dashboard.toml")
	require.NoError(t, err)
	assert.Equal(t, "value", cfg.Metric)
}
