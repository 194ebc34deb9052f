package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diillson/payments-dashboard-go/internal/adapter/driven/memory"
	"github.com/diillson/payments-dashboard-go/internal/application/usecase"
	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(category, subCategory string, cells map[string]string) entity.Record {
	r := entity.Record{Category: category, SubCategory: subCategory, Metrics: map[entity.PeriodMetricKey]string{}}
	for _, key := range entity.MetricKeys() {
		r.Metrics[key] = cells[key.Column()]
	}
	return r
}

func newTestServer(t *testing.T, loaded bool) *httptest.Server {
	t.Helper()

	store := memory.NewRecordStore()
	if loaded {
		require.NoError(t, store.Install(entity.Dataset{Records: []entity.Record{
			record("Mobile Banking", "IBFT", map[string]string{"Q3_FY24_Volume": "1,000", "Q3_FY25_Volume": "2,000", "Q3_FY25_Value": "1,500.5"}),
			record("Mobile Banking", "Bill Payment", map[string]string{"Q3_FY24_Volume": "10", "Q3_FY25_Volume": "0"}),
			record("POS", "Card", map[string]string{"Q3_FY24_Volume": "500", "Q3_FY25_Volume": "700"}),
		}}))
	}

	dashboard := usecase.NewDashboardUseCase(nil, store, nil, nil, nil)
	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Dashboard: dashboard,
			Logger:    zerolog.New(zerolog.NewTestWriter(t)),
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func unmarshalResponse[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestWebAPI_Endpoints(t *testing.T) {
	srv := newTestServer(t, true)

	t.Run("health", func(t *testing.T) {
		resp, body := get(t, srv, "/api/v1/healthz")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		health := unmarshalResponse[healthResponse](t, body)
		assert.Equal(t, "ok", health.Status)
		assert.Equal(t, 3, health.Records)
	})

	t.Run("options", func(t *testing.T) {
		resp, body := get(t, srv, "/api/v1/options?category=Mobile+Banking")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		opts := unmarshalResponse[optionsResponse](t, body)
		assert.Equal(t, []string{"Mobile Banking", "POS"}, opts.Categories)
		assert.Equal(t, []string{"IBFT", "Bill Payment"}, opts.SubCategories)
	})

	t.Run("summary", func(t *testing.T) {
		resp, body := get(t, srv, "/api/v1/summary?category=Mobile+Banking&period=Q3_FY25")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		summary := unmarshalResponse[entity.ReportSummary](t, body)
		assert.Equal(t, "Q3_FY25", summary.Period)
		assert.Equal(t, "Q3 FY25", summary.PeriodLabel)
		assert.Equal(t, 2000.0, summary.TotalVolume)
		assert.Equal(t, 1500.5, summary.TotalValue)
		assert.Equal(t, 2, summary.SubCategoryCount)
	})

	t.Run("table with search over all records", func(t *testing.T) {
		resp, body := get(t, srv, "/api/v1/table?category=POS&scope=all&search=bill")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		table := unmarshalResponse[tableResponse](t, body)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "Bill Payment", table.Rows[0].SubCategory)
		assert.Len(t, table.Periods, 5)
	})

	t.Run("trend", func(t *testing.T) {
		resp, body := get(t, srv, "/api/v1/trend?metric=value")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		trend := unmarshalResponse[trendResponse](t, body)
		assert.Equal(t, "Value (Millions PKR)", trend.Axis)
		require.Len(t, trend.Series, 3)
		assert.Equal(t, "Mobile Banking - IBFT", trend.Series[0].Key)
	})

	t.Run("distribution", func(t *testing.T) {
		resp, body := get(t, srv, "/api/v1/distribution?category=Mobile+Banking")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		dist := unmarshalResponse[distributionResponse](t, body)
		require.Len(t, dist.Distributions, 5)
		assert.Equal(t, "Q3_FY24", dist.Distributions[0].Period)
		assert.Equal(t, []entity.DistributionPoint{{Label: "IBFT", Value: 1000}, {Label: "Bill Payment", Value: 10}}, dist.Distributions[0].Points)
	})

	t.Run("dashboard with reset", func(t *testing.T) {
		resp, body := get(t, srv, "/api/v1/dashboard?category=POS&reset=true")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		dash := unmarshalResponse[dashboardResponse](t, body)
		assert.Equal(t, "all", dash.Selection.Category)
		assert.True(t, dash.Selection.Reset)
		assert.Len(t, dash.Rows, 2)
		assert.Equal(t, []string{"Mobile Banking", "POS"}, dash.Options.Categories)
	})

	t.Run("export", func(t *testing.T) {
		resp, body := get(t, srv, "/api/v1/export.csv?category=POS")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, `attachment; filename="pakistan_payment_data_filtered.csv"`, resp.Header.Get("Content-Disposition"))
		assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))

		lines := strings.Split(string(body), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "Transaction Type,Sub_type,"))
		assert.True(t, strings.HasPrefix(lines[1], "POS,Card,500,"))
	})
}

func TestWebAPI_Errors(t *testing.T) {
	srv := newTestServer(t, true)

	tests := []struct {
		name   string
		path   string
		status int
		msg    string
	}{
		{name: "metric", path: "/api/v1/summary?metric=count", status: http.StatusBadRequest, msg: "invalid metric"},
		{name: "period", path: "/api/v1/summary?period=Q9", status: http.StatusBadRequest, msg: "invalid period"},
		{name: "scope", path: "/api/v1/table?scope=some", status: http.StatusBadRequest, msg: "invalid table scope"},
		{name: "sub-category", path: "/api/v1/trend?category=POS&subCategory=IBFT", status: http.StatusBadRequest, msg: "sub-category"},
		{name: "reset", path: "/api/v1/dashboard?reset=maybe", status: http.StatusBadRequest, msg: "invalid reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv, tt.path)
			assert.Equal(t, tt.status, resp.StatusCode)
			errResp := unmarshalResponse[errorResponse](t, body)
			assert.Equal(t, "error", errResp.Status)
			assert.Contains(t, errResp.Error, tt.msg)
		})
	}
}

func TestWebAPI_NotLoaded(t *testing.T) {
	srv := newTestServer(t, false)

	resp, _ := get(t, srv, "/api/v1/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
