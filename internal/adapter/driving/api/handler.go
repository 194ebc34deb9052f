package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/diillson/payments-dashboard-go/internal/application/usecase"
	"github.com/diillson/payments-dashboard-go/internal/domain/analytics"
	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
	"github.com/diillson/payments-dashboard-go/internal/shared/types"
	"github.com/diillson/payments-dashboard-go/pkg/version"
	"github.com/rs/zerolog"
)

// Dashboard is the part of the dashboard use case the API serves.
type Dashboard interface {
	Dataset() (entity.Dataset, error)
	Options(category string) ([]string, []string, error)
	ResolveSelection(params usecase.SelectionParams) (entity.Selection, error)
	BuildView(sel entity.Selection) (entity.DashboardView, error)
	ExportCSV(sel entity.Selection) (string, error)
}

type Handler struct {
	dashboard Dashboard
}

func NewHandler(dashboard Dashboard) *Handler {
	return &Handler{dashboard: dashboard}
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type healthResponse struct {
	Status  string       `json:"status"`
	Records int          `json:"records"`
	Version version.Info `json:"version"`
}

type optionsResponse struct {
	Categories    []string `json:"categories"`
	SubCategories []string `json:"sub_categories"`
}

type dashboardResponse struct {
	Options optionsResponse `json:"options"`
	entity.Report
}

type tableResponse struct {
	Metric  string            `json:"metric"`
	Scope   string            `json:"scope"`
	Search  string            `json:"search,omitempty"`
	Periods []string          `json:"periods"`
	Rows    []entity.TableRow `json:"rows"`
}

type trendResponse struct {
	Metric  string               `json:"metric"`
	Axis    string               `json:"axis"`
	Periods []string             `json:"periods"`
	Series  []entity.TrendSeries `json:"series"`
}

type distributionResponse struct {
	Category      string                      `json:"category"`
	Metric        string                      `json:"metric"`
	Distributions []entity.ReportDistribution `json:"distributions"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ds, err := h.dashboard.Dataset()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Records: ds.Len(), Version: version.Get()})
}

func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	categories, subCategories, err := h.dashboard.Options(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, optionsResponse{Categories: categories, SubCategories: subCategories})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, dashboardResponse{
		Options: optionsResponse{Categories: view.CategoryOptions, SubCategories: view.SubCategoryOptions},
		Report:  entity.NewReport(view),
	})
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, entity.NewReport(view).Summary)
}

func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	report := entity.NewReport(view)
	writeJSON(w, r, http.StatusOK, tableResponse{
		Metric:  report.Selection.Metric,
		Scope:   report.Selection.TableScope,
		Search:  report.Selection.Search,
		Periods: report.Periods,
		Rows:    report.Table,
	})
}

func (h *Handler) Trend(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	report := entity.NewReport(view)
	writeJSON(w, r, http.StatusOK, trendResponse{
		Metric:  report.Selection.Metric,
		Axis:    report.TrendAxis,
		Periods: report.Periods,
		Series:  report.Trend,
	})
}

func (h *Handler) Distribution(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	report := entity.NewReport(view)
	writeJSON(w, r, http.StatusOK, distributionResponse{
		Category:      report.Selection.Category,
		Metric:        report.Selection.Metric,
		Distributions: report.Distributions,
	})
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	sel, ok := h.selection(w, r)
	if !ok {
		return
	}

	body, err := h.dashboard.ExportCSV(sel)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, analytics.DefaultExportName))
	if _, err := w.Write([]byte(body)); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write csv export")
	}
}

func (h *Handler) selection(w http.ResponseWriter, r *http.Request) (entity.Selection, bool) {
	q := r.URL.Query()

	var reset bool
	if raw := q.Get("reset"); raw != "" {
		var err error
		if reset, err = strconv.ParseBool(raw); err != nil {
			writeJSON(w, r, http.StatusBadRequest, errorResponse{Status: "error", Error: fmt.Sprintf("invalid reset value %q", raw)})
			return entity.Selection{}, false
		}
	}

	sel, err := h.dashboard.ResolveSelection(usecase.SelectionParams{
		Category:    q.Get("category"),
		SubCategory: q.Get("subCategory"),
		Metric:      q.Get("metric"),
		Period:      q.Get("period"),
		Search:      q.Get("search"),
		Scope:       q.Get("scope"),
		Reset:       reset,
	})
	if err != nil {
		writeError(w, r, err)
		return entity.Selection{}, false
	}
	return sel, true
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) (entity.DashboardView, bool) {
	sel, ok := h.selection(w, r)
	if !ok {
		return entity.DashboardView{}, false
	}

	view, err := h.dashboard.BuildView(sel)
	if err != nil {
		writeError(w, r, err)
		return entity.DashboardView{}, false
	}
	return view, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrDatasetNotLoaded):
		return http.StatusServiceUnavailable
	case errors.Is(err, types.ErrInvalidMetric),
		errors.Is(err, types.ErrInvalidPeriod),
		errors.Is(err, types.ErrInvalidScope),
		errors.Is(err, types.ErrInvalidSubCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	}
	writeJSON(w, r, status, errorResponse{Status: "error", Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
