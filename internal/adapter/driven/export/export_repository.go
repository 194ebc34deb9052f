package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/payments-dashboard-go/internal/domain/analytics"
	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
	"github.com/diillson/payments-dashboard-go/internal/domain/repository"
	"github.com/diillson/payments-dashboard-go/pkg/console"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes rows with the fixed export header.
func (r *ExportRepositoryImpl) ExportToCSV(rows []entity.Record, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, []byte(analytics.EncodeCSV(rows)), 0644); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON writes the report form of view.
func (r *ExportRepositoryImpl) ExportToJSON(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entity.NewReport(view)); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF writes a one-document report: selection, summary, trend table and one
// distribution table per period.
func (r *ExportRepositoryImpl) ExportToPDF(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{0, 102, 68}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Pakistan Digital Payments Dashboard | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	// drawTable writes a header row and body rows; the first column is left aligned and
	// takes whatever width the numeric columns leave.
	drawTable := func(header []string, body [][]string, numWidth float64) {
		firstWidth := 190 - numWidth*float64(len(header)-1)

		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range header {
			w, align := numWidth, "R"
			if i == 0 {
				w, align = firstWidth, "L"
			}
			pdf.CellFormat(w, 6, tr(h), "B", 0, align, true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for _, row := range body {
			for i, cell := range row {
				w, align := numWidth, "R"
				if i == 0 {
					w, align = firstWidth, "L"
					cell = truncate(pdf, cell, firstWidth-2)
				}
				pdf.CellFormat(w, 5, tr(cell), "", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	sel := view.Selection
	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Pakistan Digital Payments"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	filterLine := fmt.Sprintf("  Category: %s | Sub-category: %s | Metric: %s",
		sel.Filter.Category, sel.Filter.SubCategory, sel.Metric)
	if sel.Reset {
		filterLine += " | Reset"
	}
	pdf.CellFormat(0, 8, tr(filterLine), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	sectionTitle(fmt.Sprintf("Summary (%s)", view.Summary.Period.Label()))
	drawTable(
		[]string{"Indicator", "Value"},
		[][]string{
			{"Total Volume", console.FormatNumber(view.Summary.TotalVolume)},
			{"Total Value", console.FormatNumber(view.Summary.TotalValue)},
			{"Transaction Types", fmt.Sprintf("%d", view.Summary.CategoryCount)},
			{"Sub-types", fmt.Sprintf("%d", view.Summary.SubCategoryCount)},
		},
		50,
	)

	periodHeader := func(first string) []string {
		header := []string{first}
		for _, p := range entity.Periods() {
			header = append(header, p.Label())
		}
		return header
	}

	if len(view.Trend) > 0 {
		sectionTitle(fmt.Sprintf("Trend - %s", sel.Metric.AxisTitle()))
		body := make([][]string, 0, len(view.Trend))
		for _, s := range view.Trend {
			row := []string{s.Key}
			for _, v := range s.Series {
				row = append(row, console.FormatNumber(v))
			}
			body = append(body, row)
		}
		drawTable(periodHeader("Series"), body, 24)
	}

	for _, dist := range view.Distributions {
		if len(dist.Points) == 0 {
			continue
		}
		sectionTitle(fmt.Sprintf("%s Distribution - %s (%s)", sel.Filter.Category, dist.Period.Label(), sel.Metric))
		total := 0.0
		for _, p := range dist.Points {
			total += p.Value
		}
		body := make([][]string, 0, len(dist.Points))
		for _, p := range dist.Points {
			share := 0.0
			if total != 0 {
				share = p.Value / total * 100
			}
			body = append(body, []string{p.Label, console.FormatNumber(p.Value), fmt.Sprintf("%.1f%%", share)})
		}
		drawTable([]string{"Sub-type", sel.Metric.String(), "Share"}, body, 35)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// truncate shortens s with an ellipsis until it fits width at the current font.
func truncate(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return strings.TrimSpace(string(r)) + "..."
}

// generateFilename resolve o caminho do relatório e garante que o diretório exista.
// An extension already present on base is replaced by ext.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = strings.TrimSuffix(analytics.DefaultExportName, ".csv")
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", base, ext)), nil
}
