package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/payments-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplaySummary exibe os indicadores principais em um painel.
func (c *Console) DisplaySummary(title string, cards []types.SummaryCard) {
	tableData := pterm.TableData{}
	for _, card := range cards {
		tableData = append(tableData, []string{card.Label, BrightCyan(card.Value)})
	}

	table := pterm.DefaultTable.WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// sparkline scales values against peak; non-positive values sit on the baseline.
func sparkline(values []float64, peak float64) string {
	var b strings.Builder
	for _, v := range values {
		level := 0
		if peak > 0 && v > 0 {
			level = int(math.Round(v / peak * float64(len(sparkLevels)-1)))
		}
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}

// DisplayTrendChart exibe uma linha por série com um sparkline dos períodos.
func (c *Console) DisplayTrendChart(title string, periods []string, series []types.ChartSeries) {
	if len(series) == 0 {
		pterm.Warning.Println("No data for the trend chart")
		return
	}

	peak := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			peak = math.Max(peak, v)
		}
	}

	header := append([]string{"Series", "Trend"}, periods...)
	tableData := pterm.TableData{header}
	for i, s := range series {
		hue := rgb(TrendColor(i))
		row := []string{hue.Sprint(s.Label), hue.Sprint(sparkline(s.Values, peak))}
		for _, v := range s.Values {
			row = append(row, FormatNumber(v))
		}
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// DisplayDistribution exibe gráficos de barras com a participação de cada fatia.
func (c *Console) DisplayDistribution(title string, slices []types.ChartSlice, paletteOffset int) {
	total, peak := 0.0, 0.0
	for _, s := range slices {
		total += s.Value
		peak = math.Max(peak, s.Value)
	}

	if len(slices) == 0 || peak <= 0 {
		pterm.Warning.Printfln("%s: no data", title)
		return
	}

	tableData := pterm.TableData{
		{"Sub-type", "Value", "Share", ""},
	}
	for i, s := range slices {
		barLength := 0
		if s.Value > 0 {
			barLength = int((s.Value / peak) * 40)
		}
		share := 0.0
		if total != 0 {
			share = s.Value / total * 100
		}
		tableData = append(tableData, []string{
			s.Label,
			FormatNumber(s.Value),
			BrightYellow(fmt.Sprintf("%.1f%%", share)),
			rgb(SliceColor(i, paletteOffset)).Sprint(strings.Repeat("█", barLength)),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}
