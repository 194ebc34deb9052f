package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplaySummary(title string, cards []SummaryCard)
	DisplayTrendChart(title string, periods []string, series []ChartSeries)
	DisplayDistribution(title string, slices []ChartSlice, paletteOffset int)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// SummaryCard is one headline number of the summary panel.
type SummaryCard struct {
	Label string
	Value string
}

// ChartSeries is one line of the trend chart, one value per period.
type ChartSeries struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// ChartSlice is one slice of a distribution chart.
type ChartSlice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
