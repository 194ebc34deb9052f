package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	Data         string
	Category     string
	SubCategory  string
	Metric       string
	Period       string
	Search       string
	Scope        string
	Reset        bool
	ReportName   string
	ReportType   []string
	Dir          string
	Trend        bool
	Distribution bool
	Addr         string
	LogLevel     string
}
