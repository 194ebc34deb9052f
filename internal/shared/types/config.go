package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Data         string   `json:"data" yaml:"data" toml:"data"`
	Category     string   `json:"category" yaml:"category" toml:"category"`
	SubCategory  string   `json:"sub_category" yaml:"sub_category" toml:"sub_category"`
	Metric       string   `json:"metric" yaml:"metric" toml:"metric"`
	Period       string   `json:"period" yaml:"period" toml:"period"`
	Search       string   `json:"search" yaml:"search" toml:"search"`
	Scope        string   `json:"scope" yaml:"scope" toml:"scope"`
	Reset        bool     `json:"reset" yaml:"reset" toml:"reset"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
	Trend        bool     `json:"trend" yaml:"trend" toml:"trend"`
	Distribution bool     `json:"distribution" yaml:"distribution" toml:"distribution"`
	Addr         string   `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel     string   `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// Defaults applied when neither the config file nor a flag sets a value.
const (
	DefaultData       = "data.csv"
	DefaultMetric     = "volume"
	DefaultScope      = "filtered"
	DefaultReportName = "pakistan_payment_data_filtered"
	DefaultAddr       = ":8080"
	DefaultLogLevel   = "warn"
)
