package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/payments-dashboard-go/internal/domain/repository"
	"github.com/diillson/payments-dashboard-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

type decoder struct {
	format    string
	unmarshal func([]byte, interface{}) error
}

var decoders = map[string]decoder{
	".toml": {format: "TOML", unmarshal: toml.Unmarshal},
	".yaml": {format: "YAML", unmarshal: yaml.Unmarshal},
	".yml":  {format: "YAML", unmarshal: yaml.Unmarshal},
	".json": {format: "JSON", unmarshal: json.Unmarshal},
}

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON. String values are
// trimmed and report types lower-cased; a relative dataset path is resolved against the
// directory holding the config file.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))
	dec, ok := decoders[fileExtension]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config
	if err := dec.unmarshal(fileData, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s file: %w", dec.format, err)
	}

	normalize(&config, filepath.Dir(filePath))
	return &config, nil
}

func normalize(c *types.Config, baseDir string) {
	for _, s := range []*string{
		&c.Data, &c.Category, &c.SubCategory, &c.Metric, &c.Period, &c.Scope,
		&c.ReportName, &c.Dir, &c.Addr, &c.LogLevel,
	} {
		*s = strings.TrimSpace(*s)
	}

	if c.Data != "" && !strings.Contains(c.Data, "://") && !filepath.IsAbs(c.Data) {
		c.Data = filepath.Join(baseDir, c.Data)
	}

	reportTypes := c.ReportType[:0]
	for _, t := range c.ReportType {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			reportTypes = append(reportTypes, t)
		}
	}
	c.ReportType = reportTypes
}
