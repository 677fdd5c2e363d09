package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/pvderate/core/metrics"
	"github.com/kilianp07/pvderate/core/model"
)

// EnvPrefix is the prefix of environment overrides. PV_OUTPUT__PATH maps to
// output.path.
const EnvPrefix = "PV_"

type Config struct {
	// Technology overrides the technology of the dataset when set.
	Technology *model.CellType `json:"technology"`
	Model      ModelConfig     `json:"model"`
	Dataset    DatasetConfig   `json:"dataset"`
	Output     OutputConfig    `json:"output"`
	Metrics    metrics.Config  `json:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Model:  DefaultModelConfig(),
		Output: DefaultOutputConfig(),
	}
}

// Load reads the configuration at path on top of the defaults and applies
// environment overrides. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Output.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if c.Technology != nil {
		if c.Technology.EtaMin > c.Technology.EtaMax {
			return fmt.Errorf("technology eta_min %.2f above eta_max %.2f", c.Technology.EtaMin, c.Technology.EtaMax)
		}
	}
	if err := c.Model.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// ResolveTechnology picks the configured technology, then the dataset's,
// then model.DefaultCellType.
func (c Config) ResolveTechnology(fromDataset *model.CellType) model.CellType {
	switch {
	case c.Technology != nil:
		return *c.Technology
	case fromDataset != nil:
		return *fromDataset
	default:
		return model.DefaultCellType
	}
}

// Parameters returns the model parameters for the given dataset technology,
// deriving the reference efficiency when it is not set explicitly.
func (c Config) Parameters(fromDataset *model.CellType) model.Parameters {
	return c.Model.Parameters(c.ResolveTechnology(fromDataset))
}
