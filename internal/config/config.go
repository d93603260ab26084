package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"

	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Source SourceConfig `yaml:"source"`
	Model  ModelConfig  `yaml:"model"`
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

type SourceConfig struct {
	Kind     string `yaml:"kind"`     // "file" or "postgres"
	Results  string `yaml:"results"`  // tab-separated results file
	Fixtures string `yaml:"fixtures"` // tab-separated fixtures file, optional
	DSN      string `yaml:"dsn"`
	Migrate  bool   `yaml:"migrate"` // create the postgres tables if missing
}

type ModelConfig struct {
	MatchesPerRound int `yaml:"matches_per_round"` // weight of the league prior
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
	Path   string `yaml:"path"`   // empty for stdout
}

// Default is a 16-team league read from results.csv in the working directory.
func Default() *Config {
	return &Config{
		Source: SourceConfig{Kind: SourceFile, Results: "results.csv"},
		Model:  ModelConfig{MatchesPerRound: 8},
		Log:    LogConfig{Level: "info", Format: FormatText},
		Output: OutputConfig{Format: FormatText},
	}
}

// Load reads configPath over the defaults.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceFile:
		if c.Source.Results == "" {
			return fmt.Errorf("source.results is required for the %s source", SourceFile)
		}
	case SourcePostgres:
		if c.Source.DSN == "" {
			return fmt.Errorf("source.dsn is required for the %s source", SourcePostgres)
		}
	default:
		return fmt.Errorf("unknown source.kind %q", c.Source.Kind)
	}
	if c.Model.MatchesPerRound <= 0 {
		return fmt.Errorf("model.matches_per_round must be positive, got %d", c.Model.MatchesPerRound)
	}
	for name, f := range map[string]string{"log.format": c.Log.Format, "output.format": c.Output.Format} {
		if f != FormatText && f != FormatJSON {
			return fmt.Errorf("unknown %s %q", name, f)
		}
	}
	return nil
}
