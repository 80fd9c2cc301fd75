package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/h3core/pkg/coordijk"
)

// Output formats understood by the vector tool.
const (
	FormatYAML = "yaml"
	FormatText = "text"
)

// Config holds all vector tool configuration
type Config struct {
	Vectors VectorsConfig `yaml:"vectors"`
	Log     LogConfig     `yaml:"log"`
}

// VectorsConfig controls which reference vectors are generated
type VectorsConfig struct {
	Radius       int      `yaml:"radius"`       // Disk radius around the origin
	Orientations []string `yaml:"orientations"` // "standard" and/or "rotated"
	Format       string   `yaml:"format"`       // yaml | text
	Output       string   `yaml:"output"`       // file path, "-" for stdout
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, fills defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Vectors.Radius == 0 {
		c.Vectors.Radius = 2
	}
	if len(c.Vectors.Orientations) == 0 {
		c.Vectors.Orientations = []string{coordijk.Standard.String(), coordijk.Rotated.String()}
	}
	if c.Vectors.Format == "" {
		c.Vectors.Format = FormatYAML
	}
	if c.Vectors.Output == "" {
		c.Vectors.Output = "-"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Vectors.Radius < 0 {
		return fmt.Errorf("invalid radius %d: must not be negative", c.Vectors.Radius)
	}
	if _, err := c.Vectors.ParsedOrientations(); err != nil {
		return err
	}
	switch c.Vectors.Format {
	case FormatYAML, FormatText:
	default:
		return fmt.Errorf("invalid format %q: must be %s or %s", c.Vectors.Format, FormatYAML, FormatText)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// ParsedOrientations converts the configured orientation names.
func (v VectorsConfig) ParsedOrientations() ([]coordijk.Orientation, error) {
	out := make([]coordijk.Orientation, 0, len(v.Orientations))
	seen := make(map[coordijk.Orientation]bool, 2)
	for _, name := range v.Orientations {
		o, err := coordijk.ParseOrientation(name)
		if err != nil {
			return nil, fmt.Errorf("invalid orientations: %w", err)
		}
		if seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out, nil
}
