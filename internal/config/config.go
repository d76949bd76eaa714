// internal/config/config.go
//
// Analysis configuration: pronoun vocabulary, corpus framing and display
// thresholds. Everything has a working default so the tool runs without a
// config file; a YAML file overrides the defaults, and CLI flags override
// the file.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"skewgram/internal/importer/plots"
)

// Pronouns declares the two word groups compared by the scorer. A pair is
// kept when its first word belongs to either group.
type Pronouns struct {
	He  []string `yaml:"he"`
	She []string `yaml:"she"`
}

// Chart controls the terminal bar chart geometry.
type Chart struct {
	Top   int `yaml:"top"`
	Width int `yaml:"width"`
}

// Config is the full analysis configuration.
type Config struct {
	Separator string   `yaml:"separator"`
	Encoding  string   `yaml:"encoding"`
	MinTotal  int      `yaml:"min_total"`
	Pronouns  Pronouns `yaml:"pronouns"`
	Chart     Chart    `yaml:"chart"`
}

// Default returns the configuration used when no file is given: the he/she
// vocabulary, the WikiPlots-style <EOS> separator and a display threshold
// of 100 occurrences.
func Default() Config {
	return Config{
		Separator: plots.DefaultSeparator,
		Encoding:  "utf8",
		MinTotal:  100,
		Pronouns: Pronouns{
			He:  []string{"he"},
			She: []string{"she"},
		},
		Chart: Chart{
			Top:   30,
			Width: 80,
		},
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks group sanity and value ranges.
func (c *Config) Validate() error {
	if len(c.Pronouns.He) == 0 || len(c.Pronouns.She) == 0 {
		return fmt.Errorf("both pronoun groups must be non-empty")
	}

	seen := make(map[string]bool, len(c.Pronouns.He))
	for _, w := range c.Pronouns.He {
		seen[w] = true
	}
	for _, w := range c.Pronouns.She {
		if seen[w] {
			return fmt.Errorf("pronoun %q appears in both groups", w)
		}
	}

	if c.MinTotal < 0 {
		return fmt.Errorf("min_total must be >= 0, got %d", c.MinTotal)
	}
	if c.Chart.Top < 0 {
		return fmt.Errorf("chart.top must be >= 0, got %d", c.Chart.Top)
	}
	if c.Chart.Width < 0 {
		return fmt.Errorf("chart.width must be >= 0, got %d", c.Chart.Width)
	}

	switch c.Encoding {
	case "utf8", "iso-8859-1", "windows-1252":
	default:
		return fmt.Errorf("unsupported encoding: %s", c.Encoding)
	}

	return nil
}
