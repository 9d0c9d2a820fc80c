// internal/config/config.go
//
// This package handles configuration and the .loanworks directory structure.
// Every project that uses loanplan gets a .loanworks/ folder created where
// the tool is run.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// Dir is the name of the directory we create in each working directory.
	Dir = ".loanworks"

	defaultPlotsDir = "plots"
)

const defaultConfigYAML = `# loanworks configuration
version: 1

# Where loanplan writes its PNG plots, relative to the working directory.
plots:
  dir: plots
  width_inches: 10
  height_inches: 6

# Size of the in-terminal chart, in cells.
chart:
  width: 60
  height: 12

# Optional loan defaults. Leave at zero to be asked on startup.
defaults:
  principal: 0
  rate: 0
  term_years: 0
`

// PlotsConfig controls the PNG output.
type PlotsConfig struct {
	Dir          string  `yaml:"dir"`
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
}

// ChartConfig sizes the terminal chart.
type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultsConfig holds optional pre-filled loan parameters.
type DefaultsConfig struct {
	Principal float64 `yaml:"principal"`
	Rate      float64 `yaml:"rate"`
	TermYears int     `yaml:"term_years"`
}

// ProjectConfig models .loanworks/config.yaml.
type ProjectConfig struct {
	Version  int            `yaml:"version"`
	Plots    PlotsConfig    `yaml:"plots"`
	Chart    ChartConfig    `yaml:"chart"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// Config holds the runtime configuration for loanplan.
type Config struct {
	// WorkDir is the directory where the user ran `loanplan` from.
	WorkDir string

	// ProjectDir is WorkDir/.loanworks.
	ProjectDir string

	Project ProjectConfig
}

// InitDir creates the .loanworks directory structure in the given working
// directory and writes the default config file on first run.
//
// Structure created:
// .loanworks/
// ├── config.yaml   <- Plot and chart settings
// └── logs/         <- loanplan.log lives here
func InitDir(workDir string) error {
	projectDir := filepath.Join(workDir, Dir)
	if err := os.MkdirAll(filepath.Join(projectDir, "logs"), 0755); err != nil {
		return err
	}
	return ensureConfigFile(filepath.Join(projectDir, "config.yaml"))
}

// New creates a Config populated from .loanworks/config.yaml, falling back
// to the embedded defaults when the file does not exist yet.
func New(workDir string) (*Config, error) {
	cfg := &Config{
		WorkDir:    workDir,
		ProjectDir: filepath.Join(workDir, Dir),
		Project:    defaultProjectConfig(),
	}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath returns the on-disk location of the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ProjectDir, "config.yaml")
}

// LogPath returns where the logbook writes.
func (c *Config) LogPath() string {
	return filepath.Join(c.ProjectDir, "logs", "loanplan.log")
}

// PlotsDir returns the absolute plot output directory.
func (c *Config) PlotsDir() string {
	dir := c.Project.Plots.Dir
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.WorkDir, dir)
}

func (c *Config) load() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Plots:   PlotsConfig{Dir: defaultPlotsDir, WidthInches: 10, HeightInches: 6},
		Chart:   ChartConfig{Width: 60, Height: 12},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	pc.Plots.Dir = strings.TrimSpace(pc.Plots.Dir)
	if pc.Plots.Dir == "" {
		pc.Plots.Dir = defaultPlotsDir
	}
	if pc.Plots.WidthInches == 0 {
		pc.Plots.WidthInches = 10
	}
	if pc.Plots.HeightInches == 0 {
		pc.Plots.HeightInches = 6
	}
	if pc.Chart.Width == 0 {
		pc.Chart.Width = 60
	}
	if pc.Chart.Height == 0 {
		pc.Chart.Height = 12
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version != 1 {
		return fmt.Errorf("unknown config version %d, expected 1", pc.Version)
	}
	if pc.Plots.WidthInches < 0 || pc.Plots.HeightInches < 0 {
		return fmt.Errorf("plots.width_inches and plots.height_inches must be positive")
	}
	if pc.Chart.Width < 0 || pc.Chart.Height < 0 {
		return fmt.Errorf("chart.width and chart.height must be positive")
	}
	if pc.Defaults.Principal < 0 {
		return fmt.Errorf("defaults.principal must not be negative")
	}
	if pc.Defaults.Rate < 0 || pc.Defaults.Rate > 1 {
		return fmt.Errorf("defaults.rate must be between 0 and 1")
	}
	if pc.Defaults.TermYears < 0 {
		return fmt.Errorf("defaults.term_years must not be negative")
	}
	return nil
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return nil
}
