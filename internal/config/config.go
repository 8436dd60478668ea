package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nightshift-tools/nightshift/internal/classify"
	"github.com/nightshift-tools/nightshift/internal/log"
)

// FileName is the config file looked up in the working directory.
const FileName = "nightshift.yaml"

// DefaultReportOutput is where quick-report writes the per-store summary.
const DefaultReportOutput = "store_sales_summary.csv"

// Environment variables read by ApplyEnv.
const (
	EnvConfig       = "NIGHTSHIFT_CONFIG"
	EnvLogLevel     = "NIGHTSHIFT_LOG_LEVEL"
	EnvLogFormat    = "NIGHTSHIFT_LOG_FORMAT"
	EnvReportOutput = "NIGHTSHIFT_REPORT_OUTPUT"
)

// Config represents the top-level nightshift.yaml configuration.
type Config struct {
	Organizer OrganizerConfig `yaml:"organizer"`
	Report    ReportConfig    `yaml:"report"`
	Log       LogConfig       `yaml:"log"`
}

// OrganizerConfig extends the built-in extension table.
type OrganizerConfig struct {
	Extensions map[string][]string `yaml:"extensions,omitempty"` // category -> extra extensions
}

// ReportConfig controls quick-report output.
type ReportConfig struct {
	Output string `yaml:"output"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Load reads a nightshift.yaml file from disk. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Resolve loads the config named by path, or by NIGHTSHIFT_CONFIG, or
// nightshift.yaml in the working directory. Only the last one may be absent.
// Environment overrides are applied and the result is validated.
func Resolve(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = FileName
		explicit = false
	}

	cfg, err := Load(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Output: DefaultReportOutput,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: log.FormatText,
		},
	}
}

// ApplyEnv overrides fields from NIGHTSHIFT_* environment variables.
func (c *Config) ApplyEnv() {
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)
	c.Log.Format = getEnv(EnvLogFormat, c.Log.Format)
	c.Report.Output = getEnv(EnvReportOutput, c.Report.Output)
}

// Validate returns an error describing every invalid field.
func (c *Config) Validate() error {
	var problems []string

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Log.Format != log.FormatText && c.Log.Format != log.FormatJSON {
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be %s or %s", c.Log.Format, log.FormatText, log.FormatJSON))
	}
	if strings.TrimSpace(c.Report.Output) == "" {
		problems = append(problems, "report output must not be empty")
	}
	if _, err := c.Table(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Table builds the extension table with the configured extras.
func (c *Config) Table() (*classify.Table, error) {
	if len(c.Organizer.Extensions) == 0 {
		return classify.Default(), nil
	}
	extra := make(map[classify.Category][]string, len(c.Organizer.Extensions))
	for name, exts := range c.Organizer.Extensions {
		cat, err := classify.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		extra[cat] = append(extra[cat], exts...)
	}
	return classify.NewTable(extra)
}

// Logger builds a logger from the log section writing to w.
func (c *Config) Logger(w io.Writer, verbose bool) *log.Logger {
	lc := log.DefaultConfig()
	lc.Output = w
	if lvl, err := log.ParseLevel(c.Log.Level); err == nil {
		lc.Level = lvl
	}
	if verbose {
		lc.Level = slog.LevelDebug
	}
	lc.Format = c.Log.Format
	return log.New(lc)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
