package config

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vango-dev/niber/internal/errors"
)

const (
	// JSONFileName and TOMLFileName are the recognised configuration files.
	// When both exist, the JSON file wins.
	JSONFileName = "niber.json"
	TOMLFileName = "niber.toml"

	// DefaultInspectPort is the default inspector port.
	DefaultInspectPort = 7070

	// DefaultInspectHost is the default inspector host.
	DefaultInspectHost = "localhost"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "niber"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "niber"
)

// Config represents niber.json / niber.toml.
type Config struct {
	Log     LogConfig     `json:"log" toml:"log"`
	Metrics MetricsConfig `json:"metrics" toml:"metrics"`
	Tracing TracingConfig `json:"tracing" toml:"tracing"`
	Render  RenderConfig  `json:"render" toml:"render"`
	Inspect InspectConfig `json:"inspect" toml:"inspect"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig configures the logger built by Config.Logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info).
	Level string `json:"level,omitempty" toml:"level,omitempty"`

	// Format is text or json (default: text).
	Format string `json:"format,omitempty" toml:"format,omitempty"`
}

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled,omitempty" toml:"enabled,omitempty"`
	Namespace string `json:"namespace,omitempty" toml:"namespace,omitempty"`
}

// TracingConfig configures OpenTelemetry spans.
type TracingConfig struct {
	TracerName string `json:"tracerName,omitempty" toml:"tracerName,omitempty"`
}

// RenderConfig configures HTML output.
type RenderConfig struct {
	Pretty bool   `json:"pretty,omitempty" toml:"pretty,omitempty"`
	Indent string `json:"indent,omitempty" toml:"indent,omitempty"`
}

// InspectConfig configures the debug inspector server.
type InspectConfig struct {
	Host string `json:"host,omitempty" toml:"host,omitempty"`
	Port int    `json:"port,omitempty" toml:"port,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from dir, trying niber.json then niber.toml.
func Load(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, TOMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E141").
		WithDetail("No " + JSONFileName + " or " + TOMLFileName + " found in " + dir).
		WithSuggestion("Create " + JSONFileName + " or run without a configuration file to use the defaults")
}

// LoadFile reads configuration from the specified file path. Files ending in
// .toml are parsed as TOML, everything else as JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No configuration file at " + path)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := &Config{}
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid TOML")
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// SaveTo writes the configuration to path, as TOML or JSON depending on the
// extension.
func (c *Config) SaveTo(path string) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return errors.New("E120").Wrap(err)
		}
		data = buf.Bytes()
	} else {
		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return errors.New("E120").Wrap(err)
		}
		data = append(out, '\n')
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
	if c.Inspect.Host == "" {
		c.Inspect.Host = DefaultInspectHost
	}
	if c.Inspect.Port == 0 {
		c.Inspect.Port = DefaultInspectPort
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Inspect.Port < 0 || c.Inspect.Port > 65535 {
		return errors.New("E122").
			WithDetail("inspect.port must be between 0 and 65535, got " + strconv.Itoa(c.Inspect.Port))
	}
	if _, ok := levels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("E122").
			WithDetail("log.level must be one of debug, info, warn, error; got " + strconv.Quote(c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("E122").
			WithDetail("log.format must be text or json; got " + strconv.Quote(c.Log.Format))
	}
	return nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Logger builds a logger writing to w according to the log section.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levels[strings.ToLower(c.Log.Level)]}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// InspectAddress returns the address the inspector listens on.
func (c *Config) InspectAddress() string {
	return net.JoinHostPort(c.Inspect.Host, strconv.Itoa(c.Inspect.Port))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range []string{JSONFileName, TOMLFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a configuration file, or an error if not
// found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No " + JSONFileName + " or " + TOMLFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest project root above
// the working directory, falling back to defaults when there is none.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		if errors.HasCode(err, "E141") {
			return New(), nil
		}
		return nil, err
	}

	return Load(root)
}
