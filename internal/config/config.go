package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/routepath"
)

const (
	// DefaultName is the project name used when none is configured.
	DefaultName = "vroute"

	// DefaultAddr is the default bridge listen address.
	DefaultAddr = ":8080"

	// DefaultBridgePath is the default websocket endpoint.
	DefaultBridgePath = "/history"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "vroute"

	// DefaultSnapshotDir is the default snapshot output directory.
	DefaultSnapshotDir = "snapshots"

	// DefaultRegion is the S3 region used when a bucket has none.
	DefaultRegion = "us-east-1"
)

// FileNames are the config files Load looks for, in order.
var FileNames = []string{"vroute.json", "vroute.yaml", "vroute.yml"}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config represents a vroute project configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// InitialPath is where in-memory histories start.
	InitialPath string `json:"initialPath,omitempty" yaml:"initialPath,omitempty"`

	Bridge   BridgeConfig   `json:"bridge,omitempty" yaml:"bridge,omitempty"`
	Metrics  MetricsConfig  `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Snapshot SnapshotConfig `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// BridgeConfig configures the websocket history bridge server.
type BridgeConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`

	// Path is the websocket endpoint.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// SnapshotConfig configures static snapshots.
type SnapshotConfig struct {
	// Dir is the output directory for disk snapshots.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// Paths are the locations to render.
	Paths []string `json:"paths,omitempty" yaml:"paths,omitempty"`

	// S3 uploads snapshots to a bucket instead of Dir when Bucket is set.
	S3 S3Config `json:"s3,omitempty" yaml:"s3,omitempty"`
}

// S3Config names an S3 destination.
type S3Config struct {
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// Default returns a configuration with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the first config file found in dir.
// The returned error wraps fs.ErrNotExist when there is none.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("R005").
		WithDetail("No vroute.json or vroute.yaml found in " + dir).
		WithSuggestion("Create vroute.json or pass --config").
		Wrap(fs.ErrNotExist)
}

// LoadFile reads configuration from the specified file path.
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("R005").WithSubject(path).Wrap(err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("R005").
			WithSubject(path).
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.InitialPath == "" {
		c.InitialPath = "/"
	}

	if c.Bridge.Addr == "" {
		c.Bridge.Addr = DefaultAddr
	}
	if c.Bridge.Path == "" {
		c.Bridge.Path = DefaultBridgePath
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}

	if c.Snapshot.Dir == "" {
		c.Snapshot.Dir = DefaultSnapshotDir
	}
	if len(c.Snapshot.Paths) == 0 {
		c.Snapshot.Paths = []string{c.InitialPath}
	}
	if c.Snapshot.S3.Bucket != "" && c.Snapshot.S3.Region == "" {
		c.Snapshot.S3.Region = DefaultRegion
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return invalid("logLevel", fmt.Sprintf("unknown level %q, want debug, info, warn or error", c.LogLevel))
	}
	if _, err := routepath.ValidateTarget(c.InitialPath); err != nil {
		return invalid("initialPath", err.Error())
	}
	if !strings.HasPrefix(c.Bridge.Path, "/") {
		return invalid("bridge.path", "must start with /")
	}
	for _, p := range c.Snapshot.Paths {
		if _, err := routepath.ValidateTarget(p); err != nil {
			return invalid("snapshot.paths", fmt.Sprintf("%q: %v", p, err))
		}
	}
	if strings.HasPrefix(c.Snapshot.S3.Prefix, "/") {
		return invalid("snapshot.s3.prefix", "must not start with /")
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	return logLevels[strings.ToLower(c.LogLevel)]
}

// UseS3 reports whether snapshots go to S3.
func (c *Config) UseS3() bool {
	return c.Snapshot.S3.Bucket != ""
}

// SnapshotDir returns the absolute snapshot directory.
func (c *Config) SnapshotDir() string {
	if filepath.IsAbs(c.Snapshot.Dir) {
		return c.Snapshot.Dir
	}
	return filepath.Join(c.Dir(), c.Snapshot.Dir)
}

func invalid(field, detail string) error {
	return errors.New("R005").WithSubject(field).WithDetail(detail)
}
