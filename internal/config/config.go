package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/vango-dev/html5el/internal/errors"
	"github.com/vango-dev/html5el/pkg/element"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "html5el.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3030

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultDir is the default directory of document descriptions.
	DefaultDir = "."

	// DefaultRegion is the default AWS region for publishing.
	DefaultRegion = "us-east-1"
)

// Config represents the complete html5el.json configuration.
type Config struct {
	// Render contains the default layout of built elements.
	Render RenderConfig `json:"render,omitempty"`

	// Serve contains preview server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains element layout defaults.
type RenderConfig struct {
	// Indent is the number of spaces per level. Nil means the element
	// default.
	Indent *int `json:"indent,omitempty"`

	// SingleLine sets the single-line flag on every element.
	SingleLine bool `json:"singleLine,omitempty"`
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Dir is the directory containing document descriptions.
	Dir string `json:"dir,omitempty"`

	// Watch enables live reload when documents change.
	Watch bool `json:"watch,omitempty"`

	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool `json:"metrics,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (S3-compatible stores).
	Endpoint string `json:"endpoint,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Serve: ServeConfig{
			Host:    DefaultHost,
			Port:    DefaultPort,
			Dir:     DefaultDir,
			Metrics: true,
		},
		Publish: PublishConfig{
			Region: DefaultRegion,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for html5el.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E040").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				Wrap(err)
		}
		return nil, errors.New("E040").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E040").
			WithDetail("Failed to parse " + path).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover loads html5el.json from dir, then from the user config
// directory. Without a config file it returns the defaults.
func Discover(dir string) (*Config, error) {
	local := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(local); err == nil {
		return LoadFile(local)
	}

	if path, err := xdg.SearchConfigFile(filepath.Join("html5el", ConfigFileName)); err == nil {
		return LoadFile(path)
	}

	return New(), nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E040").Wrap(err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E040").Wrap(err)
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
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Dir == "" {
		c.Serve.Dir = DefaultDir
	}
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Render.Indent != nil && *c.Render.Indent < 0 {
		return errors.New("E041").
			WithDetail("render.indent must not be negative")
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("E041").
			WithDetail("serve.port must be between 0 and 65535")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E041").
			WithDetailf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E041").
			WithDetailf("log.format %q is not one of text, json", c.Log.Format)
	}
	return nil
}

// IndentSize returns the configured indent, or the element default.
func (c *Config) IndentSize() int {
	if c.Render.Indent == nil {
		return element.DefaultIndent
	}
	return *c.Render.Indent
}

// ElementOptions returns the element options implied by the render
// settings.
func (c *Config) ElementOptions() []element.Option {
	return []element.Option{
		element.WithIndent(c.IndentSize()),
		element.WithSingleLine(c.Render.SingleLine),
	}
}

// ServeAddress returns the address string for the preview server.
func (c *Config) ServeAddress() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// ServeURL returns the full URL for the preview server.
func (c *Config) ServeURL() string {
	return "http://" + c.ServeAddress()
}
