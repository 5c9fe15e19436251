// Package config loads and validates the trustreport configuration file.
// Values may reference environment variables with ${VAR} syntax, which is
// how secrets stay out of the file itself.
package config

import (
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/complykit/trustreport/pkg/constants"
	"github.com/complykit/trustreport/pkg/errors"
)

// OneTrust holds the API connection settings.
type OneTrust struct {
	Hostname string `yaml:"hostname"`
	Version  string `yaml:"version"`
	Token    string `yaml:"token"`
}

// Confluence holds the wiki sync settings. All fields empty disables sync.
type Confluence struct {
	URL      string `yaml:"url"`
	Space    string `yaml:"space"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Storage holds the object storage upload settings. An empty endpoint
// disables uploads.
type Storage struct {
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// Timeouts holds the per-request time limits, in seconds.
type Timeouts struct {
	HTTPRequest int `yaml:"http_request"`
}

// Fanout holds the detail-fetch concurrency settings.
type Fanout struct {
	Concurrency int `yaml:"concurrency"`
}

// Output holds the local file export settings.
type Output struct {
	Dir string `yaml:"dir"`
}

// Config is the full trustreport configuration.
type Config struct {
	OneTrust   OneTrust   `yaml:"onetrust"`
	Confluence Confluence `yaml:"confluence"`
	Storage    Storage    `yaml:"storage"`
	Timeouts   Timeouts   `yaml:"timeouts"`
	Fanout     Fanout     `yaml:"fanout"`
	Output     Output     `yaml:"output"`
}

// Default returns a configuration with every optional setting at its default.
func Default() *Config {
	return &Config{
		OneTrust: OneTrust{
			Version: "v2",
		},
		Timeouts: Timeouts{
			HTTPRequest: int(constants.DefaultHTTPTimeout / time.Second),
		},
		Fanout: Fanout{
			Concurrency: constants.DefaultFanoutLimit,
		},
		Output: Output{
			Dir: ".",
		},
	}
}

// Load reads the configuration file at path, expands ${VAR} references from
// the environment, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	expanded := os.Expand(string(data), os.Getenv)

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the required settings are present and sane.
func (c *Config) Validate() error {
	if c.OneTrust.Hostname == "" {
		return errors.NewConfigError("onetrust", "hostname is required", nil)
	}
	if c.OneTrust.Version == "" {
		return errors.NewConfigError("onetrust", "API version is required", nil)
	}
	if c.OneTrust.Token == "" {
		return errors.NewConfigError("onetrust", "token is required", errors.ErrTokenRequired)
	}
	if c.Timeouts.HTTPRequest <= 0 {
		return errors.NewConfigError("timeouts", "http_request must be positive", nil)
	}
	if c.Fanout.Concurrency <= 0 {
		return errors.NewConfigError("fanout", "concurrency must be positive", nil)
	}
	if c.Confluence.URL != "" && (c.Confluence.Username == "" || c.Confluence.Password == "") {
		return errors.NewConfigError("confluence", "username and password are required when url is set", nil)
	}
	if c.Storage.Endpoint != "" && c.Storage.Bucket == "" {
		return errors.NewConfigError("storage", "bucket is required when endpoint is set", nil)
	}
	return nil
}

// HTTPTimeout returns the per-request time limit as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Timeouts.HTTPRequest) * time.Second
}

// SyncEnabled reports whether Confluence page sync is configured.
func (c *Config) SyncEnabled() bool {
	return c.Confluence.URL != ""
}

// UploadEnabled reports whether object storage upload is configured.
func (c *Config) UploadEnabled() bool {
	return c.Storage.Endpoint != ""
}
