// Package config loads server settings from defaults, an optional TOML file
// and the environment, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/sekaimcp/sekaimcp/pkg/assets"
	sekaierrors "github.com/sekaimcp/sekaimcp/pkg/errors"
	"github.com/sekaimcp/sekaimcp/pkg/integrations/masterdb"
	"github.com/sekaimcp/sekaimcp/pkg/integrations/strapi"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultPort matches the port the public deployment has always used.
const DefaultPort = 3000

// Config holds every runtime setting.
type Config struct {
	// Port is used when Listen is empty.
	Port   int    `toml:"port" env:"PORT"`
	Listen string `toml:"listen" env:"SEKAI_LISTEN"`

	MasterDataURL string `toml:"master_data_url" env:"SEKAI_MASTER_DATA_URL"`
	StrapiURL     string `toml:"strapi_url" env:"SEKAI_STRAPI_URL"`
	AssetURL      string `toml:"asset_url" env:"SEKAI_ASSET_URL"`

	HTTPTimeout   time.Duration `toml:"http_timeout" env:"SEKAI_HTTP_TIMEOUT"`
	RetryAttempts int           `toml:"retry_attempts" env:"SEKAI_RETRY_ATTEMPTS"`

	// Prefetch warms every collection at startup instead of on first use.
	Prefetch  bool   `toml:"prefetch" env:"SEKAI_PREFETCH"`
	LogFormat string `toml:"log_format" env:"SEKAI_LOG_FORMAT"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:          DefaultPort,
		MasterDataURL: masterdb.DefaultBaseURL,
		StrapiURL:     strapi.DefaultBaseURL,
		AssetURL:      assets.DefaultRoot,
		HTTPTimeout:   10 * time.Second,
		RetryAttempts: 3,
		LogFormat:     LogFormatText,
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and environment overrides, then validates it.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return sekaierrors.New(sekaierrors.ErrCodeInvalidInput, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return nil
}

// ParseEnv applies environment overrides to target. Variables that are not
// set leave the existing value untouched.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Listen == "" {
		if err := sekaierrors.ValidateRange("port", c.Port, 1, 65535); err != nil {
			return err
		}
	}
	for _, u := range []struct{ field, value string }{
		{"master_data_url", c.MasterDataURL},
		{"strapi_url", c.StrapiURL},
		{"asset_url", c.AssetURL},
	} {
		if err := sekaierrors.ValidateURL(u.value); err != nil {
			return sekaierrors.Wrap(sekaierrors.ErrCodeInvalidInput, err, "%s", u.field)
		}
	}
	if c.HTTPTimeout <= 0 {
		return sekaierrors.New(sekaierrors.ErrCodeInvalidInput, "http_timeout must be positive, got %s", c.HTTPTimeout)
	}
	if err := sekaierrors.ValidateRange("retry_attempts", c.RetryAttempts, 1, 10); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return sekaierrors.New(sekaierrors.ErrCodeInvalidInput, "log_format must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	if c.Listen != "" {
		return c.Listen
	}
	return net.JoinHostPort("", strconv.Itoa(c.Port))
}
