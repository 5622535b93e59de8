// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"

	"github.com/wneessen/hydro/internal/favorites"
)

const (
	configEnv = "HYDRO"

	// DefaultBaseURL is the base of all upstream pages and station URLs.
	DefaultBaseURL = "https://www.hydrodaten.admin.ch/de/"
)

// Extensions lists the config file extensions looked up in the default location.
var Extensions = []string{"toml", "yaml", "yml", "json"}

// Config represents the application's configuration structure.
type Config struct {
	LogLevel slog.Level `fig:"loglevel" default:"4"`

	HTTP struct {
		Timeout time.Duration `fig:"timeout" default:"30s"`
		BaseURL string        `fig:"base_url" default:"https://www.hydrodaten.admin.ch/de/"`
	} `fig:"http"`

	Favorites struct {
		// File defaults to <config_dir>/hydro/favorites.json when empty
		File string `fig:"file"`
	} `fig:"favorites"`

	Output struct {
		// NoColor disables ANSI bold table titles
		NoColor bool `fig:"no_color"`
	} `fig:"output"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("invalid HTTP timeout: %s", c.HTTP.Timeout)
	}
	base, err := url.Parse(c.HTTP.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.HTTP.BaseURL, err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return fmt.Errorf("invalid base URL %q: must be an absolute http(s) URL", c.HTTP.BaseURL)
	}
	if !strings.HasSuffix(c.HTTP.BaseURL, "/") {
		c.HTTP.BaseURL += "/"
	}
	return nil
}

// FindFile returns the directory and file name of the first config file found in
// <config_dir>/hydro. Both are empty if there is none.
func FindFile() (string, string) {
	confDir, err := os.UserConfigDir()
	if err != nil {
		return "", ""
	}
	for _, ext := range Extensions {
		path := filepath.Join(confDir, favorites.AppDir, "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
