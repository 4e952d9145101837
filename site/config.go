// Package site assembles a blog site from a collection of markup documents:
// configuration, HTML templates, page rendering, sitemap output, and the
// one-shot static build.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the site configuration file, looked up at the site root.
const ConfigFile = "plume.cfg"

// Config holds the build-time site settings. It is passed explicitly into
// the rendering components; there is no process-wide state.
type Config struct {
	Title         string            `toml:"title"`         // Site title, available to all templates
	Description   string            `toml:"description"`   // Site description, available to all templates
	BaseURL       string            `toml:"baseurl"`       // Absolute base URL used in the sitemap
	ContentDir    string            `toml:"contentdir"`    // Content root, relative to the site root
	Collection    string            `toml:"collection"`    // Collection holding the posts
	Markdown      string            `toml:"markdown"`      // Markdown engine name
	Expires       Duration          `toml:"expires"`       // Expires header for rendered pages
	StaticExpires Duration          `toml:"staticexpires"` // Expires header for static assets
	Headers       map[string]string `toml:"headers"`       // Extra response headers
}

// Duration wraps time.Duration so it reads and writes as text in TOML.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	p, err := time.ParseDuration(string(text))
	*d = Duration(p)
	return err
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Title:      "Blog",
		ContentDir: "content",
		Collection: "blog",
	}
}

// LoadConfig reads the site configuration from the site root. A missing file
// is not an error; defaults are returned instead.
func LoadConfig(fsys fs.FS) (*Config, error) {
	cfg := DefaultConfig()
	b, err := fs.ReadFile(fsys, ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file: %w", err)
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = "content"
	}
	if cfg.Collection == "" {
		cfg.Collection = "blog"
	}
	return cfg, nil
}
