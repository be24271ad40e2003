// Package config loads laserbox settings from a TOML file.
//
// The file has one section per concern:
//
//	[box]
//	width = 56.0
//	height = 35.0
//
//	[rules]
//	count = 3
//	max_attempts = 300
//
//	[render]
//	style = "handdrawn"
//	formats = ["svg", "json"]
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
//
// Missing keys keep their defaults; unknown keys are an error. Command line
// flags override whatever the file sets.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/laserbox/pkg/errors"
	"github.com/matzehuels/laserbox/pkg/pipeline"
	"github.com/matzehuels/laserbox/pkg/puzzle"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the full settings file.
type Config struct {
	Box    puzzle.Box   `toml:"box"`
	Rules  puzzle.Rules `toml:"rules"`
	Render Render       `toml:"render"`
	Cache  Cache        `toml:"cache"`
	Server Server       `toml:"server"`
}

// Render holds rendering defaults.
type Render struct {
	VizType string   `toml:"viz_type"`
	Style   string   `toml:"style"`
	Formats []string `toml:"formats"`
	Scale   float64  `toml:"scale"`
	NoLabel bool     `toml:"no_label"`
	Output  string   `toml:"output"` // directory artifacts are written to
}

// Cache selects and configures the cache backend.
type Cache struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"` // file backend; empty selects the user cache dir
	RedisURL string `toml:"redis_url"`
	Prefix   string `toml:"prefix"` // key prefix, see cache.ScopedKeyer
}

// Server configures the HTTP server.
type Server struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// Default returns the built-in settings.
func Default() Config {
	pc := puzzle.DefaultConfig()
	return Config{
		Box:   pc.Box,
		Rules: pc.Rules,
		Render: Render{
			VizType: pipeline.DefaultVizType,
			Style:   pipeline.DefaultStyle,
			Formats: []string{pipeline.FormatSVG},
			Scale:   pipeline.DefaultScale,
			Output:  ".",
		},
		Cache: Cache{
			Backend: BackendFile,
		},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/laserbox/config.toml, falling back to
// the platform's user config directory.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, "laserbox", "config.toml"), nil
}

// Load reads the file at path on top of [Default] and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDefault loads the file at [DefaultPath]. A missing file yields
// [Default]. The returned path is the one that was consulted.
func LoadDefault() (Config, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), path, nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Puzzle().Validate(); err != nil {
		return err
	}

	opts := c.Options(0)
	if err := opts.ValidateForRender(); err != nil {
		return err
	}

	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "invalid cache.backend: %q (must be one of: file, redis, none)", c.Cache.Backend)
	}

	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "server timeouts must not be negative")
	}
	return nil
}

// Puzzle returns the generator configuration.
func (c Config) Puzzle() puzzle.Config {
	return puzzle.Config{Box: c.Box, Rules: c.Rules}
}

// Options returns pipeline options for seed built from the file's settings.
func (c Config) Options(seed uint64) pipeline.Options {
	rules := c.Rules
	return pipeline.Options{
		Seed:    seed,
		Width:   c.Box.Width,
		Height:  c.Box.Height,
		Rules:   &rules,
		VizType: c.Render.VizType,
		Formats: append([]string(nil), c.Render.Formats...),
		Style:   c.Render.Style,
		Scale:   c.Render.Scale,
		NoLabel: c.Render.NoLabel,
	}
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
