// Package config loads semver settings from an optional YAML file and the
// environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/bcomnes/semverfile/pkg/store"
	"github.com/bcomnes/semverfile/pkg/version"
)

const (
	// FileName is the config file looked up in the start directory when no
	// explicit path is given.
	FileName = ".semver.yaml"

	// DefaultVersion is written by init when no version is supplied.
	DefaultVersion = "0.1.0"

	// DefaultLogLevel keeps stdout and stderr quiet unless something is off.
	DefaultLogLevel = "warn"
)

// Environment variables that override file settings.
const (
	EnvFile           = "SEMVER_FILE"
	EnvDefaultVersion = "SEMVER_DEFAULT_VERSION"
	EnvLogLevel       = "SEMVER_LOG_LEVEL"
)

var errConfigPathIsDir = errors.New("config path is a directory")

// Config holds semver settings.
type Config struct {
	// File is the name of the version file searched for upward.
	File string `yaml:"file"`
	// DefaultVersion is used by init without an explicit version.
	DefaultVersion string `yaml:"default_version"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		File:           store.DefaultName,
		DefaultVersion: DefaultVersion,
		LogLevel:       DefaultLogLevel,
	}
}

// Load builds a Config from the defaults, then the YAML file at path, then
// the environment. An empty path means FileName inside dir, which may be
// absent; an explicit path must exist.
func Load(path, dir string) (Config, error) {
	c := Default()

	if path == "" {
		path = filepath.Join(dir, FileName)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = ""
		}
	}
	if path != "" {
		if err := c.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	c.applyEnv()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) loadFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if info.IsDir() {
		return errors.Wrapf(errConfigPathIsDir, "reading config %s", path)
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(bs, c); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvFile); v != "" {
		c.File = v
	}
	if v := os.Getenv(EnvDefaultVersion); v != "" {
		c.DefaultVersion = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	} else if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.File == "" {
		return errors.New("config: file must not be empty")
	}
	if strings.ContainsRune(c.File, '/') || strings.ContainsRune(c.File, filepath.Separator) || c.File == "." || c.File == ".." {
		return errors.Newf("config: file %q must be a bare file name", c.File)
	}
	if _, err := version.Parse(c.DefaultVersion); err != nil {
		return errors.Wrap(err, "config: default_version")
	}
	return nil
}
