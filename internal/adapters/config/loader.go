// Package config provides the configuration loader for buildtrigger.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/buildtrigger/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file and the environment.
type Loader struct {
	Logger ports.Logger
	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Getenv: os.Getenv}
}

// Load resolves the configuration. Values from the environment take precedence
// over values from the config file, which take precedence over defaults.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	file, err := l.readFile(cwd)
	if err != nil {
		return nil, err
	}
	if file != nil {
		if err := apply(&cfg, *file); err != nil {
			return nil, err
		}
	}

	if err := apply(&cfg, l.fromEnv()); err != nil {
		return nil, err
	}

	if cfg.ProjectName == "" {
		l.Logger.Warn(fmt.Sprintf("no CodeBuild project configured, set %s", domain.EnvProjectName))
	}

	return &cfg, nil
}

func (l *Loader) getenv(key string) string {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	return strings.TrimSpace(getenv(key))
}

func (l *Loader) fromEnv() File {
	return File{
		Project:      l.getenv(domain.EnvProjectName),
		PollInterval: l.getenv(domain.EnvPollInterval),
		Region:       l.getenv(domain.EnvRegion),
		LogFormat:    l.getenv(domain.EnvLogFormat),
	}
}

// readFile returns the parsed config file, or nil when none exists.
// A file named explicitly through the environment must exist.
func (l *Loader) readFile(cwd string) (*File, error) {
	path := l.getenv(domain.EnvConfigFile)
	explicit := path != ""
	if !explicit {
		path = filepath.Join(cwd, domain.ConfigFileName)
	}

	//nolint:gosec // Path comes from the operator's environment or working directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &file, nil
}

// apply overlays the non-empty values of src onto cfg.
func apply(cfg *domain.Config, src File) error {
	if src.Project != "" {
		cfg.ProjectName = src.Project
	}

	if src.Region != "" {
		cfg.Region = src.Region
	}

	if src.PollInterval != "" {
		interval, err := time.ParseDuration(src.PollInterval)
		if err != nil || interval <= 0 {
			return zerr.With(zerr.Wrap(domain.ErrInvalidPollInterval, ""), "poll_interval", src.PollInterval)
		}
		cfg.PollInterval = interval
	}

	if src.LogFormat != "" {
		format := domain.LogFormat(strings.ToLower(src.LogFormat))
		if !format.Valid() {
			return zerr.With(zerr.Wrap(domain.ErrInvalidLogFormat, ""), "log_format", src.LogFormat)
		}
		cfg.LogFormat = format
	}

	return nil
}
