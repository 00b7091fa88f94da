package app

import (
	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/buildtrigger/internal/core/ports"
)

// Components holds the application components wired for a process.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
}

// formatSetter is implemented by loggers that can switch their output format.
type formatSetter interface {
	SetFormat(format domain.LogFormat)
}

// NewComponents creates a new Components struct from dependencies.
// The configured log format is applied to the logger when it supports it.
func NewComponents(app *App, logger ports.Logger, cfg *domain.Config) *Components {
	if fs, ok := logger.(formatSetter); ok {
		fs.SetFormat(cfg.LogFormat)
	}
	return &Components{
		App:    app,
		Logger: logger,
		Config: cfg,
	}
}
