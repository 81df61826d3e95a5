package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vk/designfmt/internal/config"
	"github.com/vk/designfmt/internal/ctxlog"
	"github.com/vk/designfmt/internal/design"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// App owns the formatter and logger used by one CLI invocation.
type App struct {
	ctx       context.Context
	logger    *slog.Logger
	formatter *design.Formatter
}

// NewApp builds an App. Settings in cfg take precedence over the
// configuration file named by cfg.ConfigPath. Logs are written to logW.
func NewApp(logW io.Writer, cfg *Config) (*App, error) {
	var model *config.Model
	if cfg.ConfigPath != "" {
		m, err := config.Load(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		model = m
	}

	level := firstNonEmpty(cfg.LogLevel, model.LogLevel(), defaultLogLevel)
	format := firstNonEmpty(cfg.LogFormat, model.LogFormat(), defaultLogFormat)
	if err := validateLogLevel(level); err != nil {
		return nil, err
	}
	if err := validateLogFormat(format); err != nil {
		return nil, err
	}

	logger := newLogger(level, format, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.", "level", level, "format", format)

	loc, err := resolveLocation(firstNonEmpty(cfg.TimeZone, model.TimeZone()))
	if err != nil {
		return nil, err
	}
	logger.Debug("Time zone resolved.", "zone", loc.String())

	f := design.New(design.WithLocation(loc), design.WithLogger(logger))
	logger.Debug("Formatter ready.", "types", len(f.Types()))

	return &App{
		ctx:       ctx,
		logger:    logger,
		formatter: f,
	}, nil
}

// resolveLocation interprets a zone id with the formatter's own time zone
// rules, so the config file accepts exactly what markup does.
func resolveLocation(id string) (*time.Location, error) {
	if id == "" {
		return time.Local, nil
	}
	loc, err := design.ParseAs[*time.Location](design.New(design.WithLogger(discardLogger)), id)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone: %w", err)
	}
	return loc, nil
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Formatter returns the application's formatter.
func (a *App) Formatter() *design.Formatter {
	return a.formatter
}

// Context returns a context carrying the application's logger.
func (a *App) Context() context.Context {
	return a.ctx
}
