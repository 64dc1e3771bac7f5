package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sealedenum/enum"
	"github.com/vk/sealedenum/internal/ctxlog"
)

// Loader produces closed enumerations from configuration paths.
type Loader interface {
	Load(ctx context.Context, paths ...string) ([]*enum.Enum[enum.Record], error)
}

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader Loader
	config *Config
}

// NewApp builds an App that prints to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:   outW,
		logger: logger,
		loader: loader,
		config: cfg,
	}
}

// Run loads the configured paths and prints the enumerations they declare.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "paths", a.config.Paths)

	enums, err := a.loader.Load(ctx, a.config.Paths...)
	if err != nil {
		return fmt.Errorf("failed to load enumerations: %w", err)
	}
	if len(enums) == 0 {
		a.logger.Warn("No enumerations found.", "paths", a.config.Paths)
		return nil
	}
	a.logger.Info("Enumerations loaded.", "count", len(enums))

	if a.config.Only != "" {
		for _, e := range enums {
			if e.Name() == a.config.Only {
				return render(a.outW, e)
			}
		}
		return fmt.Errorf("enumeration %q not found", a.config.Only)
	}

	for i, e := range enums {
		if i > 0 {
			fmt.Fprintln(a.outW)
		}
		if err := render(a.outW, e); err != nil {
			return err
		}
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}
