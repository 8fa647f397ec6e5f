// Package bootstrap wires the packaging debug workflow shared by the HTTP
// server and the packagingctl CLI: configuration, logging, the strategy
// registry, the settings store and the notifier, registered in a samber/do
// injector.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/notify"
	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/settings"
	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/strategies"
	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/strategies/builtin"
	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/strategies/script"
	"github.com/jsamuelsen11/go-packaging-service/internal/app"
	"github.com/jsamuelsen11/go-packaging-service/internal/platform/config"
	"github.com/jsamuelsen11/go-packaging-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-packaging-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

// ProfileEnv names the environment variable selecting the config profile.
const ProfileEnv = "APP_PROFILE"

// ErrMissingProfile is returned by LoadConfig when no profile is set.
var ErrMissingProfile = errors.New(ProfileEnv + " environment variable is required (e.g. local, dev, qa, prod)")

// LoadConfig loads variables from envFile (when it exists) into the process
// environment without overriding variables already set, then loads the
// profile named by APP_PROFILE.
func LoadConfig(envFile string, opts ...config.Option) (*config.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	profile := os.Getenv(ProfileEnv)
	if profile == "" {
		return nil, ErrMissingProfile
	}

	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the service logger writing to w and, when configured, to
// a rotating log file. The closer releases the file.
func NewLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, io.Closer) {
	out, closer := logging.Writer(w, logging.FileOptions{
		Path:       cfg.File.Path,
		MaxSizeMB:  cfg.File.MaxSizeMB,
		MaxBackups: cfg.File.MaxBackups,
		MaxAgeDays: cfg.File.MaxAgeDays,
		Compress:   cfg.File.Compress,
	})
	return logging.New(cfg.Level, cfg.Format, out), closer
}

// NewRegistry returns a registry holding the built-in strategies followed by
// the script strategies found in cfg.ScriptsDir, in file name order.
func NewRegistry(ctx context.Context, cfg config.PackagingConfig, logger *slog.Logger) (*strategies.Registry, error) {
	registry := strategies.NewRegistry(logger)

	if err := builtin.Register(registry, cfg.MaxWeight()); err != nil {
		return nil, fmt.Errorf("registering built-in strategies: %w", err)
	}

	if cfg.ScriptsDir == "" {
		return registry, nil
	}

	modules, err := script.LoadDir(ctx, cfg.ScriptsDir)
	if err != nil {
		return nil, fmt.Errorf("loading script strategies: %w", err)
	}
	if err := script.Register(registry, modules, logger); err != nil {
		return nil, err
	}

	logger.Info("strategy registry ready",
		slog.Int("strategies", registry.Len()),
		slog.Int("scripts", len(modules)),
		slog.String("scripts_dir", cfg.ScriptsDir),
	)
	return registry, nil
}

// OpenStore opens the configured settings driver behind the resilient
// decorator.
func OpenStore(ctx context.Context, cfg config.SettingsConfig, logger *slog.Logger) (*settings.Resilient, error) {
	store, err := settings.Open(ctx, cfg.Driver, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening settings store: %w", err)
	}
	logger.Info("settings store opened",
		slog.String("driver", cfg.Driver),
		slog.String("path", cfg.Path),
	)
	return settings.NewResilient(store, cfg.Retry, cfg.CircuitBreaker, logger), nil
}

// Register provides the workflow graph to injector: the strategy registry,
// the resilient settings store, the flash notifier and the
// ports.PackagingDebugService. metrics may be nil.
func Register(injector do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(injector, func(_ do.Injector) (*strategies.Registry, error) {
		return NewRegistry(context.Background(), cfg.Packaging, logger)
	})

	do.Provide(injector, func(_ do.Injector) (*settings.Resilient, error) {
		return OpenStore(context.Background(), cfg.Settings, logger)
	})

	do.Provide(injector, func(_ do.Injector) (*notify.Flash, error) {
		return notify.NewFlash(cfg.Notify.Capacity, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PackagingDebugService, error) {
		registry, err := do.Invoke[*strategies.Registry](i)
		if err != nil {
			return nil, err
		}
		store, err := do.Invoke[*settings.Resilient](i)
		if err != nil {
			return nil, err
		}
		flash := do.MustInvoke[*notify.Flash](i)

		opts := []app.Option{}
		if metrics != nil {
			opts = append(opts, app.WithMetrics(metrics))
		}
		return app.NewPackagingDebugService(registry, store, flash, logger, opts...), nil
	})
}
