// Package providers contains dependency injection providers for the Lucky Sign server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/luckysign/internal/config"
	"github.com/listenupapp/luckysign/internal/logger"
	"github.com/listenupapp/luckysign/internal/version"
)

// ConfigProvider returns a provider that loads configuration from args,
// the environment and the optional env file.
func ConfigProvider(args []string) func(do.Injector) (*config.Config, error) {
	return func(do.Injector) (*config.Config, error) {
		return config.Load(args)
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting Lucky Sign Server",
		"version", version.Version,
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"render_cache", cfg.Render.CacheEnabled,
		"default_size", cfg.Sign.DefaultSize,
	)

	return log, nil
}
