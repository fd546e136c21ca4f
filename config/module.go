package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that loads the named configuration from dir
// and supplies the resulting *Map to the container. An empty name loads the
// default configuration only; args are injected last.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(dir *Directory, name string, args map[string]any) fx.Option {
	return fx.Module("config",
		fx.Provide(func(logger *slog.Logger) (*Map, error) {
			cfg, err := dir.Load(name, args)
			if err != nil {
				logger.Error("failed to load config",
					slog.String("directory", dir.Path()),
					slog.String("name", name),
					slog.Any("error", err),
				)

				return nil, err
			}

			logger.Debug("config loaded",
				slog.String("directory", dir.Path()),
				slog.String("name", name),
				slog.Int("keys", cfg.Len()),
			)

			return cfg, nil
		}),
	)
}
