package hjarta

import (
	"io"

	"github.com/0xalexb/hjarta-cfg/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfig loads the named configuration from dir when the application is
// built and supplies it to DI as *config.Map. An empty name loads the default
// configuration; args are injected over the files (nil values are ignored).
func WithConfig(dir *config.Directory, name string, args map[string]any) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, config.NewModule(dir, name, args))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogOutput sets where logs are written. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
