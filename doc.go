// Package hjarta wires hierarchical configuration into an Fx application.
//
// NewApp builds an Fx container with a slog logger. WithConfig loads a
// configuration directory (see package config) and makes the merged
// *config.Map injectable, so modules can bind sections of it to structs with
// config.Provider:
//
//	app := hjarta.NewApp(
//	    hjarta.WithLogLevel("info"),
//	    hjarta.WithConfig(config.DefaultDirectory, "overlap", args.FromFlagSet(flags)),
//	    hjarta.WithModules(fx.Provide(config.Provider(new(ServerConfig), "server"))),
//	)
package hjarta
