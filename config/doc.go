// Package config provides hierarchical configuration directories.
//
// A Directory holds configuration files in a single format (YAML by default).
// Load merges up to three levels, each overriding the previous one:
//   - the default file (e.g. "config/default.yaml"), if a default filename is set
//   - a named file, where the dotted name "a.b" maps to "config/a/b.yaml"
//   - a flat mapping of dotted keys, typically produced from command-line flags
//
// The result is a Map, addressable by dotted paths:
//
//	dir := config.NewDirectory("./config", "default")
//	cfg, err := dir.Load("overlap", map[string]any{"env.device": 0})
//	device, err := cfg.Get("env.device")
//
// # Merging
//
// Merge is source-wins and recursive. Nil values are skipped, so a flag that
// was not set (nil) never overrides a file value. Dotted keys are expanded:
// {"env.device": 0} merges as {"env": {"device": 0}}. Lists and scalars are
// replaced wholesale.
//
// # Extension Points
//
//   - Codec: parses and serializes a file format (config/parser/yaml, config/parser/toml)
//   - DataFetcher: retrieves raw config data (config/fetcher/file)
//   - Validator and Defaulter: hooks used by Provider when decoding into structs
//
// Set never creates intermediate nodes: setting "a.b.c" requires "a.b" to
// exist and be a mapping, otherwise ErrKeyNotFound is returned.
package config
