// Package toml provides a TOML codec for the config package, backed by
// github.com/pelletier/go-toml/v2.
//
// Tables decode to map[string]any, arrays to []any, integers to int64 and
// floats to float64. TOML has no null, so nil values cannot be serialized.
package toml
