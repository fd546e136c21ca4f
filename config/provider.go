package config

import (
	"fmt"
	"log/slog"
)

// Provider returns a function that decodes the subtree at path into target,
// sets defaults and validates it.
//
// The path is a dotted path into the loaded Map; an empty path decodes the
// whole configuration. Defaults are applied when target implements Defaulter,
// validation runs when it implements Validator.
func Provider[T any](target *T, path string) func(*Map) (*T, error) {
	return func(cfg *Map) (*T, error) {
		err := cfg.Decode(path, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
