package args

import (
	"errors"
	"fmt"
	"strings"

	yamlparser "github.com/0xalexb/hjarta-cfg/config/parser/yaml"

	"github.com/spf13/pflag"
)

// ErrInvalidAssignment is returned when an assignment is not of the form "key=value".
var ErrInvalidAssignment = errors.New("assignment must be key=value")

// Option configures FromFlagSet.
type Option func(*options)

type options struct {
	includeDefaults bool
	skip            map[string]struct{}
}

// WithDefaults makes unset flags map to their default value instead of nil.
func WithDefaults() Option {
	return func(opts *options) {
		opts.includeDefaults = true
	}
}

// WithSkip leaves the named flags out of the mapping entirely.
func WithSkip(names ...string) Option {
	return func(opts *options) {
		for _, name := range names {
			opts.skip[name] = struct{}{}
		}
	}
}

// FromFlagSet returns a flat mapping of the flags defined in fs, keyed by flag name.
// Flags that were not changed map to nil unless WithDefaults is given.
func FromFlagSet(fs *pflag.FlagSet, opts ...Option) map[string]any {
	cfg := options{skip: make(map[string]struct{})}

	for _, apply := range opts {
		apply(&cfg)
	}

	result := make(map[string]any)

	fs.VisitAll(func(flag *pflag.Flag) {
		if _, skipped := cfg.skip[flag.Name]; skipped {
			return
		}

		if !flag.Changed && !cfg.includeDefaults {
			result[flag.Name] = nil

			return
		}

		result[flag.Name] = flagValue(fs, flag)
	})

	return result
}

//nolint:cyclop // one case per supported flag type
func flagValue(fs *pflag.FlagSet, flag *pflag.Flag) any {
	var (
		value any
		err   error
	)

	switch flag.Value.Type() {
	case "bool":
		value, err = fs.GetBool(flag.Name)
	case "int":
		value, err = fs.GetInt(flag.Name)
	case "int64":
		value, err = fs.GetInt64(flag.Name)
	case "uint":
		value, err = fs.GetUint(flag.Name)
	case "float64":
		value, err = fs.GetFloat64(flag.Name)
	case "duration":
		value, err = fs.GetDuration(flag.Name)
	case "stringSlice":
		value, err = fs.GetStringSlice(flag.Name)
	case "intSlice":
		value, err = fs.GetIntSlice(flag.Name)
	case "stringArray":
		value, err = fs.GetStringArray(flag.Name)
	default:
		return flag.Value.String()
	}

	if err != nil {
		return flag.Value.String()
	}

	return value
}

// ParseAssignments turns "key=value" strings into a flat mapping. Values are
// decoded as YAML scalars, so "0" is a number and "true" a bool. Later
// assignments to the same key win.
func ParseAssignments(assignments []string) (map[string]any, error) {
	result := make(map[string]any, len(assignments))

	for _, assignment := range assignments {
		key, raw, found := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)

		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAssignment, assignment)
		}

		value, err := yamlparser.ParseScalar(raw)
		if err != nil {
			return nil, fmt.Errorf("assignment %q: %w", key, err)
		}

		result[key] = value
	}

	return result, nil
}
