// Package args builds the flat override mappings injected by config.Directory.Load.
//
// FromFlagSet turns a github.com/spf13/pflag FlagSet into a mapping keyed by
// flag name. Flags that were not set on the command line map to nil, which
// Load ignores, so only explicit flags override file values:
//
//	fs := pflag.NewFlagSet("train", pflag.ContinueOnError)
//	fs.Int("env.device", -1, "GPU to use")
//	_ = fs.Parse(os.Args[1:])
//	cfg, err := dir.Load("overlap", args.FromFlagSet(fs))
//
// ParseAssignments handles repeated "key=value" flags, decoding each value as
// a YAML scalar.
package args
