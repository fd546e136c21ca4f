package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	hjarta "github.com/0xalexb/hjarta-cfg"
	"github.com/0xalexb/hjarta-cfg/config"
	"github.com/0xalexb/hjarta-cfg/config/args"
	tomlparser "github.com/0xalexb/hjarta-cfg/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-cfg/config/parser/yaml"
	"github.com/0xalexb/hjarta-cfg/logging"

	"github.com/spf13/cobra"
)

var errUnknownFormat = errors.New("unknown format")

type rootOptions struct {
	dir             string
	defaultFilename string
	noDefault       bool
	format          string
	assignments     []string
	logLevel        string

	logger *slog.Logger
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "cfgyaml",
		Short:         "Load and merge hierarchical configuration directories",
		Version:       hjarta.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			opts.logger = logging.NewLogger(logging.LoggerConfig{
				Level:  opts.logLevel,
				Format: logging.FormatText,
			}, stderr)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dir, "dir", config.DefaultPath, "configuration directory")
	flags.StringVar(&opts.defaultFilename, "default", config.DefaultFilename, "default configuration name")
	flags.BoolVar(&opts.noDefault, "no-default", false, "do not load a default configuration")
	flags.StringVar(&opts.format, "format", yamlparser.Extension, "file format: yaml or toml")
	flags.StringArrayVar(&opts.assignments, "set", nil, "override a value, e.g. --set env.device=0 (repeatable)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		newShowCommand(opts),
		newGetCommand(opts),
		newSaveCommand(opts),
	)

	return root
}

func newShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Print the merged configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			var name string
			if len(positional) == 1 {
				name = positional[0]
			}

			dir, cfg, err := opts.load(name)
			if err != nil {
				return err
			}

			return printTree(cmd.OutOrStdout(), dir.Codec(), cfg)
		},
	}
}

func newGetCommand(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print a single value by dotted path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			dir, cfg, err := opts.load(name)
			if err != nil {
				return err
			}

			value, err := cfg.Get(positional[0])
			if err != nil {
				return fmt.Errorf("get %q: %w", positional[0], err)
			}

			if nested, ok := value.(*config.Map); ok {
				return printTree(cmd.OutOrStdout(), dir.Codec(), nested)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)

			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "configuration to load over the default")

	return cmd
}

func newSaveCommand(opts *rootOptions) *cobra.Command {
	var (
		name string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "save <target>",
		Short: "Write the merged configuration under a new dotted name",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, positional []string) error {
			dir, cfg, err := opts.load(name)
			if err != nil {
				return err
			}

			if out == "" {
				out = dir.Path()
			}

			target := config.NewDirectory(out, "", config.WithCodec(dir.Codec()))

			err = target.Save(positional[0], cfg)
			if err != nil {
				return err
			}

			opts.logger.Info("config saved", slog.String("path", target.FilePath(positional[0])))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "configuration to load over the default")
	cmd.Flags().StringVar(&out, "out", "", "output directory (defaults to --dir)")

	return cmd
}

func (o *rootOptions) directory() (*config.Directory, error) {
	var codec config.Codec

	switch o.format {
	case yamlparser.Extension, "yml":
		codec = yamlparser.NewCodec()
	case tomlparser.Extension:
		codec = tomlparser.NewCodec()
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, o.format)
	}

	defaultFilename := o.defaultFilename
	if o.noDefault {
		defaultFilename = ""
	}

	return config.NewDirectory(o.dir, defaultFilename, config.WithCodec(codec)), nil
}

func (o *rootOptions) load(name string) (*config.Directory, *config.Map, error) {
	dir, err := o.directory()
	if err != nil {
		return nil, nil, err
	}

	overrides, err := args.ParseAssignments(o.assignments)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := dir.Load(name, overrides)
	if err != nil {
		return nil, nil, err
	}

	o.logger.Debug("config loaded",
		slog.String("directory", dir.Path()),
		slog.String("name", name),
		slog.Int("overrides", len(overrides)),
	)

	return dir, cfg, nil
}

func printTree(w io.Writer, codec config.Codec, tree *config.Map) error {
	data, err := tree.Encode(codec)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
