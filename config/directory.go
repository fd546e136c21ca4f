package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	filefetcher "github.com/0xalexb/hjarta-cfg/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-cfg/config/parser/yaml"
)

const (
	// DefaultPath is the directory used by DefaultDirectory.
	DefaultPath = "config"
	// DefaultFilename is the default configuration name used by DefaultDirectory.
	DefaultFilename = "default"
)

// DefaultDirectory represents "./config" with "default" as its default configuration.
//
//nolint:gochecknoglobals // convenience handle, holds no loaded data.
var DefaultDirectory = NewDirectory(DefaultPath, DefaultFilename)

// Directory is a directory of configuration files.
//
// A dotted configuration name maps to a file below the directory: "a.b"
// resolves to "<path>/a/b.<ext>", where ext comes from the codec. The
// directory owns no loaded data; every Load reads the files again.
type Directory struct {
	path            string
	defaultFilename string
	codec           Codec
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*Directory)

// WithCodec sets the file format used to read and write configuration files.
// YAML is used when no codec is given.
func WithCodec(codec Codec) DirectoryOption {
	return func(dir *Directory) {
		dir.codec = codec
	}
}

// NewDirectory creates a Directory rooted at path. An empty defaultFilename
// means the directory has no default configuration.
func NewDirectory(path, defaultFilename string, opts ...DirectoryOption) *Directory {
	dir := &Directory{
		path:            filepath.Clean(path),
		defaultFilename: defaultFilename,
		codec:           yamlparser.NewCodec(),
	}

	for _, apply := range opts {
		apply(dir)
	}

	return dir
}

// Path returns the directory path.
func (d *Directory) Path() string {
	return d.path
}

// SetPath moves the directory to a new path.
func (d *Directory) SetPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	d.path = filepath.Clean(path)

	return nil
}

// DefaultFilename returns the default configuration name, or "" if there is none.
func (d *Directory) DefaultFilename() string {
	return d.defaultFilename
}

// SetDefaultFilename changes the default configuration name. An empty name disables it.
func (d *Directory) SetDefaultFilename(name string) {
	d.defaultFilename = name
}

// Codec returns the codec used for configuration files.
//
//nolint:ireturn // codec is chosen with WithCodec
func (d *Directory) Codec() Codec {
	return d.codec
}

// String implements fmt.Stringer.
func (d *Directory) String() string {
	return d.path
}

// DefaultFilePath returns the full path of the default configuration file.
// The boolean is false when no default filename is configured.
func (d *Directory) DefaultFilePath() (string, bool) {
	if d.defaultFilename == "" {
		return "", false
	}

	return filepath.Join(d.path, d.defaultFilename+"."+d.codec.Extension()), true
}

// FilePath returns the file path of a dotted configuration name inside the directory.
func (d *Directory) FilePath(name string) string {
	return namePath(d.path, name, d.codec.Extension())
}

func namePath(directory, name, extension string) string {
	relative := strings.ReplaceAll(name, Separator, string(filepath.Separator))

	return filepath.Join(directory, relative+"."+extension)
}

// Mkdir creates the directory along with any missing parents.
func (d *Directory) Mkdir(perm fs.FileMode) error {
	err := os.MkdirAll(d.path, perm)
	if err != nil {
		return fmt.Errorf("creating directory %q: %w", d.path, err)
	}

	return nil
}

// Load reads the configuration in three ordered levels:
//
//  1. the default file, if a default filename is configured; it must exist;
//  2. the named file, if name is not empty, merged over the default;
//  3. args, a flat mapping of dotted keys, merged over the result.
//
// Nil values in args are ignored, so unset flags never clobber file values.
// Keys keep the order in which the files, then args, introduce them.
// Load fails with ErrConfigFileNotFound when a required file is missing and
// with ErrNoConfigSpecified when there is neither a default nor a name.
func (d *Directory) Load(name string, args map[string]any) (*Map, error) {
	var result map[string]any

	order := newKeyOrder()

	defaultPath, hasDefault := d.DefaultFilePath()
	if hasDefault {
		defaults, err := d.read(defaultPath, order)
		if err != nil {
			return nil, fmt.Errorf("loading default config: %w", err)
		}

		result = defaults
	}

	if name == "" {
		if result == nil {
			return nil, ErrNoConfigSpecified
		}
	} else {
		override, err := d.read(d.FilePath(name), order)
		if err != nil {
			return nil, fmt.Errorf("loading config %q: %w", name, err)
		}

		result = Merge(result, override)
	}

	// An empty override with no default leaves nothing to merge into; args
	// still get their nil values skipped and dotted keys expanded.
	if result == nil {
		result = make(map[string]any, len(args))
	}

	order.observeMap(args)
	result = Merge(result, args)

	return newOrdered(result, order), nil
}

func (d *Directory) read(fpath string, order *keyOrder) (map[string]any, error) {
	fetcher, err := filefetcher.NewFetcher(fpath)()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, fpath)
		}

		return nil, err
	}

	ordered, isOrdered := d.codec.(OrderedParser)
	if !isOrdered {
		tree, err := Read(d.codec, fetcher)
		if err != nil {
			return nil, err
		}

		order.observeMap(tree)

		return tree, nil
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	document, err := ordered.ParseOrdered(data)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	order.observeSlice(document)

	return yamlparser.ToMap(document), nil
}

// Read fetches raw data and parses it with parser.
func Read(parser Parser, fetcher DataFetcher) (map[string]any, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	tree, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return tree, nil
}

// Save writes m to the file of the dotted name inside the directory, using the directory's codec.
func (d *Directory) Save(name string, m *Map) error {
	return m.SaveWith(d.codec, name, d.path)
}

// Save writes the configuration as YAML to the file of the dotted name inside
// directory, e.g. name "a.b" is written to "<directory>/a/b.yaml". Missing
// directories are created.
func (m *Map) Save(name, directory string) error {
	return m.SaveWith(yamlparser.NewCodec(), name, directory)
}

// SaveWith is like Save but encodes the configuration with codec.
func (m *Map) SaveWith(codec Codec, name, directory string) error {
	data, err := m.Encode(codec)
	if err != nil {
		return fmt.Errorf("serializing config %q: %w", name, err)
	}

	err = filefetcher.Write(namePath(directory, name, codec.Extension()), data)
	if err != nil {
		return fmt.Errorf("saving config %q: %w", name, err)
	}

	return nil
}
