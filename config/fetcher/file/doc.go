// Package file provides the filesystem side of the config package.
//
// A Fetcher reads a configuration file once at construction time and caches
// its contents; Write stores a serialized configuration, creating parent
// directories as needed.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("config/default.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
//	err = file.Write("config/experiments/lr.yaml", data)
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, fs.ErrNotExist) to detect a missing file
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
