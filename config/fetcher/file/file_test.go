package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name string, content []byte) string {
	t.Helper()

	fpath := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(fpath, content, 0o600)
	require.NoError(t, err)

	return fpath
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte("env:\n  device: -1\nlr: 0.01\n")
	configPath := writeFixture(t, "default.yaml", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, configPath, fetcher.Path())
}

func TestFetcher_Fetch_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/config/default.yaml")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	configPath := writeFixture(t, "empty.yaml", []byte{})

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewFetcher_CleansPath(t *testing.T) {
	t.Parallel()

	configPath := writeFixture(t, "default.yaml", []byte("lr: 0.1"))
	dirtyPath := filepath.Dir(configPath) + "/./sub/../default.yaml"

	require.NoError(t, os.Mkdir(filepath.Join(filepath.Dir(configPath), "sub"), 0o750))

	fetcher, err := NewFetcher(dirtyPath)()

	require.NoError(t, err)
	assert.Equal(t, configPath, fetcher.Path())
}

func TestFetcher_Fetch_DirectoryPath(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(t.TempDir())()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestFetcher_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	original := []byte("lr: 0.01")
	configPath := writeFixture(t, "default.yaml", original)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	err = os.WriteFile(configPath, []byte("lr: 0.02"), 0o600)
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, original, data, "Fetch should return cached data, not current file content")
}

func TestFetcher_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	content := []byte("lr: 0.01")
	configPath := writeFixture(t, "default.yaml", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, content, second, "Fetch should return unmodified cached data")
}

func TestWrite_CreatesParentDirectories(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "experiments", "lr", "small.yaml")
	content := []byte("lr: 0.001\n")

	err := Write(target, content)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestWrite_TruncatesExistingFile(t *testing.T) {
	t.Parallel()

	target := writeFixture(t, "overlap.yaml", []byte("lr: 0.02\nepochs: 100\n"))

	err := Write(target, []byte("lr: 0.5\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "lr: 0.5\n", string(data))
}

func TestWrite_ParentIsFile(t *testing.T) {
	t.Parallel()

	blocker := writeFixture(t, "blocker", []byte("x"))

	err := Write(filepath.Join(blocker, "child.yaml"), []byte("a: 1"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating directory")
}
