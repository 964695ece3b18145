package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 0, c.Ranker.Workers)
	assert.Equal(t, 10, c.Ranker.ShowCount)
	assert.Equal(t, "words.txt", c.Dict.WordsFile)
	assert.Equal(t, "targets.txt", c.Dict.TargetsFile)
	assert.False(t, c.CLI.ShowAll)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	c := DefaultConfig()
	c.Ranker.Workers = 6
	c.Ranker.ShowCount = 25
	c.Dict.WordsFile = "allowed.txt"
	require.NoError(t, SaveConfig(c, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6, loaded.Ranker.Workers)
	assert.Equal(t, 25, loaded.Ranker.ShowCount)
	assert.Equal(t, "allowed.txt", loaded.Dict.WordsFile)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ranker]\nworkers = 3\n"), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Ranker.Workers)
	// untouched sections keep their defaults
	assert.Equal(t, 10, c.Ranker.ShowCount)
	assert.Equal(t, "targets.txt", c.Dict.TargetsFile)
}

func TestLoadConfigBadFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml {{{"), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	c, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
	assert.FileExists(t, path)

	// second call reads the file it just wrote
	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}
