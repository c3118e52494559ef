package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from the yaml file", func(t *testing.T) {
		// Given: a config file selecting connect4
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nlog-format: text\ngame: connect4\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: every field comes from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "text", conf.LogFormat)
		assert.Equal(t, "connect4", conf.Game)
	})

	t.Run("Falls back to defaults when the file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading it
		conf, err := Load(path)

		// Then: the env-default values are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "json", conf.LogFormat)
		assert.Equal(t, "tictactoe", conf.Game)
	})

	t.Run("Environment overrides the default game", func(t *testing.T) {
		// Given: GAME set in the environment and no config file
		t.Setenv("GAME", "connect4")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading config
		conf, err := Load(path)

		// Then: the environment value wins
		require.NoError(t, err)
		assert.Equal(t, "connect4", conf.Game)
	})
}

func TestMustLoad(t *testing.T) {
	// Given: a file that is not valid yaml
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("game: [connect4"), 0o600))

	// Then: MustLoad panics
	assert.Panics(t, func() { MustLoad(path) })
}
