package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateDir_RespectsXDGStateHome(t *testing.T) {
	state := t.TempDir()
	t.Setenv(EnvStateHome, state)

	assert.Equal(t, filepath.Join(state, "dottie"), StateDir())
	assert.Equal(t, filepath.Join(state, "dottie", "dottie.log"), LogFilePath())
}

func TestStateDir_DefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvStateHome, "")

	assert.Equal(t, filepath.Join(home, ".local", "state", "dottie"), StateDir())
}

func TestConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	assert.Equal(t, dir, ConfigDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), UserConfigPath())
}

func TestFindRepoRoot(t *testing.T) {
	t.Run("explicit_wins", func(t *testing.T) {
		explicit := t.TempDir()
		t.Setenv(EnvRepoRoot, t.TempDir())

		root, fallback, err := FindRepoRoot(explicit)
		require.NoError(t, err)
		assert.Equal(t, explicit, root)
		assert.False(t, fallback)
	})

	t.Run("env_used_when_no_flag", func(t *testing.T) {
		envRoot := t.TempDir()
		t.Setenv(EnvRepoRoot, envRoot)

		root, fallback, err := FindRepoRoot("")
		require.NoError(t, err)
		assert.Equal(t, envRoot, root)
		assert.False(t, fallback)
	})
}
