package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/dottie/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// isolate points the user config dir at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DOTTIE_CONFIG_DIR", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "dottie", cfg.Backup.Tag)
	assert.Equal(t, fs.FileMode(0755), cfg.Link.DirMode)
	assert.Equal(t, "default", cfg.Profile.Default)
	assert.Equal(t, "dottie.yaml", cfg.Profile.File)
	assert.Equal(t, FormatTerminal, cfg.Output.Format)
	assert.False(t, cfg.Output.NoColor)
	assert.True(t, cfg.Logging.File)
	assert.Empty(t, cfg.Sources)

	assert.Equal(t, cfg, Default())
}

func TestLoad_Layering(t *testing.T) {
	userDir := isolate(t)
	repo := t.TempDir()

	userFile := writeFile(t, filepath.Join(userDir, "config.toml"), `
[backup]
tag = "user"

[output]
format = "json"
`)
	repoFile := writeFile(t, filepath.Join(repo, ".dottie.toml"), `
[backup]
tag = "repo"

[link]
dir_mode = "0700"
`)

	cfg, err := Load(repo)
	require.NoError(t, err)

	assert.Equal(t, "repo", cfg.Backup.Tag, "repo file overrides user file")
	assert.Equal(t, FormatJSON, cfg.Output.Format, "user value kept when repo is silent")
	assert.Equal(t, fs.FileMode(0700), cfg.Link.DirMode)
	assert.Equal(t, []string{userFile, repoFile}, cfg.Sources)

	t.Setenv("DOTTIE_BACKUP_TAG", "env")
	t.Setenv("DOTTIE_OUTPUT_NO_COLOR", "true")
	t.Setenv("DOTTIE_LINK_DIR_MODE", "750")

	cfg, err = Load(repo)
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.Backup.Tag)
	assert.True(t, cfg.Output.NoColor)
	assert.Equal(t, fs.FileMode(0750), cfg.Link.DirMode)
}

func TestLoad_RepoFileNames(t *testing.T) {
	isolate(t)

	t.Run("hidden_file_wins", func(t *testing.T) {
		repo := t.TempDir()
		writeFile(t, filepath.Join(repo, ".dottie.toml"), "[backup]\ntag = \"hidden\"\n")
		writeFile(t, filepath.Join(repo, "dottie.toml"), "[backup]\ntag = \"plain\"\n")

		cfg, err := Load(repo)
		require.NoError(t, err)
		assert.Equal(t, "hidden", cfg.Backup.Tag)
	})

	t.Run("plain_file", func(t *testing.T) {
		repo := t.TempDir()
		writeFile(t, filepath.Join(repo, "dottie.toml"), "[profile]\ndefault = \"laptop\"\n")

		cfg, err := Load(repo)
		require.NoError(t, err)
		assert.Equal(t, "laptop", cfg.Profile.Default)
	})

	t.Run("no_repo", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Empty(t, cfg.Sources)
	})
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{name: "bad_toml", content: "[backup\ntag=", code: errors.ErrConfigParse},
		{name: "bad_mode_string", content: "[link]\ndir_mode = \"rwx\"\n", code: errors.ErrConfigParse},
		{name: "mode_out_of_range", content: "[link]\ndir_mode = 4095\n", code: errors.ErrConfigValid},
		{name: "empty_tag", content: "[backup]\ntag = \"\"\n", code: errors.ErrConfigValid},
		{name: "tag_with_separator", content: "[backup]\ntag = \"a/b\"\n", code: errors.ErrConfigValid},
		{name: "unknown_format", content: "[output]\nformat = \"xml\"\n", code: errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := t.TempDir()
			writeFile(t, filepath.Join(repo, "dottie.toml"), tt.content)

			_, err := Load(repo)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), err.Error())
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Backup.Tag = "mine"
	cfg.Link.DirMode = 0700
	cfg.Output.NoColor = true

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dir_mode = '0700'")

	repo := t.TempDir()
	writeFile(t, filepath.Join(repo, "dottie.toml"), string(data))

	loaded, err := Load(repo)
	require.NoError(t, err)
	assert.Equal(t, "mine", loaded.Backup.Tag)
	assert.Equal(t, fs.FileMode(0700), loaded.Link.DirMode)
	assert.True(t, loaded.Output.NoColor)
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := GenerateConfigContent()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "# dottie configuration"))
	assert.Contains(t, content, "[backup]")
	assert.Contains(t, content, "# tag = 'dottie'")

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line %q should be commented", line)
	}
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# header\n[link]\ndir_mode = '0755'\n\n"
	assert.Equal(t, "# header\n[link]\n# dir_mode = '0755'\n\n", commentOutConfigValues(in))
}
