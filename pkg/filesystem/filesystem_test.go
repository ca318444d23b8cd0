package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dottie/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseSymlinkFS runs the operations the linking core relies on.
func exerciseSymlinkFS(t *testing.T, fsys types.FS) {
	t.Helper()
	tmpDir := t.TempDir()

	source := filepath.Join(tmpDir, "repo", "bashrc")
	require.NoError(t, fsys.MkdirAll(filepath.Dir(source), 0755))
	require.NoError(t, os.WriteFile(source, []byte("export A=1"), 0644))

	link := filepath.Join(tmpDir, "home", ".bashrc")
	require.NoError(t, fsys.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, fsys.Symlink(source, link))

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	info, err = fsys.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	value, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, source, value)

	moved := link + ".moved"
	require.NoError(t, fsys.Rename(link, moved))
	_, err = fsys.Lstat(link)
	assert.True(t, os.IsNotExist(err))

	info, err = fsys.Lstat(moved)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "rename must keep the symlink a symlink")
}

func TestNewOS(t *testing.T) {
	exerciseSymlinkFS(t, NewOS())
}

func TestNewAferoFS_OsFs(t *testing.T) {
	exerciseSymlinkFS(t, NewAferoFS(afero.NewOsFs()))
}

func TestNewAferoFS_MemMapFsWithoutSymlinks(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/home/u", 0755))

	err := fsys.Symlink("/repo/bashrc", "/home/u/.bashrc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, afero.ErrNoSymlink))

	_, err = fsys.Readlink("/home/u/.bashrc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, afero.ErrNoReadlink))

	// Lstat falls back to Stat
	info, err := fsys.Lstat("/home/u")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
