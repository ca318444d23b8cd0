package symlink

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dottie/pkg/filesystem"
	"github.com/arthur-debert/dottie/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateLink(t *testing.T) {
	tmp := t.TempDir()
	linker := NewLinker(filesystem.NewOS())

	t.Run("file_target_with_missing_parents", func(t *testing.T) {
		source := testutil.CreateFile(t, tmp, "repo/gitconfig", "[user]")
		link := filepath.Join(tmp, "home", "a", "b", ".gitconfig")

		result := linker.CreateLink(link, source)

		require.True(t, result.OK, result.ErrorMessage)
		assert.Empty(t, result.ErrorMessage)
		testutil.AssertSymlink(t, link, source)
		assert.Equal(t, "[user]", testutil.ReadFile(t, link))
	})

	t.Run("directory_target", func(t *testing.T) {
		source := testutil.CreateDir(t, tmp, "repo/nvim")
		testutil.CreateFile(t, source, "init.lua", "-- init")
		link := filepath.Join(tmp, "home", ".config", "nvim")

		result := linker.CreateLink(link, source)

		require.True(t, result.OK, result.ErrorMessage)
		assert.Equal(t, "-- init", testutil.ReadFile(t, filepath.Join(link, "init.lua")))
	})

	t.Run("existing_path_fails_softly", func(t *testing.T) {
		source := testutil.CreateFile(t, tmp, "repo/zshrc", "z")
		link := testutil.CreateFile(t, tmp, "home/.zshrc", "existing")

		result := linker.CreateLink(link, source)

		assert.False(t, result.OK)
		assert.NotEmpty(t, result.ErrorMessage)
		assert.Equal(t, "existing", testutil.ReadFile(t, link))
	})

	t.Run("dangling_target_still_links", func(t *testing.T) {
		link := filepath.Join(tmp, "home", ".missing")
		result := linker.CreateLink(link, filepath.Join(tmp, "repo", "missing"))

		require.True(t, result.OK, result.ErrorMessage)
		assert.True(t, testutil.SymlinkExists(t, link))
	})
}

func TestCreateLink_UnwritableParent(t *testing.T) {
	testutil.SkipOnWindows(t)
	testutil.RequireNonRoot(t)

	tmp := t.TempDir()
	source := testutil.CreateFile(t, tmp, "repo/bashrc", "b")
	locked := testutil.CreateDir(t, tmp, "locked")
	require.NoError(t, os.Chmod(locked, 0555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	result := NewLinker(filesystem.NewOS()).CreateLink(filepath.Join(locked, ".bashrc"), source)

	assert.False(t, result.OK)
	assert.Contains(t, result.ErrorMessage, "permission denied")
}

func TestCreateLink_MockFailures(t *testing.T) {
	t.Run("mkdir_failure", func(t *testing.T) {
		fsys := new(testutil.MockFS)
		fsys.On("MkdirAll", "/home/u/.config", DefaultDirMode).Return(errors.New("read-only file system"))

		result := NewLinker(fsys).CreateLink("/home/u/.config/app", "/repo/app")

		assert.False(t, result.OK)
		assert.Equal(t, "read-only file system", result.ErrorMessage)
		fsys.AssertNotCalled(t, "Symlink", mock.Anything, mock.Anything)
	})

	t.Run("symlink_permission_denied", func(t *testing.T) {
		fsys := new(testutil.MockFS)
		fsys.On("MkdirAll", "/home/u", os.FileMode(0700)).Return(nil)
		fsys.On("Stat", "/repo/bashrc").Return(testutil.FakeFileInfo{FileName: "bashrc"}, nil)
		fsys.On("Symlink", "/repo/bashrc", "/home/u/.bashrc").
			Return(&os.LinkError{Op: "symlink", Old: "/repo/bashrc", New: "/home/u/.bashrc", Err: os.ErrPermission})

		result := NewLinker(fsys, WithDirMode(0700)).CreateLink("/home/u/.bashrc", "/repo/bashrc")

		assert.False(t, result.OK)
		assert.Contains(t, result.ErrorMessage, "permission denied")
		fsys.AssertExpectations(t)
	})
}

func TestIsCorrectLink(t *testing.T) {
	tmp := t.TempDir()
	linker := NewLinker(filesystem.NewOS())
	source := testutil.CreateFile(t, tmp, "repo/bashrc", "b")
	other := testutil.CreateFile(t, tmp, "repo/other", "o")

	absolute := filepath.Join(tmp, "home", ".bashrc")
	testutil.CreateSymlink(t, source, absolute)

	relative := filepath.Join(tmp, "home", ".bashrc-rel")
	testutil.CreateSymlink(t, filepath.Join("..", "repo", "bashrc"), relative)

	unclean := filepath.Join(tmp, "home", ".bashrc-unclean")
	testutil.CreateSymlink(t, tmp+"/repo/./x/../bashrc", unclean)

	regular := testutil.CreateFile(t, tmp, "home/.regular", "r")

	tests := []struct {
		name     string
		link     string
		expected string
		want     bool
	}{
		{name: "absolute_match", link: absolute, expected: source, want: true},
		{name: "relative_match", link: relative, expected: source, want: true},
		{name: "unclean_value_match", link: unclean, expected: source, want: true},
		{name: "expected_unclean", link: absolute, expected: tmp + "/repo/../repo/bashrc", want: true},
		{name: "wrong_target", link: absolute, expected: other, want: false},
		{name: "regular_file", link: regular, expected: source, want: false},
		{name: "missing", link: filepath.Join(tmp, "home", ".nothing"), expected: source, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, linker.IsCorrectLink(tt.link, tt.expected))
		})
	}
}

func TestCreateLink_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	linker := NewLinker(filesystem.NewOS())
	source := testutil.CreateFile(t, tmp, "repo/vimrc", "set nu")
	link := filepath.Join(tmp, "home", ".vimrc")

	require.True(t, linker.CreateLink(link, source).OK)
	assert.True(t, linker.IsCorrectLink(link, source))
}
