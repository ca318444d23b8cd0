package conflicts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dottie/pkg/filesystem"
	"github.com/arthur-debert/dottie/pkg/testutil"
	"github.com/arthur-debert/dottie/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(source, target string) types.DotfileEntry {
	return types.DotfileEntry{Source: source, Target: target}
}

func TestDetect_Classification(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.RepoFile("bashrc", "b")
	env.RepoFile("vimrc", "v")
	env.RepoFile("gitconfig", "g")
	env.RepoFile("zshrc", "z")

	// already linked, absolute value
	testutil.CreateSymlink(t, env.RepoPath("vimrc"), env.HomePath(".vimrc"))
	// regular file
	env.HomeFile(".gitconfig", "local")
	// directory
	testutil.CreateDir(t, env.HomeDir, ".config/nvim")
	// mismatched symlink
	testutil.CreateSymlink(t, "/somewhere/else", env.HomePath(".zshrc"))

	entries := []types.DotfileEntry{
		entry("bashrc", "~/.bashrc"),
		entry("vimrc", "~/.vimrc"),
		entry("gitconfig", "~/.gitconfig"),
		entry("nvim", "~/.config/nvim"),
		entry("zshrc", "~/.zshrc"),
	}

	survey := NewDetector(filesystem.NewOS()).Detect(entries, env.RepoRoot)

	assert.Equal(t, []types.DotfileEntry{entries[0]}, survey.SafeEntries)
	assert.Equal(t, []types.DotfileEntry{entries[1]}, survey.AlreadyLinkedEntries)
	require.Len(t, survey.Conflicts, 3)

	assert.Equal(t, types.ConflictRegularFile, survey.Conflicts[0].Kind)
	assert.Equal(t, env.HomePath(".gitconfig"), survey.Conflicts[0].ExpandedTargetPath)
	assert.Empty(t, survey.Conflicts[0].ExistingSymlinkTarget)

	assert.Equal(t, types.ConflictDirectory, survey.Conflicts[1].Kind)
	assert.Equal(t, entries[3], survey.Conflicts[1].Entry)

	assert.Equal(t, types.ConflictMismatchedSymlink, survey.Conflicts[2].Kind)
	assert.Equal(t, "/somewhere/else", survey.Conflicts[2].ExistingSymlinkTarget)
}

func TestDetect_RelativeAndUncleanLinksCountAsLinked(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.RepoFile("bashrc", "b")
	env.RepoFile("tmux.conf", "t")

	rel, err := filepath.Rel(env.HomeDir, env.RepoPath("bashrc"))
	require.NoError(t, err)
	testutil.CreateSymlink(t, rel, env.HomePath(".bashrc"))
	testutil.CreateSymlink(t, env.RepoRoot+"/./sub/../tmux.conf", env.HomePath(".tmux.conf"))

	entries := []types.DotfileEntry{
		entry("bashrc", "~/.bashrc"),
		entry("./tmux.conf", "~/.tmux.conf"),
	}
	survey := NewDetector(filesystem.NewOS()).Detect(entries, env.RepoRoot)

	assert.Equal(t, entries, survey.AlreadyLinkedEntries)
	assert.Empty(t, survey.Conflicts)
}

func TestDetect_DanglingSymlinkToSourceIsLinked(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	// source not present in the repository yet
	testutil.CreateSymlink(t, env.RepoPath("later"), env.HomePath(".later"))

	survey := NewDetector(filesystem.NewOS()).Detect([]types.DotfileEntry{entry("later", "~/.later")}, env.RepoRoot)

	assert.Len(t, survey.AlreadyLinkedEntries, 1)
}

func TestDetect_PartitionInvariant(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	var entries []types.DotfileEntry
	for i := 0; i < 12; i++ {
		source := fmt.Sprintf("file%d", i)
		target := fmt.Sprintf("~/.file%d", i)
		env.RepoFile(source, source)
		switch i % 4 {
		case 1:
			env.HomeFile(fmt.Sprintf(".file%d", i), "x")
		case 2:
			testutil.CreateSymlink(t, env.RepoPath(source), env.HomePath(fmt.Sprintf(".file%d", i)))
		case 3:
			testutil.CreateDir(t, env.HomeDir, fmt.Sprintf(".file%d", i))
		}
		entries = append(entries, entry(source, target))
	}

	survey := NewDetector(filesystem.NewOS()).Detect(entries, env.RepoRoot)

	assert.Equal(t, len(entries), survey.Total())

	seen := map[types.DotfileEntry]int{}
	for _, e := range survey.SafeEntries {
		seen[e]++
	}
	for _, e := range survey.AlreadyLinkedEntries {
		seen[e]++
	}
	for _, c := range survey.Conflicts {
		seen[c.Entry]++
	}
	for _, e := range entries {
		assert.Equal(t, 1, seen[e], "entry %s must appear exactly once", e)
	}

	// order is preserved inside each bucket
	index := map[types.DotfileEntry]int{}
	for i, e := range entries {
		index[e] = i
	}
	for i := 1; i < len(survey.Conflicts); i++ {
		assert.Less(t, index[survey.Conflicts[i-1].Entry], index[survey.Conflicts[i].Entry])
	}
	for i := 1; i < len(survey.SafeEntries); i++ {
		assert.Less(t, index[survey.SafeEntries[i-1]], index[survey.SafeEntries[i]])
	}
	assert.Len(t, survey.Conflicts, 6)
	assert.Len(t, survey.SafeEntries, 3)
	assert.Len(t, survey.AlreadyLinkedEntries, 3)
}

func TestDetect_IsReadOnly(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.RepoFile("bashrc", "b")
	env.HomeFile(".bashrc", "mine")
	testutil.CreateSymlink(t, "/elsewhere", env.HomePath(".zshrc"))

	before := testutil.Snapshot(t, env.HomeDir)
	NewDetector(filesystem.NewOS()).Detect([]types.DotfileEntry{
		entry("bashrc", "~/.bashrc"),
		entry("zshrc", "~/.zshrc"),
		entry("new", "~/.config/new/file"),
	}, env.RepoRoot)

	assert.Equal(t, before, testutil.Snapshot(t, env.HomeDir))
}

func TestDetect_EmptyInput(t *testing.T) {
	survey := NewDetector(filesystem.NewOS()).Detect(nil, t.TempDir())

	assert.Equal(t, 0, survey.Total())
	assert.NotNil(t, survey.Conflicts)
	assert.False(t, survey.HasConflicts())
}

func TestDetect_ProbeErrorsBecomeUnreadableConflicts(t *testing.T) {
	t.Setenv("HOME", "/home/u")

	fsys := new(testutil.MockFS)
	fsys.On("Lstat", "/home/u/.bashrc").Return(nil, testutil.PermissionDenied("lstat", "/home/u/.bashrc"))
	fsys.On("Lstat", "/home/u/.vimrc").Return(testutil.FakeFileInfo{FileName: ".vimrc", FileMode: os.ModeSymlink}, nil)
	fsys.On("Readlink", "/home/u/.vimrc").Return("", errors.New("input/output error"))

	survey := NewDetector(fsys).Detect([]types.DotfileEntry{
		entry("bashrc", "~/.bashrc"),
		entry("vimrc", "~/.vimrc"),
	}, "/repo")

	require.Len(t, survey.Conflicts, 2)
	assert.Equal(t, types.ConflictUnreadable, survey.Conflicts[0].Kind)
	assert.Contains(t, survey.Conflicts[0].ProbeError, "permission denied")
	assert.Equal(t, types.ConflictUnreadable, survey.Conflicts[1].Kind)
	assert.Equal(t, "input/output error", survey.Conflicts[1].ProbeError)
	assert.Empty(t, survey.SafeEntries)
	fsys.AssertExpectations(t)
}

func TestSourcePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/repo", "shell", "bashrc"), SourcePath("/repo", entry("shell/bashrc", "~/.bashrc")))
}
