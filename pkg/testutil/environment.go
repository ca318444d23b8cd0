// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Isolated home + repository directories for linking tests

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dottie/pkg/filesystem"
	"github.com/arthur-debert/dottie/pkg/types"
)

// TestEnvironment is a temp directory holding a fake home and a dotfiles
// repository, with $HOME pointed at the fake home.
type TestEnvironment struct {
	RepoRoot string
	HomeDir  string
	StateDir string
	FS       types.FS

	t *testing.T
}

// NewTestEnvironment creates the directories and sets HOME, XDG_STATE_HOME
// and DOTTIE_ROOT for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	base := t.TempDir()
	env := &TestEnvironment{
		RepoRoot: CreateDir(t, base, "dotfiles"),
		HomeDir:  CreateDir(t, base, "home"),
		StateDir: CreateDir(t, base, "state"),
		FS:       filesystem.NewOS(),
		t:        t,
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("USERPROFILE", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("DOTTIE_ROOT", env.RepoRoot)
	t.Setenv("DOTTIE_CONFIG_DIR", filepath.Join(base, "config"))

	return env
}

// RepoFile creates a file in the repository and returns its absolute path.
func (e *TestEnvironment) RepoFile(rel, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.RepoRoot, rel, content)
}

// HomeFile creates a file under the fake home and returns its absolute path.
func (e *TestEnvironment) HomeFile(rel, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.HomeDir, rel, content)
}

// HomePath returns the absolute path of rel under the fake home.
func (e *TestEnvironment) HomePath(rel string) string {
	return filepath.Join(e.HomeDir, rel)
}

// RepoPath returns the absolute path of rel under the repository.
func (e *TestEnvironment) RepoPath(rel string) string {
	return filepath.Join(e.RepoRoot, rel)
}

// Profile builds a resolved profile from source/target pairs.
func Profile(name string, pairs ...string) *types.ResolvedProfile {
	if len(pairs)%2 != 0 {
		panic("testutil.Profile: pairs must be source,target")
	}
	profile := &types.ResolvedProfile{Name: name, InheritanceChain: []string{name}}
	for i := 0; i < len(pairs); i += 2 {
		profile.Dotfiles = append(profile.Dotfiles, types.DotfileEntry{Source: pairs[i], Target: pairs[i+1]})
	}
	return profile
}
