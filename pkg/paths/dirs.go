package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dottie/pkg/constants"
	"github.com/arthur-debert/dottie/pkg/errors"
)

// Environment variable names
const (
	// EnvRepoRoot points at the dotfiles repository when --repo is not given
	EnvRepoRoot = "DOTTIE_ROOT"

	// EnvConfigDir overrides the XDG config directory for dottie
	EnvConfigDir = "DOTTIE_CONFIG_DIR"

	// EnvStateHome is the XDG state base directory
	EnvStateHome = "XDG_STATE_HOME"
)

// LogFileName is the name of the log file inside the state directory
const LogFileName = "dottie.log"

// UserConfigFile is the user-level config file inside ConfigDir
const UserConfigFile = "config.toml"

// ConfigDir returns the user configuration directory for dottie.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return Expand(dir)
	}
	return filepath.Join(xdg.ConfigHome, constants.ToolName)
}

// UserConfigPath returns the path of the user-level config file.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// StateDir returns the state directory for dottie.
// XDG_STATE_HOME is read directly so tests can redirect it with t.Setenv.
func StateDir() string {
	if stateHome := os.Getenv(EnvStateHome); stateHome != "" {
		return filepath.Join(stateHome, constants.ToolName)
	}
	home, err := HomeDir()
	if err != nil {
		return filepath.Join(xdg.StateHome, constants.ToolName)
	}
	return filepath.Join(home, ".local", "state", constants.ToolName)
}

// LogFilePath returns the path to the dottie log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// FindRepoRoot determines the repository root using the following priority:
//  1. explicit (the --repo flag), if non-empty
//  2. DOTTIE_ROOT environment variable
//  3. Git repository root of the working directory
//  4. Current working directory
//
// The returned bool reports whether the working-directory fallback was used.
func FindRepoRoot(explicit string) (string, bool, error) {
	if explicit != "" {
		return Expand(explicit), false, nil
	}

	if root := os.Getenv(EnvRepoRoot); root != "" {
		return Expand(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}
