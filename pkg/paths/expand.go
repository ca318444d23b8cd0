package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dottie/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// HomeDir returns the user's home directory, falling back to $HOME when the
// platform lookup fails.
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// Expand returns the absolute form of path.
//
//   - "~" becomes the home directory.
//   - "~/rest" becomes home joined with rest, with any extra leading
//     separators on rest dropped.
//   - Anything else is made absolute against the working directory.
//
// Expand never fails. If the home directory is unknown a "~" path is only
// cleaned, and if the working directory is unknown the path is only cleaned.
func Expand(path string) string {
	if path == "~" || hasHomePrefix(path) {
		home, err := HomeDir()
		if err != nil {
			return filepath.Clean(path)
		}
		if path == "~" {
			return Canonicalize(home)
		}
		rest := strings.TrimLeft(path[2:], `/\`)
		return Canonicalize(filepath.Join(home, rest))
	}
	return Canonicalize(path)
}

// Canonicalize returns the cleaned absolute form of path. Symlinks are not
// resolved: two spellings of the same path compare equal, but a link and its
// destination do not.
func Canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// ResolveLinkValue turns a raw symlink value into the canonical path it
// refers to. Relative values are resolved against the directory holding the
// link.
func ResolveLinkValue(linkPath, value string) string {
	if !filepath.IsAbs(value) {
		value = filepath.Join(filepath.Dir(linkPath), value)
	}
	return Canonicalize(value)
}

// hasHomePrefix matches "~/" and, on Windows, "~\".
func hasHomePrefix(path string) bool {
	if len(path) < 2 || path[0] != '~' {
		return false
	}
	return path[1] == '/' || path[1] == filepath.Separator
}
