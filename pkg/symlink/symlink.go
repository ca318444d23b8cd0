package symlink

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dottie/pkg/logging"
	"github.com/arthur-debert/dottie/pkg/paths"
	"github.com/arthur-debert/dottie/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultDirMode is used for link parent directories created on demand.
const DefaultDirMode fs.FileMode = 0755

// LinkResult is the outcome of CreateLink.
type LinkResult struct {
	OK           bool
	ErrorMessage string
}

func failed(message string) LinkResult {
	return LinkResult{ErrorMessage: message}
}

// Linker creates and verifies symlinks through a types.FS.
type Linker struct {
	fs      types.FS
	dirMode fs.FileMode
	logger  zerolog.Logger
}

// Option configures a Linker.
type Option func(*Linker)

// WithDirMode sets the permissions for parent directories created by CreateLink.
func WithDirMode(mode fs.FileMode) Option {
	return func(l *Linker) {
		if mode != 0 {
			l.dirMode = mode
		}
	}
}

// NewLinker returns a Linker operating on fsys.
func NewLinker(fsys types.FS, opts ...Option) *Linker {
	l := &Linker{
		fs:      fsys,
		dirMode: DefaultDirMode,
		logger:  logging.GetLogger("symlink"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateLink creates a symlink at linkPath whose value is targetPath,
// creating missing parent directories first. Expected failures (permission
// denied, I/O errors) are reported in the result, never panicked or returned
// as errors.
func (l *Linker) CreateLink(linkPath, targetPath string) LinkResult {
	logger := l.logger.With().Str("link", linkPath).Str("target", targetPath).Logger()

	parent := filepath.Dir(linkPath)
	if err := l.fs.MkdirAll(parent, l.dirMode); err != nil {
		logger.Error().Err(err).Str("parent", parent).Msg("failed to create link parent directory")
		return failed(err.Error())
	}

	// Windows distinguishes file and directory symlinks; os.Symlink picks the
	// kind from the target, so the stat only feeds the log here.
	isDir := false
	if info, err := l.fs.Stat(targetPath); err == nil {
		isDir = info.IsDir()
	} else if !os.IsNotExist(err) {
		logger.Debug().Err(err).Msg("could not stat link target")
	}

	if err := l.fs.Symlink(targetPath, linkPath); err != nil {
		logger.Error().Err(err).Bool("dir", isDir).Msg("failed to create symlink")
		return failed(describeSymlinkError(err))
	}

	logger.Debug().Bool("dir", isDir).Msg("created symlink")
	return LinkResult{OK: true}
}

// IsCorrectLink reports whether linkPath is a symlink whose value, resolved
// relative to its parent directory and canonicalized, equals the canonical
// form of expectedTarget.
func (l *Linker) IsCorrectLink(linkPath, expectedTarget string) bool {
	info, err := l.fs.Lstat(linkPath)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	value, err := l.fs.Readlink(linkPath)
	if err != nil {
		return false
	}

	return paths.ResolveLinkValue(linkPath, value) == paths.Canonicalize(expectedTarget)
}
