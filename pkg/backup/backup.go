// Package backup moves conflicting paths aside before a forced link.
//
// A backup is a sibling of the original named
//
//	<original>.<tag>-backup-YYYYMMDD-HHMMSS[.N]
//
// where the timestamp is UTC with second resolution and N is the first
// positive integer that makes the name free. An existing backup is never
// overwritten.
package backup

import (
	"fmt"
	"os"
	"time"

	"github.com/arthur-debert/dottie/pkg/constants"
	"github.com/arthur-debert/dottie/pkg/logging"
	"github.com/arthur-debert/dottie/pkg/types"
	"github.com/rs/zerolog"
)

// MsgPathDoesNotExist is the failure message when there is nothing to back up.
const MsgPathDoesNotExist = "path does not exist"

// Service performs backups through a types.FS.
type Service struct {
	fs     types.FS
	clock  Clock
	tag    string
	logger zerolog.Logger
}

// NewService returns a backup service. An empty tag means constants.ToolName;
// a nil clock means SystemClock.
func NewService(fsys types.FS, clock Clock, tag string) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	if tag == "" {
		tag = constants.ToolName
	}
	return &Service{
		fs:     fsys,
		clock:  clock,
		tag:    tag,
		logger: logging.GetLogger("backup"),
	}
}

// BaseName returns the unsuffixed backup path for path at instant now.
func (s *Service) BaseName(path string, now time.Time) string {
	return fmt.Sprintf("%s.%s-backup-%s", path, s.tag, now.UTC().Format(constants.BackupTimeLayout))
}

// Backup moves the entry at path to a fresh backup path. Symlinks are moved
// as symlinks, never followed. Failures are reported in the outcome; a
// partially completed move is not rolled back.
func (s *Service) Backup(path string) types.BackupOutcome {
	now := s.clock.Now().UTC()
	outcome := types.BackupOutcome{OriginalPath: path, Timestamp: now}
	logger := s.logger.With().Str("path", path).Logger()

	info, err := s.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			outcome.ErrorMessage = MsgPathDoesNotExist
		} else {
			outcome.ErrorMessage = err.Error()
		}
		logger.Warn().Err(err).Msg("nothing to back up")
		return outcome
	}

	backupPath, err := s.freePath(s.BaseName(path, now))
	if err != nil {
		outcome.ErrorMessage = err.Error()
		logger.Error().Err(err).Msg("could not choose a backup path")
		return outcome
	}

	// Siblings share a filesystem; rename handles files, symlinks and directories.
	if err := s.fs.Rename(path, backupPath); err != nil {
		outcome.ErrorMessage = err.Error()
		logger.Error().Err(err).Str("backup", backupPath).Msg("backup move failed")
		return outcome
	}

	logger.Info().
		Str("backup", backupPath).
		Bool("dir", info.IsDir()).
		Bool("symlink", info.Mode()&os.ModeSymlink != 0).
		Msg("backed up")

	outcome.Success = true
	outcome.BackupPath = backupPath
	return outcome
}

// freePath returns base if nothing is there, else base.1, base.2, ...
func (s *Service) freePath(base string) (string, error) {
	candidate := base
	for n := 1; ; n++ {
		_, err := s.fs.Lstat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s.%d", base, n)
	}
}
