// Package conflicts classifies the link targets of a profile against the
// current filesystem state.
//
// Each entry lands in exactly one bucket of the returned survey: safe
// (nothing at the target), already linked (a symlink to the expected
// source) or conflicting. Detection only reads: it calls Lstat and Readlink
// and never changes the filesystem.
package conflicts

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dottie/pkg/logging"
	"github.com/arthur-debert/dottie/pkg/paths"
	"github.com/arthur-debert/dottie/pkg/types"
	"github.com/rs/zerolog"
)

// Detector builds conflict surveys.
type Detector struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewDetector returns a Detector probing through fsys.
func NewDetector(fsys types.FS) *Detector {
	return &Detector{
		fs:     fsys,
		logger: logging.GetLogger("conflicts"),
	}
}

// SourcePath returns the link value written for entry: the repository root
// joined with the entry source.
func SourcePath(repoRoot string, entry types.DotfileEntry) string {
	return filepath.Join(repoRoot, entry.Source)
}

// Detect classifies every entry. Buckets preserve input order.
func (d *Detector) Detect(entries []types.DotfileEntry, repoRoot string) types.ConflictSurvey {
	done := logging.LogOperationStart(d.logger, "detect")
	defer done()

	survey := types.ConflictSurvey{
		Conflicts:            []types.Conflict{},
		SafeEntries:          []types.DotfileEntry{},
		AlreadyLinkedEntries: []types.DotfileEntry{},
	}

	for _, entry := range entries {
		target := paths.Expand(entry.Target)
		source := paths.Canonicalize(SourcePath(repoRoot, entry))

		conflict, state := d.classify(entry, target, source)
		switch state {
		case stateSafe:
			survey.SafeEntries = append(survey.SafeEntries, entry)
		case stateLinked:
			survey.AlreadyLinkedEntries = append(survey.AlreadyLinkedEntries, entry)
		case stateConflict:
			survey.Conflicts = append(survey.Conflicts, conflict)
		}

		d.logger.Trace().
			Str("source", source).
			Str("target", target).
			Str("state", state.String()).
			Msg("classified entry")
	}

	d.logger.Debug().
		Int("entries", len(entries)).
		Int("conflicts", len(survey.Conflicts)).
		Int("safe", len(survey.SafeEntries)).
		Int("linked", len(survey.AlreadyLinkedEntries)).
		Msg("conflict survey complete")

	return survey
}

type entryState int

const (
	stateSafe entryState = iota
	stateLinked
	stateConflict
)

func (s entryState) String() string {
	switch s {
	case stateSafe:
		return "safe"
	case stateLinked:
		return "linked"
	default:
		return "conflict"
	}
}

func (d *Detector) classify(entry types.DotfileEntry, target, source string) (types.Conflict, entryState) {
	conflict := types.Conflict{Entry: entry, ExpandedTargetPath: target}

	info, err := d.fs.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return conflict, stateSafe
		}
		conflict.Kind = types.ConflictUnreadable
		conflict.ProbeError = err.Error()
		d.logger.Warn().Err(err).Str("target", target).Msg("could not probe link target")
		return conflict, stateConflict
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		value, err := d.fs.Readlink(target)
		if err != nil {
			conflict.Kind = types.ConflictUnreadable
			conflict.ProbeError = err.Error()
			return conflict, stateConflict
		}
		if paths.ResolveLinkValue(target, value) == source {
			return conflict, stateLinked
		}
		conflict.Kind = types.ConflictMismatchedSymlink
		conflict.ExistingSymlinkTarget = value
	case info.IsDir():
		conflict.Kind = types.ConflictDirectory
	default:
		conflict.Kind = types.ConflictRegularFile
	}
	return conflict, stateConflict
}
