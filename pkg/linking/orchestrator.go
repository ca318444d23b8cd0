// Package linking runs a full link pass for a resolved profile.
//
// A run surveys every target first. When conflicts exist and force is off
// the run stops with a BlockedRun and the filesystem is left untouched.
// Otherwise every entry is processed: already linked entries are skipped,
// conflicts are backed up and then linked, safe entries are linked
// directly. Per-entry failures are recorded and never stop the batch.
package linking

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dottie/pkg/backup"
	"github.com/arthur-debert/dottie/pkg/conflicts"
	"github.com/arthur-debert/dottie/pkg/errors"
	"github.com/arthur-debert/dottie/pkg/logging"
	"github.com/arthur-debert/dottie/pkg/paths"
	"github.com/arthur-debert/dottie/pkg/symlink"
	"github.com/arthur-debert/dottie/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// MsgLinkFailed prefixes the failure message of a link that could not
	// be created.
	MsgLinkFailed = "failed to create symlink"

	// MsgBackupFailed prefixes the failure message of a conflict whose
	// backup failed.
	MsgBackupFailed = "backup failed"
)

// Detector surveys link targets.
type Detector interface {
	Detect(entries []types.DotfileEntry, repoRoot string) types.ConflictSurvey
}

// Backuper moves a conflicting path aside.
type Backuper interface {
	Backup(path string) types.BackupOutcome
}

// Linker creates symlinks.
type Linker interface {
	CreateLink(linkPath, targetPath string) symlink.LinkResult
}

// Orchestrator composes detection, backup and linking.
type Orchestrator struct {
	detector Detector
	backups  Backuper
	linker   Linker
	logger   zerolog.Logger
}

// NewOrchestrator wires the three collaborators together.
func NewOrchestrator(detector Detector, backups Backuper, linker Linker) *Orchestrator {
	return &Orchestrator{
		detector: detector,
		backups:  backups,
		linker:   linker,
		logger:   logging.GetLogger("linking"),
	}
}

// Options tunes the collaborators built by New.
type Options struct {
	// BackupTag names backups <path>.<tag>-backup-...; empty means the tool name.
	BackupTag string

	// DirMode is used for link parents created on demand; zero means
	// symlink.DefaultDirMode.
	DirMode fs.FileMode

	// Clock stamps backups; nil means the system clock.
	Clock backup.Clock
}

// New builds an Orchestrator whose collaborators all operate on fsys.
func New(fsys types.FS, opts Options) *Orchestrator {
	return NewOrchestrator(
		conflicts.NewDetector(fsys),
		backup.NewService(fsys, opts.Clock, opts.BackupTag),
		symlink.NewLinker(fsys, symlink.WithDirMode(opts.DirMode)),
	)
}

func checkInput(profile *types.ResolvedProfile, repoRoot string) error {
	if profile == nil {
		return errors.New(errors.ErrInvalidInput, "profile is required")
	}
	if strings.TrimSpace(repoRoot) == "" {
		return errors.New(errors.ErrInvalidInput, "repository root is required").
			WithDetail("profile", profile.Name)
	}
	// Link values are written as repoRoot/source; a relative root would
	// resolve against the link's own directory.
	if !filepath.IsAbs(repoRoot) {
		return errors.Newf(errors.ErrInvalidInput, "repository root must be absolute: %s", repoRoot).
			WithDetail("profile", profile.Name)
	}
	return nil
}

// Preview surveys the profile without touching the filesystem.
func (o *Orchestrator) Preview(profile *types.ResolvedProfile, repoRoot string) (types.ConflictSurvey, error) {
	if err := checkInput(profile, repoRoot); err != nil {
		return types.ConflictSurvey{}, err
	}
	return o.detector.Detect(profile.Dotfiles, repoRoot), nil
}

// ExecuteLink links every entry of profile into place. The only error
// returned is ErrInvalidInput for a nil profile or a blank or relative
// repoRoot; every
// filesystem problem is reported inside the result.
func (o *Orchestrator) ExecuteLink(profile *types.ResolvedProfile, repoRoot string, force bool) (types.LinkRunResult, error) {
	if err := checkInput(profile, repoRoot); err != nil {
		return nil, err
	}

	logger := o.logger.With().
		Str("profile", profile.Name).
		Str("repo", repoRoot).
		Bool("force", force).
		Logger()
	done := logging.LogOperationStart(logger, "link")
	defer done()

	survey := o.detector.Detect(profile.Dotfiles, repoRoot)
	if survey.HasConflicts() && !force {
		logger.Info().Int("conflicts", len(survey.Conflicts)).Msg("link blocked by conflicts")
		return &types.BlockedRun{Survey: survey}, nil
	}

	run := &types.CompletedRun{Backups: []types.BackupOutcome{}}

	for _, entry := range survey.AlreadyLinkedEntries {
		run.Batch.Add(types.NewSkippedOutcome(entry, paths.Expand(entry.Target)))
	}

	for _, conflict := range survey.Conflicts {
		run.Batch.Add(o.replace(conflict, repoRoot, run))
	}

	for _, entry := range survey.SafeEntries {
		target := paths.Expand(entry.Target)
		run.Batch.Add(o.link(entry, target, conflicts.SourcePath(repoRoot, entry), nil))
	}

	logger.Info().
		Int("linked", len(run.Batch.Successful)).
		Int("skipped", len(run.Batch.Skipped)).
		Int("failed", len(run.Batch.Failed)).
		Int("backups", len(run.Backups)).
		Msg("link run complete")

	return run, nil
}

// replace backs up a conflicting target and links in its place.
func (o *Orchestrator) replace(conflict types.Conflict, repoRoot string, run *types.CompletedRun) types.LinkOutcome {
	target := conflict.ExpandedTargetPath

	outcome := o.backups.Backup(target)
	run.Backups = append(run.Backups, outcome)
	if !outcome.Success {
		o.logger.Warn().
			Str("target", target).
			Str("error", outcome.ErrorMessage).
			Msg("backup failed, not linking")
		return types.NewFailureOutcome(conflict.Entry, target, MsgBackupFailed+": "+outcome.ErrorMessage)
	}

	return o.link(conflict.Entry, target, conflicts.SourcePath(repoRoot, conflict.Entry), &outcome)
}

func (o *Orchestrator) link(entry types.DotfileEntry, target, source string, backed *types.BackupOutcome) types.LinkOutcome {
	result := o.linker.CreateLink(target, source)
	if !result.OK {
		message := MsgLinkFailed
		if result.ErrorMessage != "" {
			message += ": " + result.ErrorMessage
		}
		return types.NewFailureOutcome(entry, target, message)
	}
	return types.NewSuccessOutcome(entry, target, source, backed)
}
