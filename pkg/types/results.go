package types

import (
	"fmt"
	"time"
)

// BackupOutcome records one attempt to move a conflicting path aside.
// BackupPath is set iff Success; ErrorMessage is set iff !Success.
type BackupOutcome struct {
	OriginalPath string    `json:"originalPath"`
	Success      bool      `json:"success"`
	BackupPath   string    `json:"backupPath,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// LinkOutcomeKind is the per-entry result of a link run.
type LinkOutcomeKind int

const (
	// OutcomeSuccess means the symlink was created.
	OutcomeSuccess LinkOutcomeKind = iota
	// OutcomeSkipped means the target already linked to the source.
	OutcomeSkipped
	// OutcomeFailure means the backup or the link failed; see ErrorMessage.
	OutcomeFailure
)

// String returns the lowercase name of the kind. It panics on values
// outside the declared set.
func (k LinkOutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailure:
		return "failure"
	default:
		panic(fmt.Sprintf("types: unknown LinkOutcomeKind %d", int(k)))
	}
}

// MarshalText makes the kind render by name in JSON output.
func (k LinkOutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// LinkOutcome is the result for a single dotfile entry.
type LinkOutcome struct {
	Kind               LinkOutcomeKind `json:"kind"`
	Entry              DotfileEntry    `json:"entry"`
	ExpandedTargetPath string          `json:"expandedTargetPath"`

	// SourcePath is the link value written (or that would have been).
	SourcePath string `json:"sourcePath,omitempty"`

	// Backup is set on a Success that first moved a conflict aside.
	Backup *BackupOutcome `json:"backup,omitempty"`

	ErrorMessage string `json:"errorMessage,omitempty"`
}

// NewSuccessOutcome records a created link. backup may be nil.
func NewSuccessOutcome(entry DotfileEntry, target, source string, backup *BackupOutcome) LinkOutcome {
	return LinkOutcome{
		Kind:               OutcomeSuccess,
		Entry:              entry,
		ExpandedTargetPath: target,
		SourcePath:         source,
		Backup:             backup,
	}
}

// NewSkippedOutcome records an entry that was already linked.
func NewSkippedOutcome(entry DotfileEntry, target string) LinkOutcome {
	return LinkOutcome{
		Kind:               OutcomeSkipped,
		Entry:              entry,
		ExpandedTargetPath: target,
	}
}

// NewFailureOutcome records an entry whose backup or link failed.
func NewFailureOutcome(entry DotfileEntry, target, message string) LinkOutcome {
	return LinkOutcome{
		Kind:               OutcomeFailure,
		Entry:              entry,
		ExpandedTargetPath: target,
		ErrorMessage:       message,
	}
}

// LinkBatchResult groups per-entry outcomes of a completed run.
type LinkBatchResult struct {
	Successful []LinkOutcome `json:"successful"`
	Skipped    []LinkOutcome `json:"skipped"`
	Failed     []LinkOutcome `json:"failed"`
}

// Add files an outcome into the bucket matching its kind.
func (b *LinkBatchResult) Add(o LinkOutcome) {
	switch o.Kind {
	case OutcomeSuccess:
		b.Successful = append(b.Successful, o)
	case OutcomeSkipped:
		b.Skipped = append(b.Skipped, o)
	case OutcomeFailure:
		b.Failed = append(b.Failed, o)
	default:
		panic(fmt.Sprintf("types: unknown LinkOutcomeKind %d", int(o.Kind)))
	}
}

// IsSuccess is true when no entry failed.
func (b LinkBatchResult) IsSuccess() bool {
	return len(b.Failed) == 0
}

// LinkRunResult is the top-level result of a link run. It is either a
// *BlockedRun or a *CompletedRun; consumers should type-switch and treat
// any other value as a programming error.
type LinkRunResult interface {
	isLinkRunResult()
}

// BlockedRun is returned when conflicts exist and force was not requested.
// Nothing on disk was touched.
type BlockedRun struct {
	Survey ConflictSurvey `json:"survey"`
}

// CompletedRun is returned when every entry was processed.
type CompletedRun struct {
	Batch   LinkBatchResult `json:"batch"`
	Backups []BackupOutcome `json:"backups"`
}

func (*BlockedRun) isLinkRunResult()   {}
func (*CompletedRun) isLinkRunResult() {}
