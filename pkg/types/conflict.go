package types

import "fmt"

// ConflictKind classifies what currently occupies a link target.
type ConflictKind int

const (
	// ConflictNone means the target does not exist, or is already a symlink
	// to the expected source.
	ConflictNone ConflictKind = iota

	// ConflictRegularFile means a regular file (or other non-directory,
	// non-symlink entry) exists at the target.
	ConflictRegularFile

	// ConflictDirectory means a real directory exists at the target.
	ConflictDirectory

	// ConflictMismatchedSymlink means a symlink exists at the target but
	// points somewhere other than the expected source.
	ConflictMismatchedSymlink

	// ConflictUnreadable means the target could not be probed (permission
	// denied, I/O error). It is reported as a conflict so that an unknown
	// state is never mistaken for a safe one.
	ConflictUnreadable
)

// String returns the stable name of the kind.
func (k ConflictKind) String() string {
	switch k {
	case ConflictNone:
		return "none"
	case ConflictRegularFile:
		return "file"
	case ConflictDirectory:
		return "directory"
	case ConflictMismatchedSymlink:
		return "symlink"
	case ConflictUnreadable:
		return "unreadable"
	default:
		panic(fmt.Sprintf("types: unknown ConflictKind %d", int(k)))
	}
}

// MarshalText makes the kind render by name in JSON output.
func (k ConflictKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Conflict is a target whose current state prevents a direct link.
type Conflict struct {
	Entry              DotfileEntry `json:"entry"`
	ExpandedTargetPath string       `json:"expandedTargetPath"`
	Kind               ConflictKind `json:"kind"`

	// ExistingSymlinkTarget is the raw link value, only for
	// ConflictMismatchedSymlink.
	ExistingSymlinkTarget string `json:"existingSymlinkTarget,omitempty"`

	// ProbeError is the probe failure text, only for ConflictUnreadable.
	ProbeError string `json:"probeError,omitempty"`
}

// ConflictSurvey is the result of one detection pass. Every input entry
// appears in exactly one of the three buckets, in input order.
type ConflictSurvey struct {
	Conflicts            []Conflict     `json:"conflicts"`
	SafeEntries          []DotfileEntry `json:"safeEntries"`
	AlreadyLinkedEntries []DotfileEntry `json:"alreadyLinkedEntries"`
}

// HasConflicts reports whether any entry is in the conflict bucket.
func (s ConflictSurvey) HasConflicts() bool {
	return len(s.Conflicts) > 0
}

// Total returns the number of entries the survey classified.
func (s ConflictSurvey) Total() int {
	return len(s.Conflicts) + len(s.SafeEntries) + len(s.AlreadyLinkedEntries)
}
