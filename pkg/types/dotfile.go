package types

import "fmt"

// DotfileEntry describes one file or directory to be linked.
// Source is relative to the repository root. Target may start with '~' and is
// expanded before any filesystem access.
type DotfileEntry struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// String returns a short "source -> target" form used in logs and messages.
func (e DotfileEntry) String() string {
	return fmt.Sprintf("%s -> %s", e.Source, e.Target)
}

// ResolvedProfile is a profile after inheritance has been flattened.
// Name and InheritanceChain are for display only; the linking core only
// reads Dotfiles.
type ResolvedProfile struct {
	Name string `json:"name"`

	// InheritanceChain lists the profiles that contributed entries, root
	// ancestor first and this profile last.
	InheritanceChain []string `json:"inheritanceChain"`

	Dotfiles []DotfileEntry `json:"dotfiles"`
}
