// Package constants provides shared constants used across the dottie codebase.
// This package has no dependencies to avoid circular imports.
package constants

const (
	// ToolName names the tool in backup suffixes, config files and XDG dirs.
	ToolName = "dottie"

	// EnvPrefix is the prefix for configuration environment variables.
	EnvPrefix = "DOTTIE_"

	// ProfileFile is the default name of the profile definition file.
	ProfileFile = "dottie.yaml"

	// DefaultProfile is used when no profile is named on the command line.
	DefaultProfile = "default"

	// BackupTimeLayout is the timestamp layout embedded in backup names
	// (YYYYMMDD-HHMMSS, UTC).
	BackupTimeLayout = "20060102-150405"
)

// RootConfigFiles are looked up in the repository root, first match wins.
var RootConfigFiles = []string{".dottie.toml", "dottie.toml"}
