package dottie

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Link a dotfiles repository into your home directory"
	MsgLinkShort       = "Link the dotfiles of a profile"
	MsgStatusShort     = "Show which dotfiles are linked, missing or in conflict"
	MsgProfilesShort   = "List the profiles defined in the repository"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"
	MsgSourcesItem  = "# from %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrLinkBlocked = "link blocked by %d conflict(s), nothing was changed"
	MsgErrLinkFailed  = "%d of %d dotfile(s) could not be linked"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRepo    = "Dotfiles repository root (default: $DOTTIE_ROOT, the git top-level or the current directory)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagFormat  = "Output format: terminal, text or json (default from config)"
	MsgFlagProfile = "Profile to use (default from config, usually \"default\")"
	MsgFlagForce   = "Back up conflicting paths and link anyway"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagInit    = "Print a commented starter config file instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/profiles-long.txt
	msgProfilesLongRaw string
	MsgProfilesLong    = strings.TrimSpace(msgProfilesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw) + "\n"

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
