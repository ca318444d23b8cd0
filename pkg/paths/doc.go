// Package paths provides centralized path handling for dottie.
//
// It covers two concerns:
//
//   - Expansion of user-supplied link targets: a leading "~" is replaced with
//     the home directory and every other path is made absolute against the
//     current working directory (see Expand).
//   - Locations owned by the tool itself, following the XDG Base Directory
//     specification: the user config directory and the state directory that
//     holds the log file.
//
// # Environment Variables
//
//   - DOTTIE_ROOT: repository root used when --repo is not given
//   - DOTTIE_CONFIG_DIR: overrides $XDG_CONFIG_HOME/dottie
//   - XDG_STATE_HOME: base of the state directory (default ~/.local/state)
package paths
