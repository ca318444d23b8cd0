// Package types defines the core types and interfaces used throughout dottie.
// This includes the dotfile entry and resolved profile consumed by the linking
// core, the conflict survey produced by detection, and the per-entry and
// per-run results produced by the orchestrator.
//
// All values in this package are created fresh per invocation and treated as
// read-only once constructed.
package types
