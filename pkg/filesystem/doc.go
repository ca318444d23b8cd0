// Package filesystem provides filesystem implementations for dottie.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used in production, and an afero-backed adapter
// that lets callers plug in any afero.Fs that supports symlinks.
package filesystem
