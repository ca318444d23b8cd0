// Package testutil provides utilities for testing dottie components.
//
// Key components:
//   - File helpers (CreateFile, CreateDir, CreateSymlink) on real temp dirs
//   - Environment (NewEnvironment): an isolated home directory and repository
//     root wired through $HOME
//   - Snapshot: a fingerprint of a directory tree for no-mutation assertions
//   - MockFS: a testify mock of types.FS for injecting I/O failures
//
// Usage guidelines:
//   - Prefer real temp directories; symlink semantics are the thing under test
//   - Use MockFS only for failure paths that a real filesystem cannot
//     reproduce reliably (permission errors when running as root, EIO)
//   - Each test should be completely isolated with no shared state
package testutil
