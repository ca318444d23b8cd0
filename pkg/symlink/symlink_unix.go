//go:build !windows

package symlink

// describeSymlinkError returns the text reported when os.Symlink fails.
// Unix systems need no special privilege for symlinks, so the underlying
// error is reported as is.
func describeSymlinkError(err error) string {
	return err.Error()
}
