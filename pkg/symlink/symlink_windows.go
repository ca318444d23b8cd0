//go:build windows

package symlink

import (
	"errors"
	"fmt"
	"syscall"
)

// errPrivilegeNotHeld is ERROR_PRIVILEGE_NOT_HELD, returned by
// CreateSymbolicLink when the caller lacks SeCreateSymbolicLinkPrivilege.
const errPrivilegeNotHeld = syscall.Errno(1314)

// describeSymlinkError adds remediation guidance when Windows refuses symlink creation for lack of privilege.
func describeSymlinkError(err error) string {
	if errors.Is(err, errPrivilegeNotHeld) || errors.Is(err, syscall.ERROR_ACCESS_DENIED) {
		return fmt.Sprintf("%v: creating symbolic links on Windows requires Developer Mode "+
			"(Settings > Privacy & security > For developers) or running from an elevated "+
			"(Administrator) terminal", err)
	}
	return err.Error()
}
