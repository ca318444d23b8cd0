package dottie

import (
	"github.com/arthur-debert/dottie/pkg/errors"
)

// Exit statuses
const (
	ExitOK      = 0
	ExitError   = 1
	ExitBlocked = 2
)

// ExitCode maps a command error to the process exit status. A link run
// with failed entries exits 1 like any other error; a blocked run exits 2.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.IsErrorCode(err, errors.ErrLinkBlocked) {
		return ExitBlocked
	}
	return ExitError
}

// ShowsHelp reports whether the usage should follow the error message:
// only for errors that did not come from the domain packages, such as
// unknown flags or a missing argument.
func ShowsHelp(err error) bool {
	return errors.GetErrorCode(err) == errors.ErrUnknown
}
