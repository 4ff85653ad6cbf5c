package s6ctl

import (
	"errors"
	"fmt"
)

// Common errors returned by control-plane operations
var (
	// ErrToolMissing indicates a required external binary is absent from PATH
	ErrToolMissing = errors.New("s6ctl: required tool missing")

	// ErrNotSymlink indicates the default-database pointer exists but is not
	// a symbolic link
	ErrNotSymlink = errors.New("s6ctl: compiled pointer is not a symlink")

	// ErrNotService indicates a service name has no matching directory under
	// the scan directory
	ErrNotService = errors.New("s6ctl: no such service directory")

	// ErrNoDir indicates a directory a command requires does not exist
	ErrNoDir = errors.New("s6ctl: directory does not exist")
)

// OpError represents an error from a control-plane operation
type OpError struct {
	// Op is the operation that failed
	Op Op
	// Path is the file path involved in the operation
	Path string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *OpError) Error() string {
	return fmt.Sprintf("s6ctl %s %q: %v", e.Op.String(), e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *OpError) Unwrap() error {
	return e.Err
}
