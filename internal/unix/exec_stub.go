//go:build !linux && !darwin

// Package unix provides platform-specific Unix syscall shims.
package unix

import "errors"

// Exec is unsupported on this platform.
func Exec(_ string, _ []string, _ []string) error {
	return errors.New("process-image replacement not supported on this platform")
}
