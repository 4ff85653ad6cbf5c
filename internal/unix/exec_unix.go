//go:build linux || darwin

// Package unix provides platform-specific Unix syscall shims.
package unix

import sysunix "golang.org/x/sys/unix"

// Exec replaces the current process image with the program at argv0.
// It does not return on success.
func Exec(argv0 string, argv []string, envv []string) error {
	return sysunix.Exec(argv0, argv, envv)
}
