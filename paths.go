package s6ctl

import (
	"fmt"
	"path/filepath"
)

// Paths holds the effective directories and files one invocation operates
// on. The dispatcher computes it once at startup and hands it to every
// component.
type Paths struct {
	// DBDir is the database root holding compiled snapshots and the
	// default-database symlink.
	DBDir string

	// EnvDir is the environment-store directory.
	EnvDir string

	// LiveDir is the live-state directory of the running tree.
	LiveDir string

	// ScanDir is the service scan directory supervised by s6-svscan.
	ScanDir string

	// LogFile receives the detached daemon's output.
	LogFile string
}

// DefaultPaths derives the privilege-dependent default layout. Root gets the
// fixed system locations; everyone else gets a tree under their home
// directory plus a uid-keyed namespace under tmpDir for runtime state.
// It is a pure function of its arguments.
func DefaultPaths(uid int, home, tmpDir string) Paths {
	if uid == 0 {
		return Paths{
			DBDir:   "/etc/s6-rc",
			EnvDir:  "/etc/s6-rc/env",
			LiveDir: "/run/s6-rc",
			ScanDir: "/run/service",
			LogFile: "/var/log/s6-svscan.log",
		}
	}

	base := filepath.Join(tmpDir, fmt.Sprintf("s6-%d", uid))
	return Paths{
		DBDir:   filepath.Join(home, ".s6-rc"),
		EnvDir:  filepath.Join(home, ".s6-rc", "env"),
		LiveDir: filepath.Join(base, "live"),
		ScanDir: filepath.Join(base, "service"),
		LogFile: filepath.Join(base, "s6-svscan.log"),
	}
}
