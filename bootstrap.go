package s6ctl

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Bootstrap starts the supervision daemon over a scan directory, either
// detached under a tmux session or replacing the current process in the
// foreground. Detached starts are idempotent: at most one daemon session
// exists at a time.
type Bootstrap struct {
	// ScanDir is the service scan directory s6-svscan supervises.
	ScanDir string

	// LogFile receives the daemon's combined output via tee.
	LogFile string

	// EnvDir is the environment-store directory loaded around the daemon
	// with s6-envdir.
	EnvDir string

	// Runner executes (or renders) the external tool invocations.
	Runner Runner
}

// daemonLine builds the shell pipeline the daemon runs as. The environment
// loader wraps s6-svscan, and both output streams are appended to LogFile.
func (b *Bootstrap) daemonLine() string {
	return fmt.Sprintf("%s 2>&1 | %s",
		ShellLine(ToolEnvdir, b.EnvDir, ToolSvscan, b.ScanDir),
		ShellLine("tee", "-a", b.LogFile))
}

// ensureScanDir creates the scan directory owner-only if it is missing.
func (b *Bootstrap) ensureScanDir() error {
	if b.Runner.DryRun() {
		if _, err := os.Stat(b.ScanDir); os.IsNotExist(err) {
			b.Runner.Show(ShellLine("mkdir", "-p", "-m", "0700", b.ScanDir))
		}
		return nil
	}
	if err := os.MkdirAll(b.ScanDir, ScanDirMode); err != nil {
		return &OpError{Op: OpBootstrap, Path: b.ScanDir, Err: err}
	}
	// MkdirAll is subject to the umask; pin the mode explicitly.
	if err := os.Chmod(b.ScanDir, ScanDirMode); err != nil {
		return &OpError{Op: OpBootstrap, Path: b.ScanDir, Err: err}
	}
	return nil
}

// sessionRunning reports whether a daemon session already exists. The check
// is advisory only: membership is matched by exact name against the session
// list, with no lock against a concurrent start.
func (b *Bootstrap) sessionRunning(ctx context.Context) bool {
	out, err := b.Runner.Query(ctx, ToolTmux, "list-sessions", "-F", "#{session_name}")
	if err != nil {
		// tmux exits nonzero when no server is running at all.
		return false
	}
	for _, name := range strings.Split(string(out), "\n") {
		if name == SessionName {
			return true
		}
	}
	return false
}

// Start brings the daemon up. With detach, a new tmux session is created
// unless one already exists, in which case Start is a no-op and reports
// started == false. Without detach, Start replaces the current process with
// the daemon pipeline and does not return on success.
func (b *Bootstrap) Start(ctx context.Context, detach bool) (started bool, err error) {
	if err := b.ensureScanDir(); err != nil {
		return false, err
	}

	line := b.daemonLine()

	if !detach {
		if err := b.Runner.Exec([]string{"/bin/sh", "-c", line}, os.Environ()); err != nil {
			return false, &OpError{Op: OpBootstrap, Path: b.ScanDir, Err: err}
		}
		return true, nil
	}

	if b.sessionRunning(ctx) {
		return false, nil
	}

	if err := b.Runner.Run(ctx, ToolTmux, "new-session", "-d", "-s", SessionName, line); err != nil {
		return false, &OpError{Op: OpBootstrap, Path: b.ScanDir, Err: err}
	}
	return true, nil
}
