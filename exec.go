package s6ctl

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/axondata/go-s6ctl/internal/unix"
)

// Runner executes external tool invocations, or renders them without
// executing in dry-run mode. One Runner is injected into every component so
// dry-run stays a single execution strategy rather than a flag checked ad
// hoc.
type Runner interface {
	// Run executes a side-effecting command with inherited stdio and blocks
	// until it exits.
	Run(ctx context.Context, argv ...string) error

	// Query executes a read-only command and returns its captured stdout.
	Query(ctx context.Context, argv ...string) ([]byte, error)

	// Exec replaces the current process image with the command. It only
	// returns on failure (or after rendering, in dry-run mode).
	Exec(argv []string, env []string) error

	// Show records a command line that live mode performs implicitly, such
	// as a filesystem step rendered as its shell equivalent. A no-op when
	// commands actually execute.
	Show(line string)

	// DryRun reports whether side effects are suppressed. Components gate
	// their own filesystem mutations on this.
	DryRun() bool
}

// ExecRunner is the live execution strategy: commands run for real against
// the installed s6 suite.
type ExecRunner struct {
	// Stdout and Stderr receive tool output for Run. Defaults to the
	// process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command with output wired to the configured streams
func (r *ExecRunner) Run(ctx context.Context, argv ...string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	return cmd.Run()
}

// Query executes the command and captures its stdout
func (r *ExecRunner) Query(ctx context.Context, argv ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = r.stderr()
	return cmd.Output()
}

// Exec replaces the current process image with the command
func (r *ExecRunner) Exec(argv []string, env []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrToolMissing, argv[0])
	}
	return unix.Exec(path, argv, env)
}

// Show is a no-op: live mode has nothing to render
func (r *ExecRunner) Show(string) {}

// DryRun reports false: side effects are performed
func (r *ExecRunner) DryRun() bool { return false }

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// DryRunner renders every would-be invocation as a literal shell-quoted
// command line on W and executes nothing. Queries return empty output, so
// callers proceed as if the queried state were absent.
type DryRunner struct {
	// W receives one rendered command line per invocation
	W io.Writer
}

// Run renders the command line without executing it
func (r *DryRunner) Run(_ context.Context, argv ...string) error {
	r.Show(ShellLine(argv...))
	return nil
}

// Query renders the command line and returns empty output
func (r *DryRunner) Query(_ context.Context, argv ...string) ([]byte, error) {
	r.Show(ShellLine(argv...))
	return nil, nil
}

// Exec renders the command line instead of replacing the process
func (r *DryRunner) Exec(argv []string, _ []string) error {
	r.Show("exec " + ShellLine(argv...))
	return nil
}

// Show writes one rendered line to W
func (r *DryRunner) Show(line string) {
	fmt.Fprintln(r.W, line)
}

// DryRun reports true: all side effects are suppressed
func (r *DryRunner) DryRun() bool { return true }

// CheckTools verifies every named binary resolves on PATH. All names are
// checked before returning so the error lists everything that needs
// installing, not just the first gap.
func CheckTools(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrToolMissing, strings.Join(missing, ", "))
}

// ShellLine renders argv as a single shell command line with each word
// quoted as needed.
func ShellLine(argv ...string) string {
	parts := make([]string, 0, len(argv))
	for _, arg := range argv {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}

// shellQuote escapes a string for safe use in shell command lines
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}

	if !needsShellQuoting(s) {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// needsShellQuoting checks if a string contains characters that require shell quoting
func needsShellQuoting(s string) bool {
	// Characters that require quoting in shell
	const specialChars = " \t\n'\"\\$`!*?[](){}<>|&;~"

	for _, r := range s {
		if strings.ContainsRune(specialChars, r) {
			return true
		}
	}
	return false
}
