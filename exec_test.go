package s6ctl

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeStubTool installs an executable shell stub under dir.
func writeStubTool(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestShellLine(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"plain", []string{"s6-rc", "-l", "/run/s6-rc", "-a", "list"}, "s6-rc -l /run/s6-rc -a list"},
		{"space", []string{"tee", "-a", "/var/log/my log"}, "tee -a '/var/log/my log'"},
		{"empty word", []string{"echo", ""}, "echo ''"},
		{"single quote", []string{"echo", "it's"}, "echo 'it'\\''s'"},
		{"pipe char", []string{"echo", "a|b"}, "echo 'a|b'"},
		{"dollar", []string{"echo", "$HOME"}, "echo '$HOME'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShellLine(tt.argv...); got != tt.want {
				t.Errorf("ShellLine(%v) = %q, want %q", tt.argv, got, tt.want)
			}
		})
	}
}

func TestDryRunnerRendersWithoutExecuting(t *testing.T) {
	var buf bytes.Buffer
	r := &DryRunner{W: &buf}

	if !r.DryRun() {
		t.Fatal("DryRunner.DryRun() = false")
	}

	ctx := context.Background()
	if err := r.Run(ctx, "s6-rc-update", "-l", "/run/s6-rc", "/etc/s6-rc/compiled-1"); err != nil {
		t.Fatal(err)
	}

	out, err := r.Query(ctx, "tmux", "list-sessions", "-F", "#{session_name}")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("Query output = %q, want empty", out)
	}

	if err := r.Exec([]string{"/bin/sh", "-c", "true"}, nil); err != nil {
		t.Fatal(err)
	}

	want := "s6-rc-update -l /run/s6-rc /etc/s6-rc/compiled-1\n" +
		"tmux list-sessions -F '#{session_name}'\n" +
		"exec /bin/sh -c true\n"
	if buf.String() != want {
		t.Errorf("rendered output = %q, want %q", buf.String(), want)
	}
}

func TestExecRunnerRun(t *testing.T) {
	dir := t.TempDir()
	writeStubTool(t, dir, "stub-ok", "exit 0")
	writeStubTool(t, dir, "stub-fail", "exit 3")
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	ctx := context.Background()

	if err := r.Run(ctx, "stub-ok"); err != nil {
		t.Fatalf("stub-ok: %v", err)
	}
	if err := r.Run(ctx, "stub-fail"); err == nil {
		t.Fatal("stub-fail: expected error")
	}
}

func TestCheckTools(t *testing.T) {
	dir := t.TempDir()
	writeStubTool(t, dir, "s6-rc", "exit 0")
	writeStubTool(t, dir, "tmux", "exit 0")
	t.Setenv("PATH", dir)

	if err := CheckTools("s6-rc", "tmux"); err != nil {
		t.Fatalf("all present: %v", err)
	}

	err := CheckTools("s6-rc", "s6-svscan", "s6-rc-compile")
	if err == nil {
		t.Fatal("expected error for missing tools")
	}
	if !errors.Is(err, ErrToolMissing) {
		t.Errorf("error %v does not wrap ErrToolMissing", err)
	}
	// Every missing tool is reported, not just the first.
	for _, name := range []string{"s6-svscan", "s6-rc-compile"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
	if strings.Contains(err.Error(), "s6-rc,") {
		t.Errorf("error %q mentions a present tool", err)
	}
}
