package s6ctl

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func dryController(t *testing.T) (*Controller, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &Controller{
		LiveDir: "/run/s6-rc",
		ScanDir: t.TempDir(),
		Runner:  &DryRunner{W: &buf},
	}, &buf
}

func TestControllerCommandLines(t *testing.T) {
	tests := []struct {
		name string
		call func(ctx context.Context, c *Controller) error
		want string
	}{
		{"list up", func(ctx context.Context, c *Controller) error { return c.ListUp(ctx) },
			"s6-rc -l /run/s6-rc -a list\n"},
		{"list down", func(ctx context.Context, c *Controller) error { return c.ListDown(ctx) },
			"s6-rc -l /run/s6-rc -da list\n"},
		{"start", func(ctx context.Context, c *Controller) error { return c.Start(ctx, "nginx") },
			"s6-rc -l /run/s6-rc -u change nginx\n"},
		{"stop", func(ctx context.Context, c *Controller) error { return c.Stop(ctx, "nginx") },
			"s6-rc -l /run/s6-rc -d change nginx\n"},
		{"passthrough", func(ctx context.Context, c *Controller) error { return c.Passthrough(ctx, "-b", "diff") },
			"s6-rc -l /run/s6-rc -b diff\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl, buf := dryController(t)
			require.NoError(t, tt.call(context.Background(), ctl))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRestartRequiresServiceDir(t *testing.T) {
	ctl, buf := dryController(t)

	err := ctl.Restart(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotService)
	require.Empty(t, buf.String(), "no control signal may be issued for a missing service")
}

func TestRestartSignalsServiceDirectly(t *testing.T) {
	ctl, buf := dryController(t)
	dir := filepath.Join(ctl.ScanDir, "nginx")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	require.NoError(t, ctl.Restart(context.Background(), "nginx"))
	require.Equal(t, ShellLine("s6-svc", "-r", dir)+"\n", buf.String())
}

func TestRestartRejectsNonDirectory(t *testing.T) {
	ctl, buf := dryController(t)
	require.NoError(t, os.WriteFile(filepath.Join(ctl.ScanDir, "nginx"), nil, 0o644))

	err := ctl.Restart(context.Background(), "nginx")
	require.ErrorIs(t, err, ErrNotService)
	require.Empty(t, buf.String())
}
