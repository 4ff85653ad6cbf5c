package s6ctl

import (
	"context"
	"os"
	"path/filepath"
)

// Controller drives individual service lifecycle transitions against a
// running supervision tree through the s6-rc client. Start and stop are
// asynchronous: a call returns once the request is accepted, not once the
// service reaches the target state.
type Controller struct {
	// LiveDir is the live-state directory of the running tree.
	LiveDir string

	// ScanDir is the service scan directory, used for operations that talk
	// to a service's supervise process directly.
	ScanDir string

	// Runner executes (or renders) the external tool invocations.
	Runner Runner
}

// ListUp prints the names of active services. Output format is the
// client's own.
func (c *Controller) ListUp(ctx context.Context) error {
	if err := c.Runner.Run(ctx, ToolRC, "-l", c.LiveDir, "-a", "list"); err != nil {
		return &OpError{Op: OpList, Path: c.LiveDir, Err: err}
	}
	return nil
}

// ListDown prints the names of inactive services.
func (c *Controller) ListDown(ctx context.Context) error {
	if err := c.Runner.Run(ctx, ToolRC, "-l", c.LiveDir, "-da", "list"); err != nil {
		return &OpError{Op: OpList, Path: c.LiveDir, Err: err}
	}
	return nil
}

// Start requests the named service be brought up.
func (c *Controller) Start(ctx context.Context, name string) error {
	if err := c.Runner.Run(ctx, ToolRC, "-l", c.LiveDir, "-u", "change", name); err != nil {
		return &OpError{Op: OpStart, Path: name, Err: err}
	}
	return nil
}

// Stop requests the named service be brought down.
func (c *Controller) Stop(ctx context.Context, name string) error {
	if err := c.Runner.Run(ctx, ToolRC, "-l", c.LiveDir, "-d", "change", name); err != nil {
		return &OpError{Op: OpStop, Path: name, Err: err}
	}
	return nil
}

// Restart restarts the named service in place by signaling its supervise
// process directly, bypassing the live-state indirection. The service must
// have a directory under ScanDir; a missing directory fails with
// ErrNotService before any signal is issued.
func (c *Controller) Restart(ctx context.Context, name string) error {
	dir := filepath.Join(c.ScanDir, name)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return &OpError{Op: OpRestart, Path: dir, Err: ErrNotService}
	}
	if err := c.Runner.Run(ctx, ToolSvc, "-r", dir); err != nil {
		return &OpError{Op: OpRestart, Path: dir, Err: err}
	}
	return nil
}

// Passthrough forwards arbitrary arguments to the s6-rc client unmodified,
// scoped to the controller's live-state directory.
func (c *Controller) Passthrough(ctx context.Context, args ...string) error {
	argv := append([]string{ToolRC, "-l", c.LiveDir}, args...)
	if err := c.Runner.Run(ctx, argv...); err != nil {
		return &OpError{Op: OpPassthrough, Path: c.LiveDir, Err: err}
	}
	return nil
}
