//go:build !linux && !darwin

package s6ctl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// WaitSupervised has no filesystem-notification backing on this platform.
// It succeeds immediately if the service is already supervised and fails
// otherwise instead of blocking.
func (c *Controller) WaitSupervised(_ context.Context, name string) error {
	statusPath := filepath.Join(c.ScanDir, name, SuperviseDir, StatusFile)
	if _, err := os.Stat(statusPath); err == nil {
		return nil
	}
	return &OpError{Op: OpWait, Path: statusPath, Err: errors.New("waiting not supported on this platform")}
}
