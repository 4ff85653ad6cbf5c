//go:build linux || darwin

package s6ctl

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

// waitPollInterval bounds how long a directory created between a stat and a
// watcher.Add can go unnoticed.
const waitPollInterval = time.Second

// WaitSupervised blocks until the named service is picked up by the daemon,
// that is, until its supervise/status file exists under ScanDir. Use it
// after a bootstrap or a live switch to know when control operations will be
// accepted. Cancellation comes from ctx.
func (c *Controller) WaitSupervised(ctx context.Context, name string) error {
	statusPath := filepath.Join(c.ScanDir, name, SuperviseDir, StatusFile)
	if _, err := os.Stat(statusPath); err == nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return &OpError{Op: OpWait, Path: c.ScanDir, Err: err}
	}
	if err := watcher.Add(c.ScanDir); err != nil {
		_ = watcher.Close()
		return &OpError{Op: OpWait, Path: c.ScanDir, Err: err}
	}

	// Stopper context manages the forwarding goroutine's lifecycle.
	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = watcher.Close()
	})

	events := make(chan struct{}, 1)
	sctx.Go(func(sctx *stopper.Context) error {
		for {
			select {
			case <-sctx.Stopping():
				return nil
			case _, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// Coalesce bursts; the waiter re-stats on each wakeup.
				select {
				case events <- struct{}{}:
				default:
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	})
	defer func() {
		sctx.Stop(100 * time.Millisecond)
		_ = sctx.Wait()
	}()

	timer := time.NewTimer(waitPollInterval)
	defer timer.Stop()

	for {
		// Watch intermediate directories as the daemon creates them.
		// Re-adding an already watched path is harmless.
		for _, dir := range []string{
			filepath.Join(c.ScanDir, name),
			filepath.Join(c.ScanDir, name, SuperviseDir),
		} {
			if _, err := os.Stat(dir); err == nil {
				_ = watcher.Add(dir)
			}
		}

		if _, err := os.Stat(statusPath); err == nil {
			return nil
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(waitPollInterval)

		select {
		case <-ctx.Done():
			return &OpError{Op: OpWait, Path: statusPath, Err: ctx.Err()}
		case <-events:
		case <-timer.C:
		}
	}
}
