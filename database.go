package s6ctl

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
)

// DBManager owns the lifecycle of compiled service databases under a single
// root directory: minting new immutable snapshots, switching the live tree
// to one, and repointing the default-database symlink.
//
// Snapshots are never deleted here; garbage collection of superseded
// databases is an operator concern.
type DBManager struct {
	// Root is the database root directory holding compiled-<ts> snapshots
	// and the "compiled" default symlink.
	Root string

	// Live is the live-state directory consumed by the running tree.
	Live string

	// Runner executes (or renders) the external tool invocations.
	Runner Runner

	// Now supplies the clock reading snapshot names derive from.
	// Defaults to time.Now.
	Now func() time.Time
}

// NewDBManager creates a DBManager over the given database root and
// live-state directory.
func NewDBManager(root, live string, r Runner) *DBManager {
	return &DBManager{Root: root, Live: live, Runner: r}
}

func (m *DBManager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// mintName derives a fresh snapshot name from the clock. If the name is
// already taken the timestamp is incremented until unused, so rapid or
// frozen clocks still yield unique names.
func (m *DBManager) mintName() string {
	ts := m.now().Unix()
	for {
		name := fmt.Sprintf("%s%d", DBPrefix, ts)
		if _, err := os.Lstat(filepath.Join(m.Root, name)); os.IsNotExist(err) {
			return name
		}
		ts++
	}
}

// Compile invokes s6-rc-compile to build a new database snapshot from the
// given service-definition directories and returns its path. The definition
// contents are not validated here; the compiler's own failure propagates.
func (m *DBManager) Compile(ctx context.Context, srcDirs ...string) (string, error) {
	path := filepath.Join(m.Root, m.mintName())

	argv := append([]string{ToolRCCompile, path}, srcDirs...)
	if err := m.Runner.Run(ctx, argv...); err != nil {
		return "", &OpError{Op: OpCompile, Path: path, Err: err}
	}
	return path, nil
}

// SwitchLive atomically repoints the running tree's active database at
// dbPath via s6-rc-update. No existence check is performed on dbPath; the
// updater fails on its own terms.
func (m *DBManager) SwitchLive(ctx context.Context, dbPath string) error {
	if err := m.Runner.Run(ctx, ToolRCUpdate, "-l", m.Live, dbPath); err != nil {
		return &OpError{Op: OpSwitchLive, Path: dbPath, Err: err}
	}
	return nil
}

// ChangeDefault repoints the "compiled" symlink in the database root at
// dbName, the database a fresh bootstrap will use. The replacement is a
// single rename, so a concurrent reader sees either the old or the new
// target, never a partial link.
//
// If "compiled" exists as anything other than a symlink the call fails with
// ErrNotSymlink and the filesystem is left untouched.
func (m *DBManager) ChangeDefault(_ context.Context, dbName string) error {
	link := filepath.Join(m.Root, DefaultLink)

	fi, err := os.Lstat(link)
	switch {
	case err != nil && os.IsNotExist(err):
		// First switch ever: no reader can hold a stale target yet.
		if m.Runner.DryRun() {
			m.Runner.Show(ShellLine("ln", "-s", dbName, link))
			return nil
		}
		if err := os.Symlink(dbName, link); err != nil {
			return &OpError{Op: OpChangeDefault, Path: link, Err: err}
		}
		return nil

	case err != nil:
		return &OpError{Op: OpChangeDefault, Path: link, Err: err}

	case fi.Mode()&fs.ModeSymlink == 0:
		return &OpError{Op: OpChangeDefault, Path: link, Err: ErrNotSymlink}
	}

	if m.Runner.DryRun() {
		m.Runner.Show(ShellLine("ln", "-nsf", dbName, link))
		return nil
	}
	if err := renameio.Symlink(dbName, link); err != nil {
		return &OpError{Op: OpChangeDefault, Path: link, Err: err}
	}
	return nil
}

// Upgrade is the composite compile -> switch-live -> change-default
// sequence, strictly in that order. There is no rollback: if a later step
// fails the freshly compiled database stays valid on disk and is returned
// alongside the error so the operator can retry the failed step against it.
func (m *DBManager) Upgrade(ctx context.Context, srcDirs ...string) (string, error) {
	path, err := m.Compile(ctx, srcDirs...)
	if err != nil {
		return "", err
	}
	if err := m.SwitchLive(ctx, path); err != nil {
		return path, err
	}
	if err := m.ChangeDefault(ctx, filepath.Base(path)); err != nil {
		return path, err
	}
	return path, nil
}
