package s6ctl

import "os"

// InitRegistry creates the directories the database and environment
// commands require to pre-exist: the database root and the environment
// store. Creating an already present directory is a no-op.
func InitRegistry(r Runner, p Paths) error {
	for _, dir := range []string{p.DBDir, p.EnvDir} {
		if r.DryRun() {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				r.Show(ShellLine("mkdir", "-p", dir))
			}
			continue
		}
		if err := os.MkdirAll(dir, DirMode); err != nil {
			return &OpError{Op: OpInit, Path: dir, Err: err}
		}
	}
	return nil
}
