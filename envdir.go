package s6ctl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvStore is a directory-backed flat key/value store: one regular file per
// variable, file content (minus one trailing newline) is the value. The
// supervised processes consume it through s6-envdir.
//
// Variable files are written with a single direct write; the store offers no
// crash atomicity for individual values.
type EnvStore struct {
	// Dir is the environment directory. It must already exist; none of the
	// operations create it.
	Dir string

	// Runner renders the would-be mutations in dry-run mode.
	Runner Runner
}

// check fails fast with a descriptive error when the store directory is
// missing.
func (s *EnvStore) check(op Op) error {
	fi, err := os.Stat(s.Dir)
	if err != nil || !fi.IsDir() {
		return &OpError{Op: op, Path: s.Dir, Err: ErrNoDir}
	}
	return nil
}

// Add writes the variable with the given value plus a trailing newline,
// creating or overwriting its file.
func (s *EnvStore) Add(name, value string) error {
	if err := s.check(OpEnvAdd); err != nil {
		return err
	}
	path := filepath.Join(s.Dir, name)
	if s.Runner.DryRun() {
		s.Runner.Show(fmt.Sprintf("%s > %s", ShellLine("echo", value), shellQuote(path)))
		return nil
	}
	if err := os.WriteFile(path, []byte(value+"\n"), FileMode); err != nil {
		return &OpError{Op: OpEnvAdd, Path: path, Err: err}
	}
	return nil
}

// Del removes the variable's file. Removing a missing variable fails with
// the remove primitive's own error.
func (s *EnvStore) Del(name string) error {
	if err := s.check(OpEnvDel); err != nil {
		return err
	}
	path := filepath.Join(s.Dir, name)
	if s.Runner.DryRun() {
		s.Runner.Show(ShellLine("rm", path))
		return nil
	}
	if err := os.Remove(path); err != nil {
		return &OpError{Op: OpEnvDel, Path: path, Err: err}
	}
	return nil
}

// List returns the variable names in the store, sorted.
func (s *EnvStore) List() ([]string, error) {
	if err := s.check(OpEnvList); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, &OpError{Op: OpEnvList, Path: s.Dir, Err: err}
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Get returns the variable's value with one trailing newline stripped.
func (s *EnvStore) Get(name string) (string, error) {
	if err := s.check(OpEnvGet); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &OpError{Op: OpEnvGet, Path: path, Err: err}
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
