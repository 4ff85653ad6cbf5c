// Package s6ctl is a control plane for an s6/s6-rc process-supervision tree.
//
// It bootstraps s6-svscan under a detachable tmux session, compiles service
// definitions into immutable versioned databases with s6-rc-compile, and
// atomically switches which database the running tree uses:
//
//	mgr := s6ctl.NewDBManager("/etc/s6-rc", "/run/s6-rc", &s6ctl.ExecRunner{})
//
//	// Compile definitions, switch the live tree, repoint the default.
//	path, err := mgr.Upgrade(context.Background(), "/etc/s6-rc/source")
//
// Individual service transitions go through a Controller, which drives the
// s6-rc client and s6-svc:
//
//	ctl := &s6ctl.Controller{LiveDir: "/run/s6-rc", ScanDir: "/run/service", Runner: r}
//	err = ctl.Start(ctx, "nginx")
//
// # Execution Strategy
//
// Every component performs its external work through a Runner. ExecRunner
// invokes the s6 suite for real; DryRunner renders each invocation (and each
// implicit filesystem step) as a literal shell-quoted command line without
// executing anything. Precondition checks run in both modes.
//
// # Delegation Boundary
//
// This package orchestrates; it does not supervise. Restart policies,
// dependency ordering, and signal handling belong to the external s6 suite,
// and service-definition contents are never validated here; s6-rc-compile's
// own failures are propagated verbatim.
package s6ctl
