package s6ctl

import "io/fs"

// External tools driven by this package. Each constant is an argv[0] looked
// up on PATH; none of them are optional.
const (
	// ToolSvscan is the supervision daemon.
	ToolSvscan = "s6-svscan"

	// ToolRCCompile is the service-database compiler.
	ToolRCCompile = "s6-rc-compile"

	// ToolRCUpdate is the live-database updater.
	ToolRCUpdate = "s6-rc-update"

	// ToolRC is the service-control client.
	ToolRC = "s6-rc"

	// ToolSvc sends control signals directly to a supervised service.
	ToolSvc = "s6-svc"

	// ToolEnvdir loads a directory-backed environment before exec.
	ToolEnvdir = "s6-envdir"

	// ToolTmux is the session multiplexer the detached daemon runs under.
	ToolTmux = "tmux"
)

// RequiredTools lists every external binary an invocation may need.
// CheckTools verifies all of them up front so an operator sees the full
// list of missing pieces in one run.
var RequiredTools = []string{
	ToolSvscan,
	ToolRCCompile,
	ToolRCUpdate,
	ToolRC,
	ToolSvc,
	ToolEnvdir,
	ToolTmux,
}

// Filesystem layout constants
const (
	// SessionName is the tmux session the detached daemon runs in.
	// At most one session with this name may exist.
	SessionName = "s6-svscan"

	// DefaultLink is the symlink inside the database root naming the
	// database a fresh bootstrap uses.
	DefaultLink = "compiled"

	// DBPrefix prefixes the timestamp-derived name of every compiled
	// database snapshot.
	DBPrefix = "compiled-"

	// SuperviseDir is the subdirectory s6-supervise maintains inside each
	// service directory.
	SuperviseDir = "supervise"

	// StatusFile is the binary status file inside a supervise directory.
	// Its presence means the service is supervised.
	StatusFile = "status"
)

// File modes
const (
	// DirMode is the mode for created registry directories.
	DirMode fs.FileMode = 0o755

	// ScanDirMode is the owner-only mode of the service scan directory.
	ScanDirMode fs.FileMode = 0o700

	// FileMode is the mode for created regular files.
	FileMode fs.FileMode = 0o644
)

// Op identifies a control-plane operation for error reporting.
type Op int

const (
	// OpUnknown represents an unknown operation
	OpUnknown Op = iota
	// OpCompile compiles service definitions into a new database
	OpCompile
	// OpSwitchLive repoints the live supervision tree at a database
	OpSwitchLive
	// OpChangeDefault repoints the default-database symlink
	OpChangeDefault
	// OpBootstrap starts the supervision daemon
	OpBootstrap
	// OpList queries active or inactive services
	OpList
	// OpStart requests a service be brought up
	OpStart
	// OpStop requests a service be brought down
	OpStop
	// OpRestart restarts a running service in place
	OpRestart
	// OpWait blocks until a service becomes supervised
	OpWait
	// OpPassthrough forwards raw arguments to the control client
	OpPassthrough
	// OpEnvAdd writes an environment-store variable
	OpEnvAdd
	// OpEnvDel removes an environment-store variable
	OpEnvDel
	// OpEnvList enumerates environment-store variables
	OpEnvList
	// OpEnvGet reads an environment-store variable
	OpEnvGet
	// OpInit creates the registry directories
	OpInit
)

// Op string constants
const (
	opUnknownStr       = "unknown"
	opCompileStr       = "compile"
	opSwitchLiveStr    = "switch-live"
	opChangeDefaultStr = "change-default"
	opBootstrapStr     = "bootstrap"
	opListStr          = "list"
	opStartStr         = "start"
	opStopStr          = "stop"
	opRestartStr       = "restart"
	opWaitStr          = "wait"
	opPassthroughStr   = "passthrough"
	opEnvAddStr        = "env-add"
	opEnvDelStr        = "env-del"
	opEnvListStr       = "env-list"
	opEnvGetStr        = "env-get"
	opInitStr          = "init"
)

// String returns the string representation of an Op
func (op Op) String() string {
	switch op {
	case OpCompile:
		return opCompileStr
	case OpSwitchLive:
		return opSwitchLiveStr
	case OpChangeDefault:
		return opChangeDefaultStr
	case OpBootstrap:
		return opBootstrapStr
	case OpList:
		return opListStr
	case OpStart:
		return opStartStr
	case OpStop:
		return opStopStr
	case OpRestart:
		return opRestartStr
	case OpWait:
		return opWaitStr
	case OpPassthrough:
		return opPassthroughStr
	case OpEnvAdd:
		return opEnvAddStr
	case OpEnvDel:
		return opEnvDelStr
	case OpEnvList:
		return opEnvListStr
	case OpEnvGet:
		return opEnvGetStr
	case OpInit:
		return opInitStr
	default:
		return opUnknownStr
	}
}
