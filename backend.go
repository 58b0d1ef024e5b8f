package tracelog

import (
	"fmt"
	"os"
	"strings"
)

// BackendKind identifies the sink a Logger writes to.
type BackendKind int

const (
	// BackendDisabled means no external sink: lines reach the console only
	// when the level threshold allows it.
	BackendDisabled BackendKind = iota
	BackendLocalSyslog
	BackendRemoteSyslog
	BackendRotatingFile
	// BackendConsole is what a Logger ends up with when the configured sink
	// could not be opened. It gates exactly like BackendDisabled.
	BackendConsole
)

func (k BackendKind) String() string {
	switch k {
	case BackendDisabled:
		return "disabled"
	case BackendLocalSyslog:
		return "local-syslog"
	case BackendRemoteSyslog:
		return "remote-syslog"
	case BackendRotatingFile:
		return "rotating-file"
	case BackendConsole:
		return "console"
	default:
		return "unknown"
	}
}

const (
	// SyslogPort is the port used for every remote syslog endpoint.
	SyslogPort = 514
	// RotateMaxBytes is the size at which the log file is rotated.
	RotateMaxBytes int64 = 5 * 1024 * 1024
	// RotateBackupCount is the number of rotated files kept.
	RotateBackupCount = 5

	remoteHostPrefix = "host:"
)

// Backend describes a resolved log destination. Only the fields relevant to
// Kind are set.
type Backend struct {
	Kind        BackendKind
	SocketPath  string
	Host        string
	Port        int
	Path        string
	MaxBytes    int64
	BackupCount int
}

// Address returns the dial target for syslog backends and the file path for
// the rotating file backend.
func (b Backend) Address() string {
	switch b.Kind {
	case BackendLocalSyslog:
		return b.SocketPath
	case BackendRemoteSyslog:
		return fmt.Sprintf("%s:%d", b.Host, b.Port)
	case BackendRotatingFile:
		return b.Path
	default:
		return ""
	}
}

func (b Backend) String() string {
	if addr := b.Address(); addr != "" {
		return b.Kind.String() + "(" + addr + ")"
	}
	return b.Kind.String()
}

// Active reports whether records are forwarded unconditionally to an
// external sink.
func (b Backend) Active() bool {
	switch b.Kind {
	case BackendLocalSyslog, BackendRemoteSyslog, BackendRotatingFile:
		return true
	default:
		return false
	}
}

// LocalSocketPath returns the platform's local syslog socket and whether it
// exists according to exists.
func LocalSocketPath(goos string, exists func(string) bool) (string, bool) {
	path := "/dev/log"
	if goos == "darwin" {
		path = "/var/run/syslog"
	}
	return path, exists(path)
}

// ResolveBackend maps a destination to a Backend. The first matching rule wins:
//
//   - nil: disabled
//   - "": the local syslog socket, or localhost:514 when the socket is missing
//   - "host:<name>" (any case): remote syslog on <name>:514
//   - anything else: a rotating file at that path
//
// ResolveBackend performs no I/O besides calling exists.
func ResolveBackend(destination *string, goos string, exists func(string) bool) Backend {
	if destination == nil {
		return Backend{Kind: BackendDisabled}
	}

	dest := *destination
	switch {
	case dest == "":
		if path, ok := LocalSocketPath(goos, exists); ok {
			return Backend{Kind: BackendLocalSyslog, SocketPath: path}
		}
		return Backend{Kind: BackendRemoteSyslog, Host: "localhost", Port: SyslogPort}
	case len(dest) >= len(remoteHostPrefix) && strings.EqualFold(dest[:len(remoteHostPrefix)], remoteHostPrefix):
		return Backend{
			Kind: BackendRemoteSyslog,
			Host: strings.TrimSpace(dest[len(remoteHostPrefix):]),
			Port: SyslogPort,
		}
	default:
		return Backend{
			Kind:        BackendRotatingFile,
			Path:        dest,
			MaxBytes:    RotateMaxBytes,
			BackupCount: RotateBackupCount,
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// openSink acquires the handle for b eagerly so that a bad destination is
// reported at construction rather than on the first write.
func openSink(b Backend, onError func(error)) (sink, error) {
	switch b.Kind {
	case BackendLocalSyslog, BackendRemoteSyslog:
		s, err := dialSyslog(b, onError)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to syslog at %s: %w", b.Address(), err)
		}
		return s, nil
	case BackendRotatingFile:
		s, err := newRotatingFileSink(b, onError)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return s, nil
	default:
		return nil, nil
	}
}
