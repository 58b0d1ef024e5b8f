//go:build !windows && !plan9

package tracelog

import (
	"fmt"
	"log/syslog"
)

type syslogSink struct {
	writer  *syslog.Writer
	onError func(error)
}

// dialSyslog connects to the backend's socket or remote endpoint. Local
// sockets are tried as datagram first, then stream, since both exist in
// the wild.
func dialSyslog(b Backend, onError func(error)) (*syslogSink, error) {
	var (
		writer *syslog.Writer
		err    error
	)
	switch b.Kind {
	case BackendLocalSyslog:
		writer, err = syslog.Dial("unixgram", b.SocketPath, syslog.LOG_USER|syslog.LOG_DEBUG, "")
		if err != nil {
			writer, err = syslog.Dial("unix", b.SocketPath, syslog.LOG_USER|syslog.LOG_DEBUG, "")
		}
	case BackendRemoteSyslog:
		writer, err = syslog.Dial("udp", b.Address(), syslog.LOG_USER|syslog.LOG_DEBUG, "")
	default:
		err = fmt.Errorf("not a syslog backend: %s", b.Kind)
	}
	if err != nil {
		return nil, err
	}
	return &syslogSink{writer: writer, onError: onError}, nil
}

func (s *syslogSink) write(level LogLevel, line string) {
	var err error
	switch {
	case level <= DEBUG:
		err = s.writer.Debug(line)
	case level == INFO:
		err = s.writer.Info(line)
	case level == WARNING:
		err = s.writer.Warning(line)
	case level == ERROR:
		err = s.writer.Err(line)
	default:
		err = s.writer.Crit(line)
	}
	if err != nil && s.onError != nil {
		s.onError(fmt.Errorf("syslog write error: %w", err))
	}
}

func (s *syslogSink) Close() error {
	return s.writer.Close()
}
