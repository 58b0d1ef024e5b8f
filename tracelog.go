package tracelog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Logger routes leveled messages to a single backend and remembers the most
// recent lines for diagnostic dumps.
//
// A Logger is meant to be built once at startup and shared by reference.
// All methods are safe for concurrent use and none of them fail: sink errors
// go to the configured ErrorHandler, never to the caller.
//
// The process id printed on every line is read once by New; a forked child
// keeps printing its parent's pid.
type Logger struct {
	backend   Backend
	sinkMu    sync.RWMutex
	sink      sink
	console   *consoleWriter
	history   *History
	threshold LogLevel
	channels  ChannelFlags
	pid       int

	errorHandler   func(error)
	fallbackWriter io.Writer
	errorLimiter   *rate.Limiter
}

// New builds a Logger from config.
//
// New always returns a usable Logger. If the configured destination cannot
// be opened the Logger falls back to the console, announces it with a single
// CRITICAL line, and carries on with console gating only.
//
// Example:
//
//	logger := tracelog.New(tracelog.DefaultConfig())
//	defer logger.Close()
//	logger.Info("main", "proxy starting")
func New(config Config) *Logger {
	if config.HistorySize <= 0 {
		config.HistorySize = defaultHistorySize
	}
	if config.Console == nil {
		config.Console = os.Stdout
	}

	l := &Logger{
		history:        NewHistory(config.HistorySize),
		threshold:      config.LogLevel,
		channels:       config.Channels,
		pid:            os.Getpid(),
		errorHandler:   config.ErrorHandler,
		fallbackWriter: os.Stderr,
		errorLimiter:   rate.NewLimiter(rate.Every(time.Second), 1),
	}
	l.console = newConsoleWriter(config.Console, l.handleError)

	l.backend = ResolveBackend(config.Destination, runtime.GOOS, pathExists)
	s, err := openSink(l.backend, l.handleError)
	if err != nil {
		l.backend = Backend{Kind: BackendConsole}
		l.announce(fmt.Sprintf("can not use log destination %q (%v), falling back to console", *config.Destination, err))
		return l
	}
	l.sink = s
	return l
}

// Backend returns the destination the Logger is currently using. After a
// fallback or Close it reports BackendConsole.
func (l *Logger) Backend() Backend {
	l.sinkMu.RLock()
	defer l.sinkMu.RUnlock()
	return l.backend
}

// History renders the retained records oldest first, one record per entry,
// in the same format as live output.
//
// Lines logged through a level method are split before they are recorded,
// so each occupies one output line. A multi-line message left by a silenced
// channel is a single record and spans several output lines in the dump.
func (l *Logger) History() string {
	return l.history.Dump(l.format)
}

// Records returns a snapshot of the retained records, oldest first.
func (l *Logger) Records() []Record {
	return l.history.Records()
}

// Close releases the backend. Logging after Close keeps recording history
// and falls back to console gating, and Backend reports BackendConsole.
func (l *Logger) Close() error {
	l.sinkMu.Lock()
	s := l.sink
	l.sink = nil
	if s != nil {
		l.backend = Backend{Kind: BackendConsole}
	}
	l.sinkMu.Unlock()

	if s == nil {
		return nil
	}
	return s.Close()
}

// log is the internal logging function used by all logging methods.
//
// This method:
// - Renders message once and splits it into lines
// - Records every line into the history
// - Writes every line to the active sink, or to the console when level
// passes the threshold and no sink is active
func (l *Logger) log(level LogLevel, label, source string, message any) {
	now := time.Now()
	lines := strings.Split(l.render(message), "\n")

	// Held for the whole call so Close cannot release the sink mid-message.
	l.sinkMu.RLock()
	defer l.sinkMu.RUnlock()
	s := l.sink
	toConsole := s == nil && l.threshold <= level

	for _, line := range lines {
		r := Record{Time: now, Level: label, Source: source, Message: text(line)}
		l.history.Record(r)

		switch {
		case s != nil:
			s.write(level, l.format(r))
		case toConsole:
			l.console.writeLine(l.format(r))
		}
	}
}

// announce records a CRITICAL line and prints it regardless of threshold.
func (l *Logger) announce(message string) {
	r := Record{Time: time.Now(), Level: CRITICAL.String(), Message: text(message)}
	l.history.Record(r)
	l.console.writeLine(l.format(r))
}

func (l *Logger) format(r Record) (line string) {
	defer func() {
		if p := recover(); p != nil {
			r.Message = text(fmt.Sprintf("<unprintable message: %v>", p))
			line = formatRecord(l.pid, r)
		}
	}()
	return formatRecord(l.pid, r)
}

func (l *Logger) render(message any) (s string) {
	defer func() {
		if p := recover(); p != nil {
			s = fmt.Sprintf("<unprintable message: %v>", p)
		}
	}()
	return materialize(message)
}

func (l *Logger) handleError(err error) {
	if l.errorHandler != nil {
		l.errorHandler(err)
		return
	}
	if l.fallbackWriter != nil && l.errorLimiter.Allow() {
		fmt.Fprintf(l.fallbackWriter, "LOGGER ERROR: %v\n", err)
	}
}
