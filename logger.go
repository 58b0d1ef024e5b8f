package tracelog

import "fmt"

// Log logs message from source at level, printing label in place of the
// level name. label is not validated.
//
// message may be a string, []byte, error, fmt.Stringer (including a
// *Deferred) or any other value, which is rendered with fmt.Sprint. It is
// rendered once and split on newlines; every line becomes its own record.
func (l *Logger) Log(level LogLevel, label, source string, message any) {
	l.log(level, label, source, message)
}

// Debug logs a message at DEBUG level.
//
// Example:
//
//	logger.Debug("cache", "evicted 12 entries")
func (l *Logger) Debug(source string, message any) {
	l.log(DEBUG, DEBUG.String(), source, message)
}

// Info logs a message at INFO level.
//
// Example:
//
//	logger.Info("server", "listening on 0.0.0.0:3128")
func (l *Logger) Info(source string, message any) {
	l.log(INFO, INFO.String(), source, message)
}

// Warning logs a message at WARNING level.
func (l *Logger) Warning(source string, message any) {
	l.log(WARNING, WARNING.String(), source, message)
}

// Error logs a message at ERROR level.
//
// Example:
//
//	logger.Error("storage", "disk full")
func (l *Logger) Error(source string, message any) {
	l.log(ERROR, ERROR.String(), source, message)
}

// Critical logs a message at CRITICAL level.
func (l *Logger) Critical(source string, message any) {
	l.log(CRITICAL, CRITICAL.String(), source, message)
}

// Debugf logs a formatted message at DEBUG level.
//
// The arguments are formatted before gating; wrap expensive values with
// Defer and call Debug instead.
func (l *Logger) Debugf(source, format string, v ...interface{}) {
	l.log(DEBUG, DEBUG.String(), source, fmt.Sprintf(format, v...))
}

// Infof logs a formatted message at INFO level.
func (l *Logger) Infof(source, format string, v ...interface{}) {
	l.log(INFO, INFO.String(), source, fmt.Sprintf(format, v...))
}

// Warningf logs a formatted message at WARNING level.
func (l *Logger) Warningf(source, format string, v ...interface{}) {
	l.log(WARNING, WARNING.String(), source, fmt.Sprintf(format, v...))
}

// Errorf logs a formatted message at ERROR level.
func (l *Logger) Errorf(source, format string, v ...interface{}) {
	l.log(ERROR, ERROR.String(), source, fmt.Sprintf(format, v...))
}

// Criticalf logs a formatted message at CRITICAL level.
func (l *Logger) Criticalf(source, format string, v ...interface{}) {
	l.log(CRITICAL, CRITICAL.String(), source, fmt.Sprintf(format, v...))
}
