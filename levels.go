package tracelog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LogLevel represents the severity level of a log message.
// Higher values indicate more severe log levels; a lower configured
// threshold lets more messages through to the console.
type LogLevel int32

// Log level constants defining the supported severity levels.
//
// Levels are ordered from least to most severe:
// - DEBUG: Detailed information for debugging
// - INFO: General operational information
// - WARNING: Potentially harmful situations
// - ERROR: Serious problems
// - CRITICAL: Failures the operator must see
const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	CRITICAL
)

// String converts a LogLevel to its upper-case name, which is also the
// default label written into each formatted line.
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case CRITICAL:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel converts a string to its corresponding LogLevel.
//
// Parameters:
//   - level: String representation of the log level (case-insensitive)
//
// Returns:
//   - LogLevel: Corresponding log level constant
//   - error: Error if the input string is not a valid log level
//
// Example:
//
//	level, err := ParseLogLevel("warning")
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(level) // Output: WARNING
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARNING, nil
	case "ERR", "ERROR":
		return ERROR, nil
	case "CRIT", "CRITICAL", "FATAL":
		return CRITICAL, nil
	default:
		return DEBUG, fmt.Errorf("invalid log level: %s", level)
	}
}

// MarshalJSON writes the level by name.
func (l LogLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts either a level name ("info") or its numeric value (1).
func (l *LogLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseLogLevel(name)
		if err != nil {
			return err
		}
		*l = parsed
		return nil
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid log level: %s", data)
	}
	if n < int(DEBUG) || n > int(CRITICAL) {
		return fmt.Errorf("log level out of range: %d", n)
	}
	*l = LogLevel(n)
	return nil
}
