package tracelog

import (
	"fmt"
	"time"
)

// TimestampFormat is the layout used for the leading timestamp of every line.
const TimestampFormat = "Mon, 02 Jan 2006 15:04:05"

// Record is a single log line as retained in the history.
//
// Records created by a Logger hold already rendered text. A record left by a
// silenced channel keeps the whole message, newlines included.
type Record struct {
	Time    time.Time
	Level   string
	Source  string
	Message fmt.Stringer
}

// text is an already rendered message.
type text string

func (t text) String() string { return string(t) }

// formatRecord lays a record out as
//
//	timestamp level(8) pid(6) source(13) message
//
// Every field is left justified; longer values are never truncated.
func formatRecord(pid int, r Record) string {
	var message string
	if r.Message != nil {
		message = r.Message.String()
	}
	return fmt.Sprintf("%s %-8s %-6d %-13s %s",
		r.Time.Format(TimestampFormat),
		r.Level,
		pid,
		r.Source,
		message,
	)
}

// materialize renders a caller supplied message exactly once.
func materialize(message any) string {
	switch m := message.(type) {
	case nil:
		return ""
	case string:
		return m
	case []byte:
		return string(m)
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprint(m)
	}
}
