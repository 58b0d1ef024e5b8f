package tracelog

import (
	"fmt"
	"strings"
)

// Deferred holds a message whose text is only built when a Logger needs
// it. Payloads that are expensive to render (packet dumps, request bodies)
// should be wrapped in a Deferred rather than formatted up front: a record
// for a silenced channel keeps the Deferred as-is and only renders it if
// the history is dumped.
type Deferred[T any] struct {
	Prefix  string
	Render  func(T) string
	Payload T
}

// Defer wraps payload so that render(payload) runs lazily. render may be nil,
// in which case the payload is used as text directly.
//
// Example:
//
//	logger.Channel(tracelog.Client, tracelog.Defer("sent ", tracelog.HexString, packet))
func Defer[T any](prefix string, render func(T) string, payload T) *Deferred[T] {
	return &Deferred[T]{Prefix: prefix, Render: render, Payload: payload}
}

// String materializes the message. It is not cached: each call renders again.
func (d *Deferred[T]) String() string {
	if d.Render != nil {
		return d.Prefix + d.Render(d.Payload)
	}
	if s, ok := any(d.Payload).(string); ok {
		return d.Prefix + s
	}
	return d.Prefix + fmt.Sprint(d.Payload)
}

// Split materializes the message and splits it around sep.
func (d *Deferred[T]) Split(sep string) []string {
	return strings.Split(d.String(), sep)
}

// HexString renders every byte as a quoted hex literal, e.g. ['0x47', '0x45'].
func HexString(value []byte) string {
	var builder strings.Builder
	builder.Grow(len(value)*8 + 2)
	builder.WriteByte('[')
	for i, b := range value {
		if i > 0 {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "'%#x'", b)
	}
	builder.WriteByte(']')
	return builder.String()
}

// SingleLine brackets value and escapes CRLF pairs so a protocol header
// block fits on one log line.
func SingleLine(value string) string {
	return "[" + strings.ReplaceAll(value, "\r\n", `\r\n`) + "]"
}
