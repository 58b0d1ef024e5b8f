package tracelog

import (
	"fmt"
	"strings"
	"time"
)

// Channel is a named logical source of messages, filtered independently of
// severity.
type Channel int

const (
	// Supervisor carries signal handling and shutdown messages.
	Supervisor Channel = iota
	// Daemon carries daemonisation: forking, pid files, privilege drops.
	Daemon
	// Server carries connection handling.
	Server
	// Client carries the data exchanged with clients.
	Client
	// Manager carries the state of worker processes.
	Manager
	// Worker carries the state of each worker thread.
	Worker
	// Download carries the state of each download.
	Download
	// HTTP carries the state of each HTTP exchange.
	HTTP
)

var channelNames = [...]string{
	Supervisor: "supervisor",
	Daemon:     "daemon",
	Server:     "server",
	Client:     "client",
	Manager:    "manager",
	Worker:     "worker",
	Download:   "download",
	HTTP:       "http",
}

// silencedLevel labels history records left by a disabled channel.
const silencedLevel = "info"

func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return fmt.Sprintf("channel(%d)", int(c))
	}
	return channelNames[c]
}

// Channels lists every known channel in declaration order.
func Channels() []Channel {
	out := make([]Channel, len(channelNames))
	for i := range channelNames {
		out[i] = Channel(i)
	}
	return out
}

// ParseChannel returns the channel called name (case-insensitive).
func ParseChannel(name string) (Channel, error) {
	for i, n := range channelNames {
		if strings.EqualFold(n, name) {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown channel: %s", name)
}

// Channel logs message on ch under the channel's own name.
func (l *Logger) Channel(ch Channel, message any) {
	l.ChannelAs(ch, ch.String(), message)
}

// ChannelAs logs message on ch under source, which replaces the channel name
// in the output (e.g. "worker 12" for a particular worker thread).
//
// If ch is enabled the message is logged at INFO like any other message.
// Otherwise nothing is written anywhere except a single history record. The
// message is rendered before ChannelAs returns, so a payload reused by the
// caller afterwards does not change what the history shows.
func (l *Logger) ChannelAs(ch Channel, source string, message any) {
	if l.channels.Enabled(ch) {
		l.Info(source, message)
		return
	}
	l.history.Record(Record{
		Time:    time.Now(),
		Level:   silencedLevel,
		Source:  source,
		Message: text(l.render(message)),
	})
}
