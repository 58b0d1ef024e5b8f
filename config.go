package tracelog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DestinationDisabled is the LOG_DESTINATION value that disables every
// external sink.
const DestinationDisabled = "none"

var (
	defaultLogLevel    = INFO
	defaultHistorySize = DefaultHistorySize
)

// Config defines how a Logger is built. It is read once by New.
//
// Fields:
//   - Destination: nil disables external sinks; "" selects local syslog;
//     "host:<name>" selects remote syslog; anything else is a file path
//   - LogLevel: console threshold used when no external sink is active
//   - Channels: which named channels are printed rather than only recorded
//   - HistorySize: records kept for History (default 20)
//   - Console: where console lines go (default os.Stdout)
//   - ErrorHandler: receives sink write errors (default: rate limited stderr)
//
// Example:
//
//	config := tracelog.DefaultConfig()
//	config.Destination = tracelog.Destination("host:10.0.0.5")
//	config.Channels.Worker = true
//	logger := tracelog.New(config)
type Config struct {
	Destination  *string      `json:"destination"`
	LogLevel     LogLevel     `json:"log_level"`
	Channels     ChannelFlags `json:"channels"`
	HistorySize  int          `json:"history_size"`
	Console      io.Writer    `json:"-"`
	ErrorHandler func(error)  `json:"-"`
}

// ChannelFlags enables console or sink output per channel. A disabled
// channel still leaves a record in the history.
type ChannelFlags struct {
	Supervisor bool `json:"supervisor"`
	Daemon     bool `json:"daemon"`
	Server     bool `json:"server"`
	Client     bool `json:"client"`
	Manager    bool `json:"manager"`
	Worker     bool `json:"worker"`
	Download   bool `json:"download"`
	HTTP       bool `json:"http"`
}

// Enabled reports whether ch is enabled. Unknown channels are disabled.
func (f ChannelFlags) Enabled(ch Channel) bool {
	if p := f.flag(ch); p != nil {
		return *p
	}
	return false
}

// Set enables or disables ch.
func (f *ChannelFlags) Set(ch Channel, enabled bool) {
	if p := f.flag(ch); p != nil {
		*p = enabled
	}
}

func (f *ChannelFlags) flag(ch Channel) *bool {
	switch ch {
	case Supervisor:
		return &f.Supervisor
	case Daemon:
		return &f.Daemon
	case Server:
		return &f.Server
	case Client:
		return &f.Client
	case Manager:
		return &f.Manager
	case Worker:
		return &f.Worker
	case Download:
		return &f.Download
	case HTTP:
		return &f.HTTP
	default:
		return nil
	}
}

// Destination returns a pointer to dest, for use in Config.Destination.
func Destination(dest string) *string {
	return &dest
}

// DefaultConfig returns a console-only configuration at INFO with every
// channel silenced.
func DefaultConfig() Config {
	return Config{
		LogLevel:    defaultLogLevel,
		HistorySize: defaultHistorySize,
	}
}

// Validate checks the values New cannot repair on its own.
func (c *Config) Validate() error {
	if c.HistorySize < 0 {
		return fmt.Errorf("HistorySize cannot be negative")
	}
	if c.LogLevel < DEBUG || c.LogLevel > CRITICAL {
		return fmt.Errorf("invalid log level: %d", c.LogLevel)
	}
	return nil
}

// ApplyEnvOverrides replaces settings from the environment:
//   - LOG_DESTINATION: destination string, or "none" to disable
//   - LOG_LEVEL: threshold name ("debug", "warning", ...)
//   - LOG_CHANNELS: comma separated channel names to enable, or "all"
//   - LOG_HISTORY: history size
//
// Malformed values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if dest, ok := os.LookupEnv("LOG_DESTINATION"); ok {
		if strings.EqualFold(strings.TrimSpace(dest), DestinationDisabled) {
			c.Destination = nil
		} else {
			c.Destination = Destination(dest)
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if parsed, err := ParseLogLevel(level); err == nil {
			c.LogLevel = parsed
		}
	}
	if channels := os.Getenv("LOG_CHANNELS"); channels != "" {
		for _, name := range strings.Split(channels, ",") {
			name = strings.TrimSpace(name)
			if strings.EqualFold(name, "all") {
				for _, ch := range Channels() {
					c.Channels.Set(ch, true)
				}
				continue
			}
			if ch, err := ParseChannel(name); err == nil {
				c.Channels.Set(ch, true)
			}
		}
	}
	if size := os.Getenv("LOG_HISTORY"); size != "" {
		if n, err := strconv.Atoi(size); err == nil && n > 0 {
			c.HistorySize = n
		}
	}
}

// WithConfig builds a Logger from a JSON document. Missing fields take
// their DefaultConfig values.
//
// Example:
//
//	logger, err := tracelog.WithConfig(`{
//	    "destination": "/var/log/proxy.log",
//	    "log_level": "warning",
//	    "channels": {"worker": true, "http": true}
//	}`)
func WithConfig(jsonConfig string) (*Logger, error) {
	config := DefaultConfig()
	if err := json.Unmarshal([]byte(jsonConfig), &config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return New(config), nil
}
