// Package tracelog provides a leveled, channel-aware logger for long running
// network daemons, with a bounded in-memory history for postmortem dumps.
//
// Overview:
// A Logger writes every line to exactly one backend, chosen once when it is
// built, and always remembers the last lines it saw. Operators can dump that
// history on demand (for example on SIGUSR1) even when the lines were never
// printed.
//
// Destinations:
//
// The Config.Destination field selects the backend:
// - nil: no external sink; lines reach the console only when their level
// passes Config.LogLevel
// - "": the local syslog socket (/dev/log, or /var/run/syslog on macOS),
// or UDP localhost:514 when the socket does not exist
// - "host:<name>": remote syslog over UDP on <name>:514
// - any other string: a file rotated at 5MB with 5 backups
//
// When a sink is active every line is sent to it, whatever its level. If the
// sink cannot be opened, New prints one CRITICAL line and falls back to the
// console; building a Logger never fails.
//
// Line format:
//
//	Mon, 02 Jan 2006 15:04:05 ERROR    4242   storage       disk full
//
// The level, pid and source columns are padded to 8, 6 and 13 characters.
//
// Channels:
//
// Channels are named sources that can be silenced independently of level:
//
//	config := tracelog.DefaultConfig()
//	config.Channels.Worker = true
//	logger := tracelog.New(config)
//
//	logger.Channel(tracelog.Worker, "accepted connection") // printed at INFO
//	logger.Channel(tracelog.HTTP, "GET / HTTP/1.1")       // history only
//
// A silenced channel leaves exactly one history record per call, labelled
// "info". Its message is rendered during the call, so later changes to the
// payload do not show up in the dump. A multi-line message stays one record
// and spans several lines of the dump.
//
// Deferred messages:
//
// Wrap expensive representations in a Deferred so they are built only when
// needed:
//
//	logger.Channel(tracelog.Client, tracelog.Defer("recv ", tracelog.HexString, packet))
//
// History:
//
//	fmt.Println(logger.History()) // the last 20 lines, oldest first
//
// Environment Overrides:
//
// Config.ApplyEnvOverrides reads LOG_DESTINATION ("none" disables),
// LOG_LEVEL, LOG_CHANNELS (comma separated, or "all") and LOG_HISTORY.
//
// Errors:
//
// Logging calls never return errors. Write failures on the active sink are
// passed to Config.ErrorHandler, or printed to stderr at most once a second.
package tracelog
