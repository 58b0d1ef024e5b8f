//go:build !windows && !plan9

package tracelog

import (
	"bytes"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteSyslogForwardsRegardlessOfThreshold(t *testing.T) {
	var console bytes.Buffer
	config := DefaultConfig()
	config.Destination = Destination("host:127.0.0.1")
	config.LogLevel = INFO
	config.Console = &console
	config.ErrorHandler = func(error) {}

	logger := New(config)
	defer logger.Close()

	require.Equal(t, Backend{Kind: BackendRemoteSyslog, Host: "127.0.0.1", Port: SyslogPort}, logger.Backend())

	// Nothing listens on 514; every write must still return normally.
	for i := 0; i < 5; i++ {
		assert.NotPanics(t, func() { logger.Error("storage", "disk full") })
		assert.NotPanics(t, func() { logger.Debug("storage", "below threshold") })
	}

	assert.Empty(t, console.String())
	records := logger.Records()
	require.Len(t, records, 10)
	assert.True(t, strings.HasSuffix(logger.format(records[0]), col("storage", "disk full")))
}

func TestRemoteSyslogDelivers(t *testing.T) {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp not available: %v", err)
	}
	defer conn.Close()

	port := conn.LocalAddr().(*net.UDPAddr).Port
	backend := Backend{Kind: BackendRemoteSyslog, Host: "127.0.0.1", Port: port}
	s, err := openSink(backend, nil)
	require.NoError(t, err)

	logger, console := newTestLogger(t, nil)
	logger.sinkMu.Lock()
	logger.sink = s
	logger.backend = backend
	logger.sinkMu.Unlock()

	logger.Error("storage", "disk full")

	buf := make([]byte, 2048)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, _, err := conn.ReadFrom(buf)
	require.NoError(t, err)

	packet := string(buf[:n])
	assert.True(t, strings.HasPrefix(packet, "<11>"), "user.err priority, got %q", packet)
	assert.Contains(t, packet, col("storage", "disk full"))
	assert.Empty(t, console.String())
}

func TestLocalSyslogSocket(t *testing.T) {
	socket := t.TempDir() + "/log"
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: socket, Net: "unixgram"})
	if err != nil {
		t.Skipf("unixgram not available: %v", err)
	}
	defer conn.Close()

	s, err := openSink(Backend{Kind: BackendLocalSyslog, SocketPath: socket}, nil)
	require.NoError(t, err)
	defer s.Close()

	s.write(WARNING, "queue almost full")

	buf := make([]byte, 2048)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, _, err := conn.ReadFromUnix(buf)
	require.NoError(t, err)

	packet := string(buf[:n])
	assert.True(t, strings.HasPrefix(packet, "<12>"), "user.warning priority, got %q", packet)
	assert.Contains(t, packet, "queue almost full")
}

func TestSyslogDialFailure(t *testing.T) {
	s, err := openSink(Backend{Kind: BackendLocalSyslog, SocketPath: t.TempDir() + "/missing"}, nil)
	assert.Error(t, err)
	assert.Nil(t, s)
}
