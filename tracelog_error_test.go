package tracelog

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// badWriter is a writer that always fails for testing fallback behavior
type badWriter struct{}

func (w *badWriter) Write(p []byte) (n int, err error) {
	return 0, fmt.Errorf("simulated write error")
}

// flushWriter counts flushes after each write.
type flushWriter struct {
	bytes.Buffer
	flushes int
}

func (w *flushWriter) Flush() error {
	w.flushes++
	return nil
}

func TestConsoleWriteErrorReachesHandler(t *testing.T) {
	var mu sync.Mutex
	var got []error

	config := DefaultConfig()
	config.Console = &badWriter{}
	config.ErrorHandler = func(err error) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, err)
	}
	logger := New(config)
	defer logger.Close()

	assert.NotPanics(t, func() { logger.Warning("disk", "one\ntwo") })

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.EqualError(t, got[0], "simulated write error")
	assert.Len(t, logger.Records(), 2)
}

func TestConsoleFlushesEveryLine(t *testing.T) {
	out := &flushWriter{}
	config := DefaultConfig()
	config.Console = out
	logger := New(config)
	defer logger.Close()

	logger.Info("flush", "a\nb\nc")
	assert.Equal(t, 3, out.flushes)
	assert.Equal(t, 3, strings.Count(out.String(), "\n"))
}

func TestDefaultErrorHandlerIsRateLimited(t *testing.T) {
	logger := New(Config{Console: &bytes.Buffer{}})
	defer logger.Close()

	var stderr bytes.Buffer
	logger.fallbackWriter = &stderr

	for i := 0; i < 10; i++ {
		logger.handleError(errors.New("connection refused"))
	}

	assert.Equal(t, "LOGGER ERROR: connection refused\n", stderr.String())
}

func TestSinkErrorsDoNotReachCaller(t *testing.T) {
	var reported []error
	logger, _ := newTestLogger(t, func(c *Config) {
		c.ErrorHandler = func(err error) { reported = append(reported, err) }
	})

	path := filepath.Join(t.TempDir(), "small.log")
	s, err := newRotatingFileSink(Backend{Kind: BackendRotatingFile, Path: path, MaxBytes: megabyte, BackupCount: 1}, logger.handleError)
	require.NoError(t, err)
	logger.sinkMu.Lock()
	logger.sink = s
	logger.sinkMu.Unlock()

	assert.NotPanics(t, func() { logger.Error("big", strings.Repeat("x", 2*megabyte)) })
	logger.Error("small", "fits")

	require.Len(t, reported, 1)
	assert.Contains(t, reported[0].Error(), "log write error")
	assert.Len(t, logger.Records(), 2)
}

func TestZeroConfigIsUsable(t *testing.T) {
	var console bytes.Buffer
	logger := New(Config{Console: &console})
	defer logger.Close()

	assert.Equal(t, BackendDisabled, logger.Backend().Kind)
	assert.Equal(t, DefaultHistorySize, logger.history.Cap())

	logger.Debug("zero", "visible at DEBUG threshold")
	assert.Contains(t, console.String(), "visible at DEBUG threshold")
}
