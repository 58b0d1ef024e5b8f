package tracelog

import (
	"bytes"
	"io"
	"sync"
)

// sink is an external destination that receives every formatted line.
// Implementations report write failures through their error callback and
// never return them to the logging call.
type sink interface {
	write(level LogLevel, line string)
	Close() error
}

// consoleWriter serializes whole lines onto a writer, one Write per line.
type consoleWriter struct {
	mu         sync.Mutex
	out        io.Writer
	bufferPool sync.Pool
	onError    func(error)
}

func newConsoleWriter(out io.Writer, onError func(error)) *consoleWriter {
	return &consoleWriter{
		out:     out,
		onError: onError,
		bufferPool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, 256))
			},
		},
	}
}

func (c *consoleWriter) writeLine(line string) {
	buf := c.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.WriteString(line)
	buf.WriteByte('\n')

	c.mu.Lock()
	_, err := c.out.Write(buf.Bytes())
	if f, ok := c.out.(interface{ Flush() error }); ok && err == nil {
		err = f.Flush()
	}
	c.mu.Unlock()

	c.bufferPool.Put(buf)
	if err != nil && c.onError != nil {
		c.onError(err)
	}
}
