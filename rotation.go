package tracelog

import (
	"fmt"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

const megabyte = 1024 * 1024

// rotatingFileSink appends lines to a file that is rotated by size, keeping
// a bounded number of backups next to it.
type rotatingFileSink struct {
	file    *lumberjack.Logger
	onError func(error)
}

// newRotatingFileSink checks that the file can be opened for appending
// before handing it to lumberjack, which would otherwise only open it (and
// create missing directories) on the first write.
func newRotatingFileSink(b Backend, onError func(error)) (*rotatingFileSink, error) {
	probe, err := os.OpenFile(b.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	if err := probe.Close(); err != nil {
		return nil, err
	}

	maxSize := int(b.MaxBytes / megabyte)
	if maxSize < 1 {
		maxSize = 1
	}

	return &rotatingFileSink{
		file: &lumberjack.Logger{
			Filename:   b.Path,
			MaxSize:    maxSize,
			MaxBackups: b.BackupCount,
		},
		onError: onError,
	}, nil
}

func (s *rotatingFileSink) write(_ LogLevel, line string) {
	if _, err := s.file.Write([]byte(line + "\n")); err != nil && s.onError != nil {
		s.onError(fmt.Errorf("log write error: %w", err))
	}
}

func (s *rotatingFileSink) Close() error {
	return s.file.Close()
}
