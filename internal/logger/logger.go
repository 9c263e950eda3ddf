package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the service logger. Output always goes to stdout and is
// additionally appended to filePath when set. An unknown level falls back to info.
func New(levelStr string, filePath string) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	writers := []io.Writer{os.Stdout}
	var closer io.Closer = nopCloser{}
	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		writers = append(writers, file)
		closer = file
	}
	log.SetOutput(io.MultiWriter(writers...))

	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
