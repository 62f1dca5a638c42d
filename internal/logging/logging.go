package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects how the logger is built.
type Options struct {
	Level  string
	Format string // "text" or "json"

	// File receives log output when set; otherwise Fallback does.
	File     string
	Fallback io.Writer
}

// New builds a logger from opts. The returned close func releases the log
// file, if one was opened.
func New(opts Options) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	noop := func() error { return nil }

	level, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return nil, noop, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	closer := noop
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		closer = f.Close
	case opts.Fallback != nil:
		log.SetOutput(opts.Fallback)
	default:
		log.SetOutput(os.Stderr)
	}

	log.Debugf("log level set to: %s", log.GetLevel())
	return log, closer, nil
}
