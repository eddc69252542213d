// Package logging builds the process logger and adapts it to the engine's
// logging seam.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New creates a logger writing to stderr at level in the given format
func New(level, format string) (*logrus.Logger, error) {
	return NewWithOutput(os.Stderr, level, format)
}

// NewWithOutput creates a logger writing to w
func NewWithOutput(w io.Writer, level, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	lvl := logrus.InfoLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unsupported log format %q (want %s or %s)", format, FormatText, FormatJSON)
	}

	return logger, nil
}

// Adapter exposes a logrus entry through the engine's Logger interface
type Adapter struct {
	entry *logrus.Entry
}

// NewAdapter wraps logger, tagging every line with the component name
func NewAdapter(logger *logrus.Logger, component string) *Adapter {
	return &Adapter{entry: logger.WithField("component", component)}
}

func (a *Adapter) Debugf(format string, args ...any) { a.entry.Debugf(format, args...) }
func (a *Adapter) Infof(format string, args ...any)  { a.entry.Infof(format, args...) }
func (a *Adapter) Warnf(format string, args ...any)  { a.entry.Warnf(format, args...) }
func (a *Adapter) Errorf(format string, args ...any) { a.entry.Errorf(format, args...) }
