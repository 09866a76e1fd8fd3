// Package logging configures the logrus logger shared by the command line
// tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Supported formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup builds a logger writing to out (stderr when nil). An empty level
// means info and an empty format means text.
func Setup(level, format string, out io.Writer) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	if level == "" {
		level = "info"
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unsupported log level: %s", level)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)

	pretty := func(f *runtime.Frame) (string, string) {
		return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
	}

	switch format {
	case "", FormatText:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  time.RFC3339,
			DisableColors:    true,
			CallerPrettyfier: pretty,
		})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339,
			CallerPrettyfier: pretty,
		})
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
	return l, nil
}
