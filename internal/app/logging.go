package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/bookconnect/internal/config"
	"github.com/blackwell-systems/bookconnect/internal/util"
	"github.com/sirupsen/logrus"
)

var (
	logFile     *os.File
	logToStderr bool
)

// setupLogging points the diagnostic log at its destination. Logs are
// discarded unless --debug or a log file is given. Nothing is written to
// stdout, and stderr logging is moved to a file before the browser starts.
func setupLogging(lc config.LogConfig, debug bool) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		return fmt.Errorf("invalid log.level %q: %w", lc.Level, err)
	}
	if debug {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	closeLogging()
	logToStderr = false
	switch {
	case lc.File != "":
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
		logrus.SetOutput(f)
	case debug:
		logToStderr = true
		logrus.SetOutput(os.Stderr)
	default:
		logrus.SetOutput(io.Discard)
	}
	return nil
}

// tuiLogPath is where --debug logs go while the browser owns the terminal.
func tuiLogPath() string {
	return filepath.Join(filepath.Dir(configPath()), "debug.log")
}

// redirectLogsForTUI moves stderr logging into the file at path. The
// browser draws on the alternate screen and any write to the terminal
// corrupts it. Discarded or file-backed logs are left alone.
func redirectLogsForTUI(path string) error {
	if !logToStderr {
		return nil
	}
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logFile = f
	logToStderr = false
	logrus.SetOutput(f)
	return nil
}

func closeLogging() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
