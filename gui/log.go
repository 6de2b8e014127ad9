package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls the level of the default GUI logger.
// Defaults to Info; SetVerbose(true) lowers it to Debug.
var guiLogLevel = new(slog.LevelVar)

var guiLogger = newDefaultLogger()

func newDefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))
}

// SetVerbose enables or disables debug logging for GUI components.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiVerbose guards log calls whose arguments are costly to build.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// SetLogger replaces the logger used by the GUI and the widgets built on it.
// Passing nil restores the default stderr text logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	guiLogger = l
}

// Logger returns the logger widgets outside this package should log to.
func Logger() *slog.Logger {
	return guiLogger
}
