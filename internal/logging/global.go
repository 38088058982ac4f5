package logging

import "sync/atomic"

var (
	global atomic.Pointer[Logger]
	noop   = NewNoop()
)

// Global returns the process-wide logger, or a no-op logger when none is
// installed.
func Global() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return noop
}

// SetGlobal installs l as the process-wide logger. nil restores the no-op
// logger.
func SetGlobal(l *Logger) {
	global.Store(l)
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) {
	Global().Debug(msg, args...)
}

// Info logs an info message using the global logger.
func Info(msg string, args ...any) {
	Global().Info(msg, args...)
}

// With returns the global logger with the given attributes added.
func With(args ...any) *Logger {
	return Global().With(args...)
}

// InitGlobal builds a logger from config and installs it.
// If config is nil, default configuration is used.
func InitGlobal(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	SetGlobal(l)
	return nil
}

// CloseGlobal uninstalls the global logger and closes its log file.
func CloseGlobal() error {
	if l := global.Swap(nil); l != nil {
		return l.Close()
	}
	return nil
}
