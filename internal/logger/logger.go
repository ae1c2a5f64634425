package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

var (
	debugMode   = false
	debugLogger *slog.Logger
)

func init() {
	// DEBUG 환경변수로 활성화 (--debug 플래그로도 가능)
	debugMode = enabledByEnv(os.Getenv("DEBUG"))
	// stdout은 프롬프트 전용이므로 stderr로 출력
	debugLogger = newLogger(os.Stderr)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func enabledByEnv(v string) bool {
	return v == "1" || v == "true"
}

// SetDebugMode enables/disables debug logging
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// IsDebugMode returns current debug mode status
func IsDebugMode() bool {
	return debugMode
}

// SetOutput redirects debug output to w
func SetOutput(w io.Writer) {
	debugLogger = newLogger(w)
}

// Debug logs a debug message with caller info
func Debug(format string, args ...interface{}) {
	if !debugMode {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	debugLogger.Debug(fmt.Sprintf(format, args...),
		slog.String("caller", fmt.Sprintf("%s:%d", filepath.Base(file), line)))
}

// DebugFunc logs function entry/exit
func DebugFunc(name string) func() {
	if !debugMode {
		return func() {}
	}
	debugLogger.Debug(fmt.Sprintf("→ %s()", name))
	return func() {
		debugLogger.Debug(fmt.Sprintf("← %s()", name))
	}
}
