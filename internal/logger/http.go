package logger

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// HTTPLogger 记录与求值服务之间的请求、响应与错误。
type HTTPLogger interface {
	Request(requestID, method, path, body string)
	Response(requestID string, status int, body string, elapsed time.Duration)
	Error(requestID string, err error, elapsed time.Duration)
}

// maxLoggedBody 限制单条日志中的 body 长度。
const maxLoggedBody = 2048

// StdHTTPLogger 使用 logrus 输出日志。
type StdHTTPLogger struct {
	logger *logrus.Entry
}

// NewHTTPLogger 构造默认的 HTTP 日志记录器，l 为 nil 时使用全局 logger。
func NewHTTPLogger(l *Logger) *StdHTTPLogger {
	if l == nil {
		l = root()
	}
	return &StdHTTPLogger{logger: logrus.NewEntry(l).WithField("component", "api")}
}

// Request 记录一次请求。
func (l *StdHTTPLogger) Request(requestID, method, path, body string) {
	l.printf(logrus.DebugLevel, "-> %s %s id=%s body=%s", method, path, requestID, sanitize(body))
}

// Response 记录一次响应。
func (l *StdHTTPLogger) Response(requestID string, status int, body string, elapsed time.Duration) {
	l.printf(logrus.DebugLevel, "<- status=%d id=%s elapsed=%s body=%s", status, requestID, elapsed.Round(time.Millisecond), sanitize(body))
}

// Error 记录请求错误。
func (l *StdHTTPLogger) Error(requestID string, err error, elapsed time.Duration) {
	l.printf(logrus.WarnLevel, "!! error id=%s elapsed=%s err=%v", requestID, elapsed.Round(time.Millisecond), err)
}

// NoopHTTPLogger 忽略所有日志输出。
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) Request(requestID, method, path, body string)                              {}
func (NoopHTTPLogger) Response(requestID string, status int, body string, elapsed time.Duration) {}
func (NoopHTTPLogger) Error(requestID string, err error, elapsed time.Duration)                  {}

func (l *StdHTTPLogger) printf(level logrus.Level, format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	if !l.logger.Logger.IsLevelEnabled(level) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	entry := l.logger
	if caller := findCaller(); caller != "" {
		entry = entry.WithField("caller", caller)
	}
	entry.Log(level, msg)
}

func sanitize(text string) string {
	if len(text) > maxLoggedBody {
		text = text[:maxLoggedBody] + "…"
	}
	text = strings.ReplaceAll(text, "\n", `\n`)
	text = strings.ReplaceAll(text, "\r", `\r`)
	return text
}

func findCaller() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !strings.Contains(frame.File, "logger/http.go") {
			return fmt.Sprintf("%s:%d", shortenFilePath(frame.File), frame.Line)
		}
		if !more {
			break
		}
	}
	return ""
}
