// Package dlog is a thin logrus wrapper that tags each line with the calling function.
package dlog

import (
	"io"
	"runtime"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

const fnKey = "fn"

func init() {
	logrus.SetFormatter(&lineFormatter{})
}

// Rolling log file settings.
type NewRollingLogFileParam struct {
	Filename   string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
}

func BuildRollingLogFileWriter(p NewRollingLogFileParam) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   p.Filename,
		MaxSize:    p.MaxSize,
		MaxAge:     p.MaxAge,
		MaxBackups: p.MaxBackups,
		LocalTime:  true,
	}
}

func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// Parse level name case-insensitively, e.g., "debug", "WARN".
func ParseLogLevel(name string) (logrus.Level, bool) {
	lv, err := logrus.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return logrus.InfoLevel, false
	}
	return lv, true
}

// Change level, returns false if the name is not recognized.
func SetLogLevel(name string) bool {
	lv, ok := ParseLogLevel(name)
	if ok {
		logrus.SetLevel(lv)
	}
	return ok
}

func IsDebugLevel() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}

func Debugf(format string, args ...any) {
	logf(logrus.DebugLevel, format, args)
}

func Infof(format string, args ...any) {
	logf(logrus.InfoLevel, format, args)
}

func Warnf(format string, args ...any) {
	logf(logrus.WarnLevel, format, args)
}

func Errorf(format string, args ...any) {
	logf(logrus.ErrorLevel, format, args)
}

func logf(lv logrus.Level, format string, args []any) {
	if !logrus.IsLevelEnabled(lv) {
		return
	}
	logrus.WithField(fnKey, callerFn(3)).Logf(lv, format, args...)
}

// Name of the function skip frames above callerFn, without its package path.
func callerFn(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip+1, pcs[:]) < 1 {
		return ""
	}
	f, _ := runtime.CallersFrames(pcs[:]).Next()
	return shortFnName(f.Function)
}

func shortFnName(fn string) string {
	return fn[strings.LastIndexByte(fn, '/')+1:]
}
