// Package logger is a small levelled wrapper around the standard log package.
package logger

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

// ParseLevel maps a config string to a Level.
func ParseLevel(s string) (Level, error) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, errors.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

type Logger struct {
	level       Level
	debugLogger *log.Logger
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New writes debug/info/warn to stdout and errors to stderr.
func New(level Level) *Logger {
	return NewWithWriters(level, os.Stdout, os.Stderr)
}

func NewWithWriters(level Level, out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime
	return &Logger{
		level:       level,
		debugLogger: log.New(out, "[SNAKE-DEBUG] ", flags),
		infoLogger:  log.New(out, "[SNAKE-INFO] ", flags),
		warnLogger:  log.New(out, "[SNAKE-WARN] ", flags),
		errorLogger: log.New(errOut, "[SNAKE-ERROR] ", flags),
	}
}

// Discard drops everything. Handy in tests.
func Discard() *Logger {
	return NewWithWriters(LevelError+1, io.Discard, io.Discard)
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) Debugf(format string, v ...any) {
	if l.level <= LevelDebug {
		l.debugLogger.Printf(format, v...)
	}
}

func (l *Logger) Infof(format string, v ...any) {
	if l.level <= LevelInfo {
		l.infoLogger.Printf(format, v...)
	}
}

func (l *Logger) Warnf(format string, v ...any) {
	if l.level <= LevelWarn {
		l.warnLogger.Printf(format, v...)
	}
}

func (l *Logger) Errorf(format string, v ...any) {
	if l.level <= LevelError {
		l.errorLogger.Printf(format, v...)
	}
}

// Event logs a game event tagged with the game id.
func (l *Logger) Event(kind, gameID, details string) {
	l.Debugf("[EVENT:%s] game:%s | %s", kind, gameID, details)
}
