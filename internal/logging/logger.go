// Package logging provides the leveled text logger used across the
// server, grounded on the teacher's internal/common.Logger: one
// *log.Logger per level, all writing to stderr with a level-tagged prefix.
package logging

import (
	"log"
	"os"
)

// Level names of the four sub-loggers.
const (
	Info  = "INFO"
	Warn  = "WARN"
	Error = "ERROR"
	Debug = "DEBUG"
)

// Logger is a custom logger with independent sub-loggers per level.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
	debug *log.Logger
}

// New initializes and returns a new Logger instance.
func New() *Logger {
	return &Logger{
		info:  log.New(os.Stderr, "[INFO]  ", log.Ldate|log.Ltime),
		warn:  log.New(os.Stderr, "[WARN]  ", log.Ldate|log.Ltime),
		error: log.New(os.Stderr, "[ERROR] ", log.Ldate|log.Ltime),
		debug: log.New(os.Stderr, "[DEBUG] ", log.Ldate|log.Ltime),
	}
}

func (l *Logger) Info(format string, v ...interface{})  { l.info.Printf(format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.warn.Printf(format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.error.Printf(format, v...) }
func (l *Logger) Debug(format string, v ...interface{}) { l.debug.Printf(format, v...) }
