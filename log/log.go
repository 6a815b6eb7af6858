// Package log provides named, leveled loggers for the renderer,
// backed by go-logging.
package log

import (
	"io"
	"os"

	logging "github.com/op/go-logging"
)

// Level mirrors the go-logging levels we expose
type Level int

// The levels that can be passed to SetLevel
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// Logger is the leveled logging interface handed out to packages
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// New creates a named logger
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink overrides the backend output sink
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	withFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(withFormatter)
	leveledBackend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel adjusts the minimum level emitted by all loggers
func SetLevel(level Level) {
	if leveledBackend == nil {
		SetSink(os.Stderr)
	}
	var mapped logging.Level
	switch level {
	case Debug:
		mapped = logging.DEBUG
	case Info:
		mapped = logging.INFO
	case Notice:
		mapped = logging.NOTICE
	case Warning:
		mapped = logging.WARNING
	default:
		mapped = logging.ERROR
	}
	leveledBackend.SetLevel(mapped, "")
}

func init() {
	SetSink(os.Stderr)
}
