package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = New()

type Logger struct {
	base    *logrus.Logger
	entry   *logrus.Entry
	console io.Writer
	file    *lumberjack.Logger
}

// Config mirrors the log keys of pong.properties.
type Config struct {
	Filename   string
	MaxSize    string
	MaxBackups string
	MaxAge     string
	Compress   string
	Level      string
	// Console echoes every message to stdout. Leave it off while the
	// terminal belongs to the game screen.
	Console    bool
}

// New returns a logger that discards everything until Init is called.
func New() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	base.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{base: base, entry: logrus.NewEntry(base)}
}

func (l *Logger) Init(cfg Config) {
	l.base.SetFormatter(&logrus.JSONFormatter{})

	if cfg.Filename != "" {
		l.file = &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cast.ToInt(cfg.MaxSize),
			MaxBackups: cast.ToInt(cfg.MaxBackups),
			MaxAge:     cast.ToInt(cfg.MaxAge),
			Compress:   cast.ToBool(cfg.Compress),
		}
		l.base.SetOutput(l.file)
	} else {
		l.base.SetOutput(io.Discard)
	}

	if cfg.Console {
		l.console = os.Stdout
	} else {
		l.console = nil
	}

	l.base.SetLevel(parseLevel(cfg.Level))
	l.entry = l.base.WithField("session", uuid.NewString())
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.entry.WithField(key, value)
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) echo(level, message string) {
	if l.console != nil {
		fmt.Fprintln(l.console, level, message)
	}
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	l.echo("Debug:", message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.echo("Warn:", message)
}
