// Copyright (C) 2024-2025 the go-exposure authors.
// This file is part of go-exposure
//
// go-exposure is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-exposure is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-exposure.  If not, see <https://www.gnu.org/licenses/>.

// Package logging wraps logrus behind a small Logger interface.
//
// To log to the shared base logger:
//
//	logging.Base().Info("approximation finished")
//
// To log to an independent logger:
//
//	log := logging.NewLogger()
//	log.SetLevel(logging.Debug)
package logging

import (
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level refers to the logging priority of a message.
type Level uint32

// Logging levels, highest severity first.
const (
	// Panic logs and then panics with the message.
	Panic Level = iota
	// Fatal logs and then calls os.Exit(1).
	Fatal
	// Error is for faults that should definitely be noted.
	Error
	// Warn is for non-critical entries that deserve eyes.
	Warn
	// Info is for general operational entries.
	Info
	// Debug is verbose logging, usually only enabled while debugging.
	Debug
)

// Fields maps logrus fields.
type Fields = logrus.Fields

var (
	baseLogger Logger
	once       sync.Once
)

// Init ensures the base logger has been initialized.
func Init() {
	once.Do(func() {
		// By default, log to stderr (logrus's default), warnings and above.
		baseLogger = NewLogger()
		baseLogger.SetLevel(Warn)
	})
}

func init() {
	Init()
}

// Logger is the interface for loggers.
type Logger interface {
	// Debug logs a message at level Debug.
	Debug(...interface{})
	Debugf(string, ...interface{})

	// Info logs a message at level Info.
	Info(...interface{})
	Infof(string, ...interface{})

	// Warn logs a message at level Warn.
	Warn(...interface{})
	Warnf(string, ...interface{})

	// Error logs a message at level Error.
	Error(...interface{})
	Errorf(string, ...interface{})

	// Fatal logs a message at level Fatal.
	Fatal(...interface{})
	Fatalf(string, ...interface{})

	// With adds one key-value pair to the log.
	With(key string, value interface{}) Logger

	// WithFields logs a message with specific fields.
	WithFields(Fields) Logger

	// SetLevel sets the logging level (Info by default for new loggers).
	SetLevel(Level)
	GetLevel() Level
	IsLevelEnabled(level Level) bool

	// SetOutput sets the output target.
	SetOutput(io.Writer)

	// SetJSONFormatter switches the logger to JSON output.
	SetJSONFormatter()

	// source adds file, line and function fields to the event
	source() *logrus.Entry
}

type logger struct {
	entry *logrus.Entry
}

func (l logger) Debug(args ...interface{}) {
	l.source().Debug(args...)
}

func (l logger) Debugf(format string, args ...interface{}) {
	l.source().Debugf(format, args...)
}

func (l logger) Info(args ...interface{}) {
	l.source().Info(args...)
}

func (l logger) Infof(format string, args ...interface{}) {
	l.source().Infof(format, args...)
}

func (l logger) Warn(args ...interface{}) {
	l.source().Warn(args...)
}

func (l logger) Warnf(format string, args ...interface{}) {
	l.source().Warnf(format, args...)
}

func (l logger) Error(args ...interface{}) {
	l.source().Error(args...)
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.source().Errorf(format, args...)
}

func (l logger) Fatal(args ...interface{}) {
	l.source().Fatal(args...)
}

func (l logger) Fatalf(format string, args ...interface{}) {
	l.source().Fatalf(format, args...)
}

func (l logger) With(key string, value interface{}) Logger {
	return logger{l.entry.WithField(key, value)}
}

func (l logger) WithFields(fields Fields) Logger {
	return logger{l.source().WithFields(fields)}
}

func (l logger) SetLevel(lvl Level) {
	l.entry.Logger.Level = logrus.Level(lvl)
}

func (l logger) GetLevel() Level {
	return Level(l.entry.Logger.Level)
}

func (l logger) IsLevelEnabled(level Level) bool {
	return l.entry.Logger.Level >= logrus.Level(level)
}

func (l logger) SetOutput(w io.Writer) {
	l.entry.Logger.Out = w
}

func (l logger) SetJSONFormatter() {
	l.entry.Logger.Formatter = &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000000Z07:00"}
}

func (l logger) source() *logrus.Entry {
	event := l.entry

	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return event
	}
	slash := strings.LastIndex(file, "/")
	event = event.WithFields(logrus.Fields{
		"file": file[slash+1:],
		"line": line,
	})
	if function := runtime.FuncForPC(pc); function != nil {
		event = event.WithField("function", function.Name())
	}
	return event
}

// Base returns the default shared Logger.
func Base() Logger {
	return baseLogger
}

// NewLogger returns a new Logger logging to stderr.
func NewLogger() Logger {
	l := logrus.New()
	out := logger{logrus.NewEntry(l)}
	if tf, ok := out.entry.Logger.Formatter.(*logrus.TextFormatter); ok {
		tf.TimestampFormat = "2006-01-02T15:04:05.000000 -0700"
	}
	return out
}
