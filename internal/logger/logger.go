// Package logger provides leveled, color-coded logging for the CLI, in the
// same shape the teacher's internal/logger uses: a default package logger
// backed by fatih/color, with LogError adapted to unwrap this module's
// internal/errors.CLIError for a friendlier one-line message.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	cliErrors "github.com/pyhub-apps/gaejeong-cli/internal/errors"
)

// Level represents the logging level.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// Logger provides structured logging with levels.
type Logger struct {
	level    Level
	output   io.Writer
	useColor bool
	prefix   string

	debugColor *color.Color
	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
	fatalColor *color.Color
}

var defaultLogger *Logger

func init() {
	defaultLogger = New(InfoLevel, os.Stderr, true)
}

// New creates a new logger with the specified level and output.
func New(level Level, output io.Writer, useColor bool) *Logger {
	return &Logger{
		level:      level,
		output:     output,
		useColor:   useColor,
		debugColor: color.New(color.FgCyan),
		infoColor:  color.New(color.FgGreen),
		warnColor:  color.New(color.FgYellow),
		errorColor: color.New(color.FgRed),
		fatalColor: color.New(color.FgRed, color.Bold),
	}
}

// SetLevel sets the global logging level.
func SetLevel(level Level) {
	defaultLogger.level = level
}

// SetVerbose enables or disables verbose (debug) logging.
func SetVerbose(verbose bool) {
	if verbose {
		defaultLogger.level = DebugLevel
	} else {
		defaultLogger.level = InfoLevel
	}
}

// SetOutput sets the output writer for the default logger.
func SetOutput(w io.Writer) {
	defaultLogger.output = w
}

// SetColorEnabled enables or disables color output.
func SetColorEnabled(enabled bool) {
	defaultLogger.useColor = enabled
	color.NoColor = !enabled
}

func (l *Logger) formatMessage(level, msg string) string {
	timestamp := time.Now().Format("15:04:05")
	if l.prefix != "" {
		return fmt.Sprintf("[%s] [%s] [%s] %s", timestamp, l.prefix, level, msg)
	}
	return fmt.Sprintf("[%s] [%s] %s", timestamp, level, msg)
}

func (l *Logger) log(level Level, levelStr string, colorFunc *color.Color, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, args...)
	formattedMsg := l.formatMessage(levelStr, msg)

	if l.useColor && colorFunc != nil {
		colorFunc.Fprintln(l.output, formattedMsg)
	} else {
		fmt.Fprintln(l.output, formattedMsg)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DebugLevel, "DEBUG", l.debugColor, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(InfoLevel, "INFO", l.infoColor, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WarnLevel, "WARN", l.warnColor, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ErrorLevel, "ERROR", l.errorColor, format, args...)
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FatalLevel, "FATAL", l.fatalColor, format, args...)
	os.Exit(1)
}

// Debug logs a debug message on the default logger.
func Debug(format string, args ...interface{}) { defaultLogger.Debug(format, args...) }

// Info logs an info message on the default logger.
func Info(format string, args ...interface{}) { defaultLogger.Info(format, args...) }

// Warn logs a warning message on the default logger.
func Warn(format string, args ...interface{}) { defaultLogger.Warn(format, args...) }

// Error logs an error message on the default logger.
func Error(format string, args ...interface{}) { defaultLogger.Error(format, args...) }

// Fatal logs a fatal error message on the default logger and exits.
func Fatal(format string, args ...interface{}) { defaultLogger.Fatal(format, args...) }

// LogError logs err at the appropriate detail level. A *cliErrors.CLIError
// prints its DetailedError() in verbose mode and its friendly Error()
// otherwise; any other error falls back to %v/%+v like the teacher's logger.
func LogError(err error, verbose bool) {
	if err == nil {
		return
	}

	var cliErr *cliErrors.CLIError
	if errors.As(err, &cliErr) {
		if verbose {
			Error("%s", cliErr.DetailedError())
		} else {
			Error("%s", cliErr.Error())
		}
		return
	}

	if verbose {
		Error("Error occurred: %+v", err)
	} else {
		Error("%v", err)
	}
}

// ParseLevel parses a string level into a Level type.
func ParseLevel(levelStr string) Level {
	switch levelStr {
	case "debug", "DEBUG":
		return DebugLevel
	case "info", "INFO":
		return InfoLevel
	case "warn", "WARN", "warning", "WARNING":
		return WarnLevel
	case "error", "ERROR":
		return ErrorLevel
	case "fatal", "FATAL":
		return FatalLevel
	default:
		return InfoLevel
	}
}
