package logger

import (
	"fmt"
	"io"
	"log"
)

type Logger struct {
	l *log.Logger
}

func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

// Nop returns a logger that drops everything.
func Nop() *Logger {
	return New(log.New(io.Discard, "", 0))
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.print("Error", format, v...)
}

func (l *Logger) LogWarnf(format string, v ...any) {
	l.print("Warn", format, v...)
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.print("Info", format, v...)
}

func (l *Logger) print(level, format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[%s]: %s\n", level, msg)
}
