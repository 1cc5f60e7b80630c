package logger

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// StdLogger is a lightweight implementation backed by Go's log package.
// Output follows log's destination, which the terminal view redirects to a file.
type StdLogger struct {
	verbose bool
}

// NewStd creates a StdLogger. Nothing is written unless verbose is set.
func NewStd(verbose bool) *StdLogger {
	return &StdLogger{verbose: verbose}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.print("DEBUG", msg, nil, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.print("INFO", msg, nil, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.print("WARN", msg, nil, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.print("ERROR", msg, err, fields)
}

func (l *StdLogger) print(level, msg string, err error, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	line := fmt.Sprintf("[%s] %s", level, msg)
	if err != nil {
		line += " error=" + err.Error()
	}
	if len(fields) > 0 {
		line += " " + formatFields(fields)
	}
	log.Println(line)
}

func formatFields(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, fields[key]))
	}
	return strings.Join(parts, " ")
}
