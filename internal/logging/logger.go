// Package logging provides colored, leveled log output for the autosplitter.
//
// All output functions write a prefixed, color-coded line. Debug output is
// suppressed unless verbose mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	verbose bool
	stdout  io.Writer = os.Stdout
	stderr  io.Writer = os.Stderr
)

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	timerPrefix   = color.New(color.FgMagenta, color.Bold).SprintFunc()
	debugPrefix   = color.New(color.FgBlue).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// SetOutput redirects normal and error output. A nil writer restores the
// corresponding process stream.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

func emit(toErr bool, prefix, msg string) {
	mu.Lock()
	defer mu.Unlock()
	w := stdout
	if toErr {
		w = stderr
	}
	fmt.Fprintln(w, prefix+" "+msg)
}

// Info prints an informational message to stdout in blue.
func Info(msg string) {
	emit(false, infoPrefix("[INFO]"), msg)
}

// Success prints a success message to stdout in green.
func Success(msg string) {
	emit(false, successPrefix("[SUCCESS]"), msg)
}

// Warn prints a warning message to stdout in yellow.
func Warn(msg string) {
	emit(false, warnPrefix("[WARN]"), msg)
}

// Error prints an error message to stderr in red.
func Error(msg string) {
	emit(true, errorPrefix("[ERROR]"), msg)
}

// Timer prints a timer event (start, split, reset) to stdout in magenta.
func Timer(msg string) {
	emit(false, timerPrefix("[TIMER]"), msg)
}

// Debug prints a debug message to stdout in blue, only when verbose mode is enabled.
func Debug(msg string) {
	mu.Lock()
	v := verbose
	mu.Unlock()
	if !v {
		return
	}
	emit(false, debugPrefix("[DEBUG]"), msg)
}

// FormatGameTime renders a run time the way split timers show it, with
// hundredths of a second. Hours are omitted when zero.
//
// Examples:
//
//	FormatGameTime(0)                    => "0:00.00"
//	FormatGameTime(83450*time.Millisecond) => "1:23.45"
//	FormatGameTime(3723450*time.Millisecond) => "1:02:03.45"
func FormatGameTime(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	hundredths := int64(d / (10 * time.Millisecond))
	cs := hundredths % 100
	secs := hundredths / 100
	s := secs % 60
	m := (secs / 60) % 60
	h := secs / 3600
	if h > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d.%02d", sign, h, m, s, cs)
	}
	return fmt.Sprintf("%s%d:%02d.%02d", sign, m, s, cs)
}
