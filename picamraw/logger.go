package picamraw

import (
	"fmt"
	"os"
	"time"
)

// Logger prints step-by-step progress for long extractions. The core
// decode functions never log; only callers that want progress output
// use this.
type Logger struct {
	stepStart  time.Time
	totalStart time.Time
}

func NewLogger() *Logger {
	return &Logger{totalStart: time.Now()}
}

// Step starts a named processing step.
func (l *Logger) Step(name string, params ...interface{}) {
	l.stepStart = time.Now()
	if len(params) > 0 {
		fmt.Printf("[%s] %v ... ", name, params[0])
	} else {
		fmt.Printf("[%s] ", name)
	}
}

// Done finishes the current step, printing the elapsed time when it
// exceeds 100ms.
func (l *Logger) Done(result string) {
	elapsed := time.Since(l.stepStart)
	if elapsed > 100*time.Millisecond {
		fmt.Printf("-> %s (%.2fs)\n", result, elapsed.Seconds())
	} else {
		fmt.Printf("-> %s\n", result)
	}
}

// Info prints an untimed informational line.
func (l *Logger) Info(format string, args ...interface{}) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// Warn prints a warning line.
func (l *Logger) Warn(format string, args ...interface{}) {
	fmt.Printf("  warning: %s\n", fmt.Sprintf(format, args...))
}

var debugEnabled = os.Getenv("DEBUG") != ""

func debugf(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Printf(format+"\n", args...)
	}
}
