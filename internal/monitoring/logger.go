package monitoring

import (
	"log"
	"os"
	"strings"
)

var std = log.New(os.Stderr, "zgrid: ", log.LstdFlags)

// Logf is the diagnostic logger shared by the commands. Library packages do
// not log.
var Logf func(format string, v ...any) = std.Printf

// SetLogger swaps the logger. nil mutes all output.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}

// Scoped returns a logger that tags each line with scope, e.g. "[erosion] ".
func Scoped(scope string) func(format string, v ...any) {
	tag := "[" + strings.TrimSpace(scope) + "] "
	return func(format string, v ...any) {
		Logf(tag+format, v...)
	}
}
