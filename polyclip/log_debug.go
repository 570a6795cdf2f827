//go:build debug

package polyclip

import (
	"log"
	"os"
)

var debugLog = log.New(os.Stderr, "polyclip: ", log.Lmicroseconds)

func logDebugf(format string, args ...any) {
	debugLog.Printf(format, args...)
}
