package internal

import (
	"log"
	"os"
)

// InitLogging sends log output to stderr, keeping stdout free for map and
// conversion output.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
