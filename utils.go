package pymot

import (
	"log"
	"sync"
)

var warnedMessages sync.Map

// WarnOnce logs message via log.Printf the first time it is seen;
// subsequent calls with an identical message are silently ignored.
func WarnOnce(message string) {
	if _, loaded := warnedMessages.LoadOrStore(message, true); !loaded {
		log.Printf("Warning: %s", message)
	}
}
