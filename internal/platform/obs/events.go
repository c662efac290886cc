package obs

import (
	"fmt"
	"log"
	"strings"
)

// Event logs one pipeline state transition (geocode resolved/failed, leg
// resolved/failed, generation committed/discarded) as a key=value line.
// kv is interpreted as alternating keys and values.
func Event(name string, kv ...any) {
	var b strings.Builder
	fmt.Fprintf(&b, "event=%s", name)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	log.Print(b.String())
}
