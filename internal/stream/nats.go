package stream

import (
	"time"

	"github.com/nats-io/nats.go"
)

// Default subjects for the displacement wave and the derived coherence
// metric.
const (
	WaveSubject      = "rtd.wave"
	CoherenceSubject = "rtd.coherence"
)

func Connect(url string) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name("rtd-stream"),
		nats.Timeout(3*time.Second),
		nats.ReconnectWait(500*time.Millisecond),
		nats.MaxReconnects(-1),
	)
}
