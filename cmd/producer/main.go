package main

import (
	"context"
	"flag"
	"log"
	"os"
	osSignal "os/signal"
	"time"

	"github.com/gormenz-svg/recursive-topological-damping/internal/signal"
	"github.com/gormenz-svg/recursive-topological-damping/internal/stream"
)

func main() {

	var (
		natsURL = flag.String("nats", "nats://127.0.0.1:4222", "NATS url")
		subject = flag.String("subject", stream.WaveSubject, "subject")
		fs      = flag.Int("fs", 100, "sampling rate Hz")
		noise   = flag.Float64("noise", 0.4, "sensor noise stddev")
		batch   = flag.Int("batch", 10, "samples per message")
	)
	flag.Parse()

	nc, err := stream.Connect(*natsURL)
	if err != nil {
		log.Fatal(err)
	}
	defer nc.Drain()

	sim := signal.NewDisplacementSim(*noise, nil)
	dt := 1.0 / float64(*fs)

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	osSignal.Notify(ch, os.Interrupt)

	go func() {
		<-ch
		cancel()
	}()

	period := time.Second / time.Duration(*fs)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	buffer := make([]float64, 0, *batch)
	step := 0

	for {
		select {
		case <-ctx.Done():
			log.Println("producer: stopping")
			return

		case <-ticker.C:
			buffer = append(buffer, sim.Sample(float64(step)*dt))
			step++

			if len(buffer) >= *batch {
				nc.Publish(*subject, stream.EncodeWave(buffer))
				buffer = buffer[:0]
			}
		}
	}
}
