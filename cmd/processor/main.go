package main

import (
	"encoding/json"
	"flag"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/gormenz-svg/recursive-topological-damping/internal/filter"
	"github.com/gormenz-svg/recursive-topological-damping/internal/sim"
	"github.com/gormenz-svg/recursive-topological-damping/internal/stream"
)

func main() {

	var (
		natsURL = flag.String("nats", "nats://127.0.0.1:4222", "NATS url")
		in      = flag.String("in", stream.WaveSubject, "input subject")
		out     = flag.String("out", stream.CoherenceSubject, "output subject")
		decay   = flag.Float64("decay", 0.85, "eigenvalue decay coefficient")
	)
	flag.Parse()

	nc, err := stream.Connect(*natsURL)
	if err != nil {
		log.Fatal(err)
	}
	defer nc.Drain()

	damper := filter.NewDamper(*decay)

	// filter state carried across messages
	predicted := 0.0
	step := 0

	_, err = nc.Subscribe(*in, func(msg *nats.Msg) {

		for _, raw := range stream.DecodeWave(msg.Data) {

			predicted = damper.Update(raw, predicted)

			if step%sim.CoherenceInterval == 0 {

				coherence := sim.Coherence(predicted, raw)

				param := stream.CoherenceMsg{
					Subject:   *out,
					Ts:        time.Now().UnixMilli(),
					Step:      step,
					Coherence: coherence,
				}

				b, _ := json.Marshal(param)
				nc.Publish(*out, b)

				log.Printf("Step %04d | Coherence: %.4f | Status: STABLE", step, coherence)
			}
			step++
		}
	})

	if err != nil {
		log.Fatal(err)
	}

	log.Println("processor running...")
	select {}
}
