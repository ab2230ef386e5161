package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/gormenz-svg/recursive-topological-damping/internal/sim"
)

func main() {

	var (
		steps = flag.Int("steps", 1000, "simulation steps")
		dt    = flag.Float64("dt", 0.01, "time step, seconds")
		noise = flag.Float64("noise", 0.4, "sensor noise stddev")
		decay = flag.Float64("decay", 0.85, "eigenvalue decay coefficient")
		seed  = flag.Int64("seed", 0, "noise seed (0 = time-based)")
	)
	flag.Parse()

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	driver, err := sim.NewDriver(sim.Params{
		DT:         *dt,
		NoiseLevel: *noise,
		EigenDecay: *decay,
	}, rng, nil)
	if err != nil {
		log.Fatal(err)
	}

	if _, _, err := driver.Run(*steps); err != nil {
		log.Fatal(err)
	}
}
