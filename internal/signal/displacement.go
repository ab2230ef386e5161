package signal

import (
	"math"
	"math/rand"
	"time"
)

// Frequencies and amplitudes of the synthetic tissue motion.
const (
	CardiacAmp = 0.5 // cardiac pulsation
	CardiacHz  = 1.2
	RespAmp    = 1.2 // respiratory drift
	RespHz     = 0.3
)

// DisplacementSim models brain tissue displacement: heart pulse +
// respiratory drift + stochastic noise. Deliberately simple, not clinical.
type DisplacementSim struct {
	noise float64
	rng   *rand.Rand
}

// NewDisplacementSim builds a simulator with the given noise standard
// deviation. rng may be nil, in which case a time-seeded source is used;
// pass a fixed-seed source for reproducible runs.
func NewDisplacementSim(noise float64, rng *rand.Rand) *DisplacementSim {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DisplacementSim{noise: noise, rng: rng}
}

// Sample returns the displacement at simulated time t (seconds).
// Each call consumes one draw from the noise source.
func (s *DisplacementSim) Sample(t float64) float64 {
	pulse := CardiacAmp * math.Sin(2*math.Pi*CardiacHz*t)
	breath := RespAmp * math.Sin(2*math.Pi*RespHz*t)
	return pulse + breath + s.rng.NormFloat64()*s.noise
}
