package sim

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors for simulation parameters and run arguments.
var (
	ErrInvalidSteps = errors.New("sim: step count must be non-negative")
	ErrInvalidDT    = errors.New("sim: time step must be positive")
	ErrInvalidNoise = errors.New("sim: noise level must be non-negative")
	ErrInvalidDecay = errors.New("sim: eigen decay must be finite")
)

// Static core: the global topological anchor of the RTD concept. It is part
// of the declared state but does not enter the numeric update path.
const (
	StaticCoreX = 0.0
	StaticCoreY = 0.0
)

// Params holds the simulation configuration. Immutable after construction;
// validated by NewDriver.
type Params struct {
	DT         float64 // time step, seconds
	NoiseLevel float64 // stddev of additive sensor noise
	EigenDecay float64 // eigenvalue decay coefficient, (0,1) for a stable filter
}

// DefaultParams returns the reference configuration: 100 Hz sampling, 40%
// stochastic noise, 0.85 decay.
func DefaultParams() Params {
	return Params{DT: 0.01, NoiseLevel: 0.4, EigenDecay: 0.85}
}

func (p Params) validate() error {
	if p.DT <= 0 {
		return fmt.Errorf("%w (got %g)", ErrInvalidDT, p.DT)
	}
	if p.NoiseLevel < 0 {
		return fmt.Errorf("%w (got %g)", ErrInvalidNoise, p.NoiseLevel)
	}
	if math.IsNaN(p.EigenDecay) || math.IsInf(p.EigenDecay, 0) {
		return fmt.Errorf("%w (got %g)", ErrInvalidDecay, p.EigenDecay)
	}
	return nil
}
