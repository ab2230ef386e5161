// Package filter implements Recursive Topological Damping (RTD):
// S = min ||X_target - Phi|| - Gamma, which in the scalar case reduces to a
// single-pole recursive smoother driven by the eigenvalue decay coefficient.
package filter

// Damper suppresses stochastic drift in a raw displacement stream.
// eigenDecay is the fraction of the prior error retained each step;
// 1 - eigenDecay is the correction gain. Values in (0,1) converge, a value
// of 1 freezes the state.
type Damper struct {
	eigenDecay float64
}

func NewDamper(eigenDecay float64) *Damper {
	return &Damper{eigenDecay: eigenDecay}
}

// Update evolves the predicted state toward raw and returns the new state.
// The update is pure: the prior state is replaced, never mutated.
func (d *Damper) Update(raw, predicted float64) float64 {
	e := raw - predicted
	gamma := e * (1 - d.eigenDecay)
	return predicted + gamma
}
