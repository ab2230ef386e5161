package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFormula(t *testing.T) {
	tests := []struct {
		name      string
		decay     float64
		raw       float64
		predicted float64
		want      float64
	}{
		{"default decay from zero", 0.85, 1.0, 0.0, 0.15},
		{"default decay mid-track", 0.85, 2.0, 1.0, 1.15},
		{"no decay tracks raw", 0.0, 3.5, -1.0, 3.5},
		{"negative raw", 0.85, -2.0, 0.5, 0.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDamper(tt.decay)
			assert.InDelta(t, tt.want, d.Update(tt.raw, tt.predicted), 1e-12)
		})
	}
}

func TestUpdateZeroError(t *testing.T) {
	d := NewDamper(0.85)
	for _, r := range []float64{0, 1.0, -42.5, 1e9, 1e-9} {
		assert.Equal(t, r, d.Update(r, r))
	}
}

func TestUnitDecayFreezes(t *testing.T) {
	d := NewDamper(1.0)
	for _, raw := range []float64{-10, 0, 3.7, 1e6} {
		assert.Equal(t, 2.5, d.Update(raw, 2.5))
	}
}

// With decay in (0,1) and a constant input, the state converges toward the
// input monotonically and never leaves the interval between the start state
// and the input.
func TestConstantInputConvergence(t *testing.T) {
	for _, decay := range []float64{0.1, 0.5, 0.85, 0.99} {
		d := NewDamper(decay)

		const r = 3.0
		state := -1.0
		prevDist := math.Abs(state - r)

		for i := 0; i < 2000; i++ {
			state = d.Update(r, state)

			dist := math.Abs(state - r)
			require.LessOrEqual(t, dist, prevDist, "decay=%g step=%d", decay, i)
			require.GreaterOrEqual(t, state, -1.0, "decay=%g step=%d", decay, i)
			require.LessOrEqual(t, state, r, "decay=%g step=%d", decay, i)
			prevDist = dist
		}

		assert.InDelta(t, r, state, 1e-6, "decay=%g", decay)
	}
}
