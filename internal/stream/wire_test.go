package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveRoundTrip(t *testing.T) {
	in := []float64{0, 1.5, -2.25, 3.14159}

	b := EncodeWave(in)
	require.Len(t, b, 8*len(in))

	assert.Equal(t, in, DecodeWave(b))
}

func TestDecodeWaveEmpty(t *testing.T) {
	assert.Empty(t, DecodeWave(nil))
}
