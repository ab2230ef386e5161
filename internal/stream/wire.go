package stream

import (
	"encoding/binary"
	"math"
)

// Wave batches travel as little-endian float64 slabs, 8 bytes per sample.

func EncodeWave(samples []float64) []byte {
	out := make([]byte, 8*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint64(out[i*8:], math.Float64bits(v))
	}
	return out
}

func DecodeWave(data []byte) []float64 {
	n := len(data) / 8
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return out
}

// CoherenceMsg is the JSON payload the processor publishes per sampled step.
type CoherenceMsg struct {
	Subject   string  `json:"subject"`
	Ts        int64   `json:"ts"`
	Step      int     `json:"step"`
	Coherence float64 `json:"coherence"`
}
