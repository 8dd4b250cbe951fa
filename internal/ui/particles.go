// Package ui holds presentational helpers for the registration page that are
// computed server-side.
package ui

import (
	"math"
	"math/rand/v2"
)

const (
	DefaultParticles = 28
	MaxParticles     = 200
)

// Particle is one decorative background particle.
type Particle struct {
	Size     float64 `json:"size_px"`
	Left     float64 `json:"left_pct"`
	Duration float64 `json:"duration_s"`
	Delay    float64 `json:"delay_s"`
}

// Particles returns count particles drawn from rng. Size is 4-10px, left
// offset 0-100%, animation duration 8-18s and start delay 0-4s.
// count is clamped to [0, MaxParticles].
func Particles(count int, rng *rand.Rand) []Particle {
	count = max(0, min(count, MaxParticles))

	out := make([]Particle, count)
	for i := range out {
		out[i] = Particle{
			Size:     round2(rng.Float64()*6 + 4),
			Left:     rng.Float64() * 100,
			Duration: round2(8 + rng.Float64()*10),
			Delay:    round2(rng.Float64() * 4),
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
