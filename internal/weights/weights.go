// Package weights defines weight initialization strategies.
package weights

import (
	"time"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer fills a weight matrix in place.
type Initializer interface {
	Initialize(w *mat.Dense)
}

// Uniform initializes weights with independent draws from U[Min, Max).
// A nil Src uses the global source, which x/exp/rand seeds
// deterministically; pass an explicit Src for reproducible weights.
type Uniform struct {
	Min float64
	Max float64
	Src rand.Source
}

// NewUniform creates a Uniform initializer over [-scale, scale) with a
// clock-seeded source.
func NewUniform(scale float64) Uniform {
	return Uniform{
		Min: -scale,
		Max: scale,
		Src: rand.NewSource(uint64(time.Now().UnixNano())),
	}
}

// Initialize fills w with uniform draws.
func (u Uniform) Initialize(w *mat.Dense) {
	dist := distuv.Uniform{Min: u.Min, Max: u.Max, Src: u.Src}
	r, c := w.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			w.Set(i, j, dist.Rand())
		}
	}
}
