package synth

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Spectrum holds parallel frequency/intensity arrays. Every pipeline stage
// returns a fresh Spectrum; none mutates its input.
type Spectrum struct {
	X []float64
	Y []float64
}

// gridPoints builds a uniformly spaced, half-open grid [start, stop) by
// repeated addition of the resolution step. The right endpoint is excluded.
func gridPoints(start, stop, resolution float64) []float64 {
	var points []float64
	for v := start; v < stop; v += resolution {
		points = append(points, v)
	}
	return points
}

// accumulate interpolates each local spectrum onto the global grid and sums
// the contributions. Global points outside a local grid's support receive
// zero from that line; there is no extrapolation.
func accumulate(grid []float64, locals []Spectrum) ([]float64, error) {
	total := make([]float64, len(grid))
	for _, local := range locals {
		if len(local.X) < 2 {
			// A degenerate local grid carries no interpolatable signal.
			continue
		}
		var pl interp.PiecewiseLinear
		if err := pl.Fit(local.X, local.Y); err != nil {
			return nil, fmt.Errorf("local grid is not strictly increasing: %w", err)
		}
		lo, hi := local.X[0], local.X[len(local.X)-1]
		for i, v := range grid {
			if v < lo || v > hi {
				continue
			}
			total[i] += pl.Predict(v)
		}
	}
	return total, nil
}
