package synth

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// addWhiteNoise returns a copy of y with an independent zero-mean Gaussian
// sample added at every grid point. The standard deviation is
// baseLevel / sqrt(cyclesPerStep), so longer averaging quiets the trace.
func addWhiteNoise(y []float64, baseLevel, cyclesPerStep float64, src rand.Source) ([]float64, error) {
	if cyclesPerStep <= 0 {
		return nil, ErrInvalidAveraging
	}
	dist := distuv.Normal{
		Mu:    0,
		Sigma: baseLevel / math.Sqrt(cyclesPerStep),
		Src:   src,
	}
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = v + dist.Rand()
	}
	return out, nil
}
