package synth

import (
	"fmt"
	"math"
)

// FindPeaks returns every (x, y) point with y >= threshold, both coordinates
// rounded to 4 decimal places. Two distinct frequencies that round to the
// same key overwrite each other; that collision policy is intentional and
// matches the instrument software.
func FindPeaks(x, y []float64, threshold float64) (map[float64]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y lengths differ: %d vs %d", len(x), len(y))
	}
	peaks := make(map[float64]float64)
	for i, v := range y {
		if v >= threshold {
			peaks[round4(x[i])] = round4(v)
		}
	}
	return peaks, nil
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
