package synth

import (
	"github.com/rastonlab/ftmw-api/pkg/models"
)

// cropBounds derives the output window from the acquisition parameters.
// Single mode centers the window on the cavity resonance; range mode pads the
// sweep bounds by the window on either side.
func cropBounds(params models.AcquisitionParams, window float64) (float64, float64, error) {
	switch params.Mode {
	case models.ModeSingle:
		return params.Resonance - window, params.Resonance + window, nil
	case models.ModeRange:
		if params.FrequencyMin == nil || params.FrequencyMax == nil {
			return 0, 0, ErrMissingRangeBounds
		}
		return *params.FrequencyMin - window, *params.FrequencyMax + window, nil
	default:
		return 0, 0, ErrInvalidAcquisitionMode
	}
}

// selectLines keeps the lines whose maximal local support [f-window, f+window]
// could overlap the crop window. The filter is conservative: it never drops a
// line that could contribute inside the window, and extra survivors only cost
// compute.
func selectLines(lines []models.SpectralLine, cropMin, cropMax, window float64) []models.SpectralLine {
	kept := make([]models.SpectralLine, 0, len(lines))
	for _, line := range lines {
		if line.Frequency+window >= cropMin && line.Frequency-window <= cropMax {
			kept = append(kept, line)
		}
	}
	return kept
}
