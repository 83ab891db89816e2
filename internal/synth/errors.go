package synth

import "errors"

// Sentinel errors surfaced to the synthesis boundary. Handlers report them as
// structured failure results; none may escape as an uncaught fault.
var (
	ErrMissingRangeBounds     = errors.New("range mode requires frequencyMin, frequencyMax and stepSize")
	ErrInvalidAcquisitionMode = errors.New("invalid acquisition mode")
	ErrInvalidAveraging       = errors.New("cycles per step must be positive")
)
