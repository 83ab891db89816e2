package models

// AcquireSpectrumRequestBody mirrors the instrument front end's parameter set.
// The pulse-sequence fields are accepted for validation completeness but do
// not influence the synthesized spectrum.
type AcquireSpectrumRequestBody struct {
	Molecule         string   `json:"molecule" required:"true" example:"OCS" doc:"Molecule identifier"`
	AcquisitionType  string   `json:"acquisitionType" enum:"single,range" required:"true" doc:"Acquisition mode"`
	Vres             float64  `json:"vres" doc:"Cavity resonance frequency in MHz (single mode)"`
	FrequencyMin     *float64 `json:"frequencyMin,omitempty" doc:"Sweep start frequency in MHz (range mode)"`
	FrequencyMax     *float64 `json:"frequencyMax,omitempty" doc:"Sweep stop frequency in MHz (range mode)"`
	StepSize         *float64 `json:"stepSize,omitempty" doc:"Sweep step size in MHz (range mode)"`
	NumCyclesPerStep float64  `json:"numCyclesPerStep" required:"true" doc:"Acquisition cycles averaged per step"`

	MicrowavePulseWidth float64 `json:"microwavePulseWidth,omitempty" doc:"Microwave pulse width in us"`
	MolecularPulseWidth float64 `json:"molecularPulseWidth,omitempty" doc:"Molecular pulse width in us"`
	RepetitionRate      float64 `json:"repetitionRate,omitempty" doc:"Pulse repetition rate in Hz"`
	MWBand              string  `json:"mwBand,omitempty" doc:"Microwave band selector"`
}

// AcquireSpectrumRequest represents a synchronous synthesis request
type AcquireSpectrumRequest struct {
	Body AcquireSpectrumRequestBody
}

// AcquireSpectrumResponseBody is the synthesis result payload. On failure
// Success is false and Error carries the reason; X and Y are omitted.
type AcquireSpectrumResponseBody struct {
	Success bool      `json:"success" doc:"Whether synthesis succeeded"`
	X       []float64 `json:"x,omitempty" doc:"Frequency grid in MHz"`
	Y       []float64 `json:"y,omitempty" doc:"Intensity at each grid point"`
	Error   string    `json:"error,omitempty" doc:"Failure reason"`
}

// AcquireSpectrumResponse represents the synthesis response
type AcquireSpectrumResponse struct {
	Body AcquireSpectrumResponseBody
}

// FindPeaksRequest represents a peak extraction request over a finished spectrum
type FindPeaksRequest struct {
	Body struct {
		X         []float64 `json:"x" required:"true" doc:"Frequency values"`
		Y         []float64 `json:"y" required:"true" doc:"Intensity values"`
		Threshold float64   `json:"threshold" required:"true" doc:"Minimum intensity for a peak"`
	}
}

// FindPeaksResponseBody is the peak extraction payload. Peak keys are the
// 4-decimal-rounded frequencies rendered as strings; float map keys do not
// serialize to JSON.
type FindPeaksResponseBody struct {
	Success bool               `json:"success" doc:"Whether peak extraction succeeded"`
	Peaks   map[string]float64 `json:"peaks,omitempty" doc:"Peak frequency to intensity, rounded to 4 decimals"`
	Error   string             `json:"error,omitempty" doc:"Failure reason"`
}

// FindPeaksResponse represents the peak extraction response
type FindPeaksResponse struct {
	Body FindPeaksResponseBody
}

// ListMoleculesResponse lists the molecules available in the line catalog
type ListMoleculesResponse struct {
	Body struct {
		Molecules []string `json:"molecules" doc:"Known molecule identifiers"`
	}
}
