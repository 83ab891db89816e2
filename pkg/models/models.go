package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// SpectralLine is a single catalog transition: center frequency in MHz and
// relative intensity.
type SpectralLine struct {
	Frequency float64 `json:"frequency"`
	Intensity float64 `json:"intensity"`
}

// Acquisition mode names as they appear in requests.
const (
	ModeSingle = "single"
	ModeRange  = "range"
)

// AcquisitionParams is the validated synthesis input (for internal use).
// In single mode Resonance is the cavity resonance frequency; in range mode
// FrequencyMin, FrequencyMax and StepSize must all be set.
type AcquisitionParams struct {
	Molecule      string   `json:"molecule"`
	Mode          string   `json:"acquisitionType"`
	Resonance     float64  `json:"vres"`
	FrequencyMin  *float64 `json:"frequencyMin,omitempty"`
	FrequencyMax  *float64 `json:"frequencyMax,omitempty"`
	StepSize      *float64 `json:"stepSize,omitempty"`
	CyclesPerStep float64  `json:"numCyclesPerStep"`
}

// Acquisition represents a stored acquisition record (for internal use)
type Acquisition struct {
	ID          string            `json:"id"`
	Molecule    string            `json:"molecule"`
	Mode        string            `json:"mode"`
	Params      AcquisitionParams `json:"params"`
	Status      string            `json:"status"`
	Progress    int               `json:"progress"`
	CSVS3Key    *string           `json:"csv_s3_key,omitempty"`
	ErrorMsg    *string           `json:"error_message,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

// AcquisitionResults represents the stored synthesis output
type AcquisitionResults struct {
	ID            string    `json:"id"`
	AcquisitionID string    `json:"acquisition_id"`
	Frequencies   []float64 `json:"frequencies"`
	Intensities   []float64 `json:"intensities"`
	PointCount    int       `json:"point_count"`
	CreatedAt     time.Time `json:"created_at"`
}
