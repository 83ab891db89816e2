package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/rastonlab/ftmw-api/internal/catalog"
	"github.com/rastonlab/ftmw-api/internal/processing"
	"github.com/rastonlab/ftmw-api/internal/synth"
	"github.com/rastonlab/ftmw-api/pkg/models"
)

// SpectrumHandler handles synchronous synthesis and peak extraction requests
type SpectrumHandler struct {
	engine  processing.Synthesizer
	catalog catalog.Store
}

// NewSpectrumHandler creates a new spectrum handler
func NewSpectrumHandler(engine processing.Synthesizer, store catalog.Store) *SpectrumHandler {
	return &SpectrumHandler{engine: engine, catalog: store}
}

// AcquireSpectrum synthesizes a spectrum and returns it inline. Known
// acquisition failures come back as success=false bodies; only unexpected
// faults become transport errors.
func (h *SpectrumHandler) AcquireSpectrum(ctx context.Context, req *models.AcquireSpectrumRequest) (*models.AcquireSpectrumResponse, error) {
	params := AcquisitionParamsFromBody(req.Body)
	log.Info().Str("molecule", params.Molecule).Str("mode", params.Mode).Msg("Acquiring spectrum")

	spectrum, err := h.engine.Acquire(ctx, params)
	if err != nil {
		if isAcquisitionError(err) {
			log.Warn().Err(err).Str("molecule", params.Molecule).Msg("Acquisition rejected")
			return &models.AcquireSpectrumResponse{
				Body: models.AcquireSpectrumResponseBody{Success: false, Error: err.Error()},
			}, nil
		}
		return nil, huma.Error500InternalServerError("Failed to synthesize spectrum", err)
	}

	log.Info().Str("molecule", params.Molecule).Int("points", len(spectrum.X)).Msg("Spectrum synthesized")
	return &models.AcquireSpectrumResponse{
		Body: models.AcquireSpectrumResponseBody{Success: true, X: spectrum.X, Y: spectrum.Y},
	}, nil
}

// FindPeaks thresholds a finished spectrum
func (h *SpectrumHandler) FindPeaks(ctx context.Context, req *models.FindPeaksRequest) (*models.FindPeaksResponse, error) {
	peaks, err := synth.FindPeaks(req.Body.X, req.Body.Y, req.Body.Threshold)
	if err != nil {
		return &models.FindPeaksResponse{
			Body: models.FindPeaksResponseBody{Success: false, Error: err.Error()},
		}, nil
	}
	// Keys are already rounded to 4 decimals; formatting them preserves the
	// collision-overwrite policy of the extraction.
	wire := make(map[string]float64, len(peaks))
	for freq, intensity := range peaks {
		wire[strconv.FormatFloat(freq, 'f', -1, 64)] = intensity
	}
	return &models.FindPeaksResponse{
		Body: models.FindPeaksResponseBody{Success: true, Peaks: wire},
	}, nil
}

// ListMolecules lists the molecules available in the line catalog
func (h *SpectrumHandler) ListMolecules(ctx context.Context, _ *struct{}) (*models.ListMoleculesResponse, error) {
	resp := &models.ListMoleculesResponse{}
	resp.Body.Molecules = h.catalog.Molecules()
	return resp, nil
}

// AcquisitionParamsFromBody converts the wire-format request body into the
// engine's validated parameter record.
func AcquisitionParamsFromBody(body models.AcquireSpectrumRequestBody) models.AcquisitionParams {
	return models.AcquisitionParams{
		Molecule:      body.Molecule,
		Mode:          body.AcquisitionType,
		Resonance:     body.Vres,
		FrequencyMin:  body.FrequencyMin,
		FrequencyMax:  body.FrequencyMax,
		StepSize:      body.StepSize,
		CyclesPerStep: body.NumCyclesPerStep,
	}
}

// isAcquisitionError reports whether err belongs to the acquisition failure
// taxonomy that is reported in-band rather than as a transport error.
func isAcquisitionError(err error) bool {
	return errors.Is(err, catalog.ErrUnknownMolecule) ||
		errors.Is(err, synth.ErrMissingRangeBounds) ||
		errors.Is(err, synth.ErrInvalidAcquisitionMode) ||
		errors.Is(err, synth.ErrInvalidAveraging)
}
