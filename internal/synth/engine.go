package synth

import (
	"context"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/rastonlab/ftmw-api/pkg/models"
)

// speedOfLight in m/s.
const speedOfLight = 299792458.0

// LineLoader resolves a molecule identifier to its catalog of spectral lines.
type LineLoader interface {
	Load(ctx context.Context, molecule string) ([]models.SpectralLine, error)
}

// Config holds the tunable constants of the synthesis pipeline. Everything
// that used to be an ambient module-level constant in older instrument code
// is an explicit value here so the engine stays pure and testable.
type Config struct {
	// Window is the half-width of every local grid and of the crop padding,
	// in MHz.
	Window float64
	// Resolution is the grid spacing in MHz.
	Resolution float64
	// FWHM is the broadening linewidth in MHz.
	FWHM float64
	// QFactor and MaxPower parameterize the cavity transfer function.
	QFactor  float64
	MaxPower float64
	// CarrierVelocity is the characteristic velocity of the seeded gas pulse
	// in m/s; it sets the Doppler split of every line.
	CarrierVelocity float64
	// SignalNoiseLevel and CavityNoiseLevel are the per-channel base noise
	// standard deviations before cycle averaging.
	SignalNoiseLevel float64
	CavityNoiseLevel float64
	// Kernel is the broadening profile. Defaults to Lorentzian.
	Kernel Kernel
	// Src seeds the Gaussian noise draws. Nil uses the shared global source;
	// tests inject a fixed-seed source for deterministic runs.
	Src rand.Source
}

// DefaultConfig returns the calibration used by the physical spectrometer.
func DefaultConfig() Config {
	return Config{
		Window:           25,
		Resolution:       0.001,
		FWHM:             0.007,
		QFactor:          10000,
		MaxPower:         1.0,
		CarrierVelocity:  1760,
		SignalNoiseLevel: 0.05,
		CavityNoiseLevel: 0.01,
		Kernel:           Lorentzian{},
	}
}

// Engine synthesizes observed spectra from catalog line lists. It is
// stateless: every acquisition builds fresh grids and arrays.
type Engine struct {
	lines LineLoader
	cfg   Config
}

// New creates a synthesis engine over the given line catalog.
func New(lines LineLoader, cfg Config) *Engine {
	if cfg.Kernel == nil {
		cfg.Kernel = Lorentzian{}
	}
	return &Engine{lines: lines, cfg: cfg}
}

// Acquire runs the full pipeline: line selection, per-line broadening,
// accumulation onto the output grid, signal noise, and cavity-response
// shaping. The returned spectrum is the magnitude trace the instrument
// would display.
func (e *Engine) Acquire(ctx context.Context, params models.AcquisitionParams) (Spectrum, error) {
	if err := validate(params); err != nil {
		return Spectrum{}, err
	}
	cropMin, cropMax, err := cropBounds(params, e.cfg.Window)
	if err != nil {
		return Spectrum{}, err
	}

	catalog, err := e.lines.Load(ctx, params.Molecule)
	if err != nil {
		return Spectrum{}, err
	}
	selected := selectLines(catalog, cropMin, cropMax, e.cfg.Window)

	locals := make([]Spectrum, 0, len(selected))
	for _, line := range selected {
		locals = append(locals, e.buildLocalSpectrum(line))
	}

	grid := gridPoints(cropMin, cropMax, e.cfg.Resolution)
	total, err := accumulate(grid, locals)
	if err != nil {
		return Spectrum{}, err
	}

	total, err = addWhiteNoise(total, e.cfg.SignalNoiseLevel, params.CyclesPerStep, e.cfg.Src)
	if err != nil {
		return Spectrum{}, err
	}

	shaped, err := e.applyCavityResponse(params, grid, total)
	if err != nil {
		return Spectrum{}, err
	}
	return Spectrum{X: grid, Y: shaped}, nil
}

// buildLocalSpectrum evaluates the Doppler-split, intensity-scaled broadening
// profile of one line over its local half-open grid.
func (e *Engine) buildLocalSpectrum(line models.SpectralLine) Spectrum {
	grid := gridPoints(line.Frequency-e.cfg.Window, line.Frequency+e.cfg.Window, e.cfg.Resolution)
	split := (line.Frequency / speedOfLight) * e.cfg.CarrierVelocity

	upper := e.cfg.Kernel.Evaluate(grid, line.Frequency+split, e.cfg.FWHM)
	lower := e.cfg.Kernel.Evaluate(grid, line.Frequency-split, e.cfg.FWHM)
	floats.Add(upper, lower)
	floats.Scale(line.Intensity, upper)
	return Spectrum{X: grid, Y: upper}
}

// applyCavityResponse multiplies the accumulated spectrum by the
// noise-perturbed cavity transfer function and returns its magnitude.
// Negative excursions from noise are folded to magnitude, never clamped
// to zero.
func (e *Engine) applyCavityResponse(params models.AcquisitionParams, grid, spectrum []float64) ([]float64, error) {
	var shape ResponseShape
	switch params.Mode {
	case models.ModeSingle:
		shape = SingleMode{Resonance: params.Resonance, Q: e.cfg.QFactor, Pmax: e.cfg.MaxPower}
	case models.ModeRange:
		shape = SweptComb{
			Min:  *params.FrequencyMin,
			Max:  *params.FrequencyMax,
			Step: *params.StepSize,
			Q:    e.cfg.QFactor,
			Pmax: e.cfg.MaxPower,
		}
	default:
		return nil, ErrInvalidAcquisitionMode
	}

	response := shape.Evaluate(grid)
	response, err := addWhiteNoise(response, e.cfg.CavityNoiseLevel, params.CyclesPerStep, e.cfg.Src)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(spectrum))
	copy(out, spectrum)
	floats.Mul(out, response)
	for i, v := range out {
		out[i] = math.Abs(v)
	}
	return out, nil
}

// validate rejects malformed acquisition parameters before any computation
// is performed.
func validate(params models.AcquisitionParams) error {
	switch params.Mode {
	case models.ModeSingle:
	case models.ModeRange:
		if params.FrequencyMin == nil || params.FrequencyMax == nil || params.StepSize == nil {
			return ErrMissingRangeBounds
		}
	default:
		return ErrInvalidAcquisitionMode
	}
	if params.CyclesPerStep <= 0 {
		return ErrInvalidAveraging
	}
	return nil
}
