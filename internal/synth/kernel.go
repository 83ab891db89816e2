package synth

import (
	"fmt"
	"math"
)

// Kernel evaluates a normalized broadening profile of the given full width at
// half maximum, centered at center, over every point of the grid. Both
// physical approximations below are in use on real instruments; the rest of
// the pipeline is agnostic to which one is configured.
type Kernel interface {
	Evaluate(grid []float64, center, fwhm float64) []float64
}

// Lorentzian is the pressure-broadened profile
// L(v) = (1/pi) * hwhm / ((v-center)^2 + hwhm^2).
type Lorentzian struct{}

func (Lorentzian) Evaluate(grid []float64, center, fwhm float64) []float64 {
	hwhm := fwhm / 2
	out := make([]float64, len(grid))
	for i, v := range grid {
		d := v - center
		out[i] = (1 / math.Pi) * (hwhm / (d*d + hwhm*hwhm))
	}
	return out
}

// Gaussian is the thermal-Doppler profile exp(-0.5*((v-center)/sd)^2) with
// sd = fwhm / (2*sqrt(2 ln 2)).
type Gaussian struct{}

func (Gaussian) Evaluate(grid []float64, center, fwhm float64) []float64 {
	sd := fwhm / (2 * math.Sqrt(2*math.Ln2))
	out := make([]float64, len(grid))
	for i, v := range grid {
		z := (v - center) / sd
		out[i] = math.Exp(-0.5 * z * z)
	}
	return out
}

// KernelByName maps a configuration name to a broadening kernel.
func KernelByName(name string) (Kernel, error) {
	switch name {
	case "lorentzian", "":
		return Lorentzian{}, nil
	case "gaussian":
		return Gaussian{}, nil
	default:
		return nil, fmt.Errorf("unknown broadening kernel %q", name)
	}
}
