package synth

// ResponseShape evaluates the cavity transfer function over a frequency grid.
// The linewidth of every mode is center/Q and the peak transmission is Pmax.
type ResponseShape interface {
	Evaluate(grid []float64) []float64
}

// SingleMode is one Lorentzian cavity mode centered at the resonance
// frequency: Pmax * (g/2)^2 / ((v-vres)^2 + (g/2)^2), g = vres/Q.
type SingleMode struct {
	Resonance float64
	Q         float64
	Pmax      float64
}

func (m SingleMode) Evaluate(grid []float64) []float64 {
	return cavityMode(grid, nil, m.Resonance, m.Q, m.Pmax)
}

// SweptComb is the swept-acquisition response: a comb of cavity modes, one
// centered at each sweep step from Min through Max inclusive.
type SweptComb struct {
	Min, Max, Step float64
	Q              float64
	Pmax           float64
}

func (m SweptComb) Evaluate(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for center := m.Min; center < m.Max+m.Step; center += m.Step {
		cavityMode(grid, out, center, m.Q, m.Pmax)
	}
	return out
}

// cavityMode evaluates one Lorentzian mode. When acc is non-nil the values
// are added into it and acc is returned; otherwise a fresh slice is built.
func cavityMode(grid, acc []float64, center, q, pmax float64) []float64 {
	if acc == nil {
		acc = make([]float64, len(grid))
	}
	gamma := center / q
	half := gamma / 2
	for i, v := range grid {
		d := v - center
		acc[i] += pmax * (half * half) / (d*d + half*half)
	}
	return acc
}
