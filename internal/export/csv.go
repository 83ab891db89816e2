package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// SpectrumCSV renders a synthesized spectrum as a two-column CSV document.
// Frequency is written with 3 decimal places and intensity in scientific
// notation with 4 significant figures.
func SpectrumCSV(x, y []float64) ([]byte, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y lengths differ: %d vs %d", len(x), len(y))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Frequency (MHz)", "Intensity"}); err != nil {
		return nil, err
	}
	for i := range x {
		record := []string{
			fmt.Sprintf("%.3f", x[i]),
			fmt.Sprintf("%.3e", y[i]),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
