package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpectrumCSVFormatting(t *testing.T) {
	data, err := SpectrumCSV([]float64{12162.9786, 12163.0}, []float64{0.00123456, 1.5})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Frequency (MHz),Intensity", lines[0])
	assert.Equal(t, "12162.979,1.235e-03", lines[1])
	assert.Equal(t, "12163.000,1.500e+00", lines[2])
}

func TestSpectrumCSVLengthMismatch(t *testing.T) {
	_, err := SpectrumCSV([]float64{1, 2}, []float64{1})
	require.Error(t, err)
}

func TestSpectrumCSVEmpty(t *testing.T) {
	data, err := SpectrumCSV(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Frequency (MHz),Intensity\n", string(data))
}
