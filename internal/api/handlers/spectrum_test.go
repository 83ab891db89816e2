package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rastonlab/ftmw-api/internal/catalog"
	"github.com/rastonlab/ftmw-api/internal/synth"
	"github.com/rastonlab/ftmw-api/pkg/models"
)

// MockSynthesizer implements processing.Synthesizer for testing
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Acquire(ctx context.Context, params models.AcquisitionParams) (synth.Spectrum, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(synth.Spectrum), args.Error(1)
}

func testCatalog() catalog.Store {
	return &catalog.MemStore{Lines: map[string][]models.SpectralLine{
		"OCS":  {{Frequency: 100, Intensity: 1}},
		"HC7N": {{Frequency: 200, Intensity: 1}},
	}}
}

func TestAcquireSpectrum(t *testing.T) {
	tests := []struct {
		name        string
		mockSetup   func(*MockSynthesizer)
		wantSuccess bool
		wantError   bool
	}{
		{
			name: "successful synthesis",
			mockSetup: func(engine *MockSynthesizer) {
				engine.On("Acquire", mock.Anything, mock.AnythingOfType("models.AcquisitionParams")).
					Return(synth.Spectrum{X: []float64{1, 2, 3}, Y: []float64{0.1, 0.2, 0.3}}, nil)
			},
			wantSuccess: true,
		},
		{
			name: "acquisition failure reported in band",
			mockSetup: func(engine *MockSynthesizer) {
				engine.On("Acquire", mock.Anything, mock.Anything).
					Return(synth.Spectrum{}, synth.ErrInvalidAveraging)
			},
			wantSuccess: false,
		},
		{
			name: "unexpected failure becomes transport error",
			mockSetup: func(engine *MockSynthesizer) {
				engine.On("Acquire", mock.Anything, mock.Anything).
					Return(synth.Spectrum{}, assert.AnError)
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &MockSynthesizer{}
			tt.mockSetup(engine)
			handler := NewSpectrumHandler(engine, testCatalog())

			req := &models.AcquireSpectrumRequest{}
			req.Body.Molecule = "OCS"
			req.Body.AcquisitionType = models.ModeSingle
			req.Body.Vres = 100
			req.Body.NumCyclesPerStep = 5

			resp, err := handler.AcquireSpectrum(context.Background(), req)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, tt.wantSuccess, resp.Body.Success)
				if tt.wantSuccess {
					assert.Len(t, resp.Body.Y, len(resp.Body.X))
					assert.Empty(t, resp.Body.Error)
				} else {
					assert.NotEmpty(t, resp.Body.Error)
					assert.Empty(t, resp.Body.X)
				}
			}
			engine.AssertExpectations(t)
		})
	}
}

func TestAcquireSpectrumUnknownMolecule(t *testing.T) {
	engine := &MockSynthesizer{}
	engine.On("Acquire", mock.Anything, mock.Anything).
		Return(synth.Spectrum{}, catalog.ErrUnknownMolecule)
	handler := NewSpectrumHandler(engine, testCatalog())

	req := &models.AcquireSpectrumRequest{}
	req.Body.Molecule = "H2O2"
	req.Body.AcquisitionType = models.ModeSingle
	req.Body.NumCyclesPerStep = 1

	resp, err := handler.AcquireSpectrum(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Body.Success)
	assert.Contains(t, resp.Body.Error, "unknown molecule")
}

func TestFindPeaksHandler(t *testing.T) {
	handler := NewSpectrumHandler(&MockSynthesizer{}, testCatalog())

	req := &models.FindPeaksRequest{}
	req.Body.X = []float64{1, 2, 3}
	req.Body.Y = []float64{0.1, 0.6, 0.2}
	req.Body.Threshold = 0.5

	resp, err := handler.FindPeaks(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Body.Success)
	assert.Equal(t, map[string]float64{"2": 0.6}, resp.Body.Peaks)
}

func TestFindPeaksWireFormat(t *testing.T) {
	_, api := humatest.New(t)
	handler := NewSpectrumHandler(&MockSynthesizer{}, testCatalog())
	huma.Register(api, huma.Operation{
		OperationID: "findPeaks",
		Method:      http.MethodPost,
		Path:        "/api/peaks",
	}, handler.FindPeaks)

	resp := api.Post("/api/peaks", map[string]any{
		"x":         []float64{10.123456, 2},
		"y":         []float64{0.987654, 0.6},
		"threshold": 0.5,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Success bool               `json:"success"`
		Peaks   map[string]float64 `json:"peaks"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, map[string]float64{"10.1235": 0.9877, "2": 0.6}, body.Peaks)
}

func TestFindPeaksHandlerLengthMismatch(t *testing.T) {
	handler := NewSpectrumHandler(&MockSynthesizer{}, testCatalog())

	req := &models.FindPeaksRequest{}
	req.Body.X = []float64{1, 2}
	req.Body.Y = []float64{0.1}
	req.Body.Threshold = 0.5

	resp, err := handler.FindPeaks(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Body.Success)
	assert.NotEmpty(t, resp.Body.Error)
}

func TestListMolecules(t *testing.T) {
	handler := NewSpectrumHandler(&MockSynthesizer{}, testCatalog())

	resp, err := handler.ListMolecules(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"HC7N", "OCS"}, resp.Body.Molecules)
}
