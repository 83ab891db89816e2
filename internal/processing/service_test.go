package processing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rastonlab/ftmw-api/internal/synth"
	"github.com/rastonlab/ftmw-api/pkg/models"
)

type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Acquire(ctx context.Context, params models.AcquisitionParams) (synth.Spectrum, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(synth.Spectrum), args.Error(1)
}

type MockAcquisitionRepository struct {
	mock.Mock
}

func (m *MockAcquisitionRepository) Create(ctx context.Context, acquisition *models.Acquisition) error {
	args := m.Called(ctx, acquisition)
	return args.Error(0)
}

func (m *MockAcquisitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Acquisition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Acquisition), args.Error(1)
}

func (m *MockAcquisitionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	args := m.Called(ctx, id, status, progress)
	return args.Error(0)
}

func (m *MockAcquisitionRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	args := m.Called(ctx, id, errorMsg)
	return args.Error(0)
}

func (m *MockAcquisitionRepository) SetCSVKey(ctx context.Context, id uuid.UUID, key string) error {
	args := m.Called(ctx, id, key)
	return args.Error(0)
}

func (m *MockAcquisitionRepository) StoreResults(ctx context.Context, results *models.AcquisitionResults) error {
	args := m.Called(ctx, results)
	return args.Error(0)
}

func (m *MockAcquisitionRepository) GetResults(ctx context.Context, acquisitionID uuid.UUID) (*models.AcquisitionResults, error) {
	args := m.Called(ctx, acquisitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AcquisitionResults), args.Error(1)
}

type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) UploadArtifact(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockArtifactStore) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) DownloadArtifact(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockArtifactStore) DeleteArtifact(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func storedAcquisition(id uuid.UUID) *models.Acquisition {
	return &models.Acquisition{
		ID:       id.String(),
		Molecule: "OCS",
		Mode:     models.ModeSingle,
		Params: models.AcquisitionParams{
			Molecule:      "OCS",
			Mode:          models.ModeSingle,
			Resonance:     12162.979,
			CyclesPerStep: 10,
		},
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestProcessAcquisitionSuccess(t *testing.T) {
	acquisitionID := uuid.New()
	spectrum := synth.Spectrum{
		X: []float64{12137.979, 12137.980, 12137.981},
		Y: []float64{0.01, 0.52, 0.02},
	}

	mockEngine := &MockSynthesizer{}
	mockRepo := &MockAcquisitionRepository{}
	mockArtifacts := &MockArtifactStore{}

	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 10).Return(nil)
	mockRepo.On("GetByID", mock.Anything, acquisitionID).Return(storedAcquisition(acquisitionID), nil)
	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 30).Return(nil)
	mockEngine.On("Acquire", mock.Anything, mock.AnythingOfType("models.AcquisitionParams")).Return(spectrum, nil)
	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 70).Return(nil)
	mockArtifacts.On("UploadArtifact", mock.Anything, "spectra/"+acquisitionID.String()+".csv", mock.Anything, "text/csv").Return(nil)
	mockRepo.On("SetCSVKey", mock.Anything, acquisitionID, "spectra/"+acquisitionID.String()+".csv").Return(nil)
	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 90).Return(nil)
	mockRepo.On("StoreResults", mock.Anything, mock.MatchedBy(func(r *models.AcquisitionResults) bool {
		return r.AcquisitionID == acquisitionID.String() && r.PointCount == 3
	})).Return(nil)
	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "completed", 100).Return(nil)

	service := NewProcessingService(mockEngine, mockRepo, mockArtifacts)
	err := service.ProcessAcquisition(context.Background(), acquisitionID)
	require.NoError(t, err)

	mockEngine.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockArtifacts.AssertExpectations(t)
}

func TestProcessAcquisitionSynthesisFailureMarksRecordFailed(t *testing.T) {
	acquisitionID := uuid.New()

	mockEngine := &MockSynthesizer{}
	mockRepo := &MockAcquisitionRepository{}
	mockArtifacts := &MockArtifactStore{}

	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 10).Return(nil)
	mockRepo.On("GetByID", mock.Anything, acquisitionID).Return(storedAcquisition(acquisitionID), nil)
	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 30).Return(nil)
	mockEngine.On("Acquire", mock.Anything, mock.Anything).Return(synth.Spectrum{}, synth.ErrMissingRangeBounds)
	mockRepo.On("UpdateError", mock.Anything, acquisitionID, mock.MatchedBy(func(msg string) bool {
		return msg != ""
	})).Return(nil)

	service := NewProcessingService(mockEngine, mockRepo, mockArtifacts)
	err := service.ProcessAcquisition(context.Background(), acquisitionID)

	// The failure lands on the record, not the caller.
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockArtifacts.AssertNotCalled(t, "UploadArtifact", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessAcquisitionUploadFailureStillStoresResults(t *testing.T) {
	acquisitionID := uuid.New()
	spectrum := synth.Spectrum{X: []float64{1, 2}, Y: []float64{0.1, 0.2}}

	mockEngine := &MockSynthesizer{}
	mockRepo := &MockAcquisitionRepository{}
	mockArtifacts := &MockArtifactStore{}

	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 10).Return(nil)
	mockRepo.On("GetByID", mock.Anything, acquisitionID).Return(storedAcquisition(acquisitionID), nil)
	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 30).Return(nil)
	mockEngine.On("Acquire", mock.Anything, mock.Anything).Return(spectrum, nil)
	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 70).Return(nil)
	mockArtifacts.On("UploadArtifact", mock.Anything, mock.Anything, mock.Anything, "text/csv").Return(assert.AnError)
	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 90).Return(nil)
	mockRepo.On("StoreResults", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "completed", 100).Return(nil)

	service := NewProcessingService(mockEngine, mockRepo, mockArtifacts)
	err := service.ProcessAcquisition(context.Background(), acquisitionID)
	require.NoError(t, err)

	mockRepo.AssertNotCalled(t, "SetCSVKey", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProcessAcquisitionMissingRecord(t *testing.T) {
	acquisitionID := uuid.New()

	mockEngine := &MockSynthesizer{}
	mockRepo := &MockAcquisitionRepository{}

	mockRepo.On("UpdateStatus", mock.Anything, acquisitionID, "processing", 10).Return(nil)
	mockRepo.On("GetByID", mock.Anything, acquisitionID).Return(nil, assert.AnError)

	service := NewProcessingService(mockEngine, mockRepo, &MockArtifactStore{})
	err := service.ProcessAcquisition(context.Background(), acquisitionID)
	require.Error(t, err)
	mockEngine.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything)
}
