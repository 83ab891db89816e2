package processing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rastonlab/ftmw-api/internal/export"
	"github.com/rastonlab/ftmw-api/internal/repository"
	"github.com/rastonlab/ftmw-api/internal/storage"
	"github.com/rastonlab/ftmw-api/internal/synth"
	"github.com/rastonlab/ftmw-api/pkg/models"
)

// Synthesizer runs the spectral synthesis pipeline for one acquisition.
type Synthesizer interface {
	Acquire(ctx context.Context, params models.AcquisitionParams) (synth.Spectrum, error)
}

// ProcessingService runs recorded acquisitions to completion.
type ProcessingService interface {
	ProcessAcquisition(ctx context.Context, acquisitionID uuid.UUID) error
}

type processingService struct {
	engine     Synthesizer
	repository repository.AcquisitionRepository
	artifacts  storage.ArtifactStore
}

// NewProcessingService creates the acquisition runner.
func NewProcessingService(engine Synthesizer, repo repository.AcquisitionRepository, artifacts storage.ArtifactStore) ProcessingService {
	return &processingService{
		engine:     engine,
		repository: repo,
		artifacts:  artifacts,
	}
}

// ProcessAcquisition synthesizes the spectrum for a stored acquisition,
// exports the CSV artifact and records the results. Synthesis failures mark
// the record failed rather than returning an error: the status row is the
// caller-visible outcome.
func (s *processingService) ProcessAcquisition(ctx context.Context, acquisitionID uuid.UUID) error {
	if err := s.repository.UpdateStatus(ctx, acquisitionID, "processing", 10); err != nil {
		return err
	}

	acquisition, err := s.repository.GetByID(ctx, acquisitionID)
	if err != nil {
		return err
	}

	if err := s.repository.UpdateStatus(ctx, acquisitionID, "processing", 30); err != nil {
		return err
	}

	spectrum, err := s.engine.Acquire(ctx, acquisition.Params)
	if err != nil {
		log.Warn().Err(err).Str("acquisitionID", acquisitionID.String()).Msg("Synthesis failed")
		s.repository.UpdateError(ctx, acquisitionID, fmt.Sprintf("Synthesis failed: %v", err))
		return nil
	}

	if err := s.repository.UpdateStatus(ctx, acquisitionID, "processing", 70); err != nil {
		return err
	}

	csvData, err := export.SpectrumCSV(spectrum.X, spectrum.Y)
	if err != nil {
		s.repository.UpdateError(ctx, acquisitionID, fmt.Sprintf("CSV export failed: %v", err))
		return nil
	}

	csvKey := fmt.Sprintf("spectra/%s.csv", acquisitionID)
	if err := s.artifacts.UploadArtifact(ctx, csvKey, csvData, "text/csv"); err != nil {
		// The spectrum itself is still stored; the artifact is best-effort.
		log.Warn().Err(err).Str("acquisitionID", acquisitionID.String()).Msg("CSV upload failed")
	} else if err := s.repository.SetCSVKey(ctx, acquisitionID, csvKey); err != nil {
		return err
	}

	if err := s.repository.UpdateStatus(ctx, acquisitionID, "processing", 90); err != nil {
		return err
	}

	results := &models.AcquisitionResults{
		ID:            uuid.New().String(),
		AcquisitionID: acquisition.ID,
		Frequencies:   spectrum.X,
		Intensities:   spectrum.Y,
		PointCount:    len(spectrum.X),
		CreatedAt:     time.Now(),
	}
	if err := s.repository.StoreResults(ctx, results); err != nil {
		return err
	}

	return s.repository.UpdateStatus(ctx, acquisitionID, "completed", 100)
}
