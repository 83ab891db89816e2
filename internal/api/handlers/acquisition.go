package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rastonlab/ftmw-api/internal/processing"
	"github.com/rastonlab/ftmw-api/internal/repository"
	"github.com/rastonlab/ftmw-api/internal/storage"
	"github.com/rastonlab/ftmw-api/pkg/models"
)

// AcquisitionHandler handles recorded acquisition requests
type AcquisitionHandler struct {
	repo          repository.AcquisitionRepository
	artifacts     storage.ArtifactStore
	processingSvc processing.ProcessingService
}

// NewAcquisitionHandler creates a new acquisition handler
func NewAcquisitionHandler(repo repository.AcquisitionRepository, artifacts storage.ArtifactStore, processingSvc processing.ProcessingService) *AcquisitionHandler {
	return &AcquisitionHandler{
		repo:          repo,
		artifacts:     artifacts,
		processingSvc: processingSvc,
	}
}

// CreateAcquisition records an acquisition and starts synthesis in the background
func (h *AcquisitionHandler) CreateAcquisition(ctx context.Context, req *models.CreateAcquisitionRequest) (*models.CreateAcquisitionResponse, error) {
	acquisitionID := uuid.New()
	log.Info().Str("acquisitionID", acquisitionID.String()).Str("molecule", req.Body.Molecule).Msg("Creating acquisition")

	acquisition := &models.Acquisition{
		ID:        acquisitionID.String(),
		Molecule:  req.Body.Molecule,
		Mode:      req.Body.AcquisitionType,
		Params:    AcquisitionParamsFromBody(req.Body),
		Status:    "pending",
		Progress:  0,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(ctx, acquisition); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create acquisition", err)
	}

	// Run synthesis in the background; the status endpoint tracks progress.
	go func() {
		if err := h.processingSvc.ProcessAcquisition(context.Background(), acquisitionID); err != nil {
			log.Error().Err(err).Str("acquisitionID", acquisitionID.String()).Msg("Acquisition processing failed")
			if uerr := h.repo.UpdateError(context.Background(), acquisitionID, fmt.Sprintf("Processing failed: %v", err)); uerr != nil {
				log.Error().Err(uerr).Str("acquisitionID", acquisitionID.String()).Msg("Failed to record acquisition failure")
			}
		}
	}()

	return &models.CreateAcquisitionResponse{
		Body: models.CreateAcquisitionResponseBody{
			ID:     acquisition.ID,
			Status: acquisition.Status,
		},
	}, nil
}

// GetAcquisitionStatus returns the current status of an acquisition
func (h *AcquisitionHandler) GetAcquisitionStatus(ctx context.Context, req *models.GetAcquisitionStatusRequest) (*models.GetAcquisitionStatusResponse, error) {
	acquisitionID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid acquisition ID", err)
	}

	acquisition, err := h.repo.GetByID(ctx, acquisitionID)
	if err != nil {
		return nil, huma.Error404NotFound("Acquisition not found", err)
	}

	var resultsID *string
	if acquisition.Status == "completed" {
		if results, err := h.repo.GetResults(ctx, acquisitionID); err == nil && results != nil {
			resultsID = &results.ID
		}
	}

	return &models.GetAcquisitionStatusResponse{
		Body: models.GetAcquisitionStatusResponseBody{
			ID:        acquisition.ID,
			Status:    acquisition.Status,
			Progress:  acquisition.Progress,
			Message:   statusMessage(acquisition),
			ResultsID: resultsID,
		},
	}, nil
}

// GetAcquisitionResults returns the synthesized spectrum of a completed acquisition
func (h *AcquisitionHandler) GetAcquisitionResults(ctx context.Context, req *models.GetAcquisitionResultsRequest) (*models.GetAcquisitionResultsResponse, error) {
	acquisitionID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid acquisition ID", err)
	}

	acquisition, err := h.repo.GetByID(ctx, acquisitionID)
	if err != nil {
		return nil, huma.Error404NotFound("Acquisition not found", err)
	}
	if acquisition.Status != "completed" {
		return nil, huma.Error409Conflict("Acquisition not yet completed",
			fmt.Errorf("acquisition status is %s", acquisition.Status))
	}

	results, err := h.repo.GetResults(ctx, acquisitionID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to get results", err)
	}

	var csvURL *string
	if acquisition.CSVS3Key != nil {
		if url, err := h.artifacts.GenerateDownloadURL(ctx, *acquisition.CSVS3Key); err == nil {
			csvURL = &url
		}
	}

	return &models.GetAcquisitionResultsResponse{
		Body: models.GetAcquisitionResultsResponseBody{
			ID:        results.ID,
			X:         results.Frequencies,
			Y:         results.Intensities,
			CSVURL:    csvURL,
			CreatedAt: results.CreatedAt,
		},
	}, nil
}

// statusMessage creates a human-readable status message
func statusMessage(acquisition *models.Acquisition) string {
	switch acquisition.Status {
	case "pending":
		return "Acquisition queued for synthesis..."
	case "processing":
		if acquisition.Progress < 30 {
			return "Loading line catalog..."
		} else if acquisition.Progress < 70 {
			return "Synthesizing spectrum..."
		}
		return "Exporting results..."
	case "completed":
		return "Acquisition complete!"
	case "failed":
		if acquisition.ErrorMsg != nil {
			return *acquisition.ErrorMsg
		}
		return "Acquisition failed. Please try again."
	default:
		return "Unknown status"
	}
}
