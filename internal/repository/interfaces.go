package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/rastonlab/ftmw-api/pkg/models"
)

// AcquisitionRepository defines the interface for acquisition data operations
type AcquisitionRepository interface {
	Create(ctx context.Context, acquisition *models.Acquisition) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Acquisition, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error
	UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error
	SetCSVKey(ctx context.Context, id uuid.UUID, key string) error
	StoreResults(ctx context.Context, results *models.AcquisitionResults) error
	GetResults(ctx context.Context, acquisitionID uuid.UUID) (*models.AcquisitionResults, error)
}
