package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rastonlab/ftmw-api/internal/repository"
	"github.com/rastonlab/ftmw-api/pkg/models"
)

// PostgresAcquisitionRepository implements AcquisitionRepository for PostgreSQL
type PostgresAcquisitionRepository struct {
	db *sql.DB
}

// NewPostgresAcquisitionRepository creates a new PostgreSQL acquisition repository
func NewPostgresAcquisitionRepository(db *sql.DB) repository.AcquisitionRepository {
	return &PostgresAcquisitionRepository{db: db}
}

// Create inserts a new acquisition record
func (r *PostgresAcquisitionRepository) Create(ctx context.Context, acquisition *models.Acquisition) error {
	params, err := json.Marshal(acquisition.Params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	query := `
		INSERT INTO acquisitions (id, molecule, mode, params, status, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.ExecContext(ctx, query,
		acquisition.ID,
		acquisition.Molecule,
		acquisition.Mode,
		string(params),
		acquisition.Status,
		acquisition.Progress,
		acquisition.CreatedAt,
		acquisition.UpdatedAt)

	return err
}

// GetByID retrieves an acquisition by ID
func (r *PostgresAcquisitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Acquisition, error) {
	query := `
		SELECT id, molecule, mode, params, status, progress, csv_s3_key, error_message, created_at, updated_at, completed_at
		FROM acquisitions
		WHERE id = $1`

	var acquisition models.Acquisition
	var paramsStr string
	var csvKey, errorMsg sql.NullString
	var completedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&acquisition.ID,
		&acquisition.Molecule,
		&acquisition.Mode,
		&paramsStr,
		&acquisition.Status,
		&acquisition.Progress,
		&csvKey,
		&errorMsg,
		&acquisition.CreatedAt,
		&acquisition.UpdatedAt,
		&completedAt)

	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(paramsStr), &acquisition.Params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal params: %w", err)
	}
	if csvKey.Valid {
		acquisition.CSVS3Key = &csvKey.String
	}
	if errorMsg.Valid {
		acquisition.ErrorMsg = &errorMsg.String
	}
	if completedAt.Valid {
		acquisition.CompletedAt = &completedAt.Time
	}

	return &acquisition, nil
}

// UpdateStatus updates the status and progress of an acquisition
func (r *PostgresAcquisitionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	query := `
		UPDATE acquisitions
		SET status = $1, progress = $2, updated_at = NOW(),
		    completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END
		WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, status, progress, id)
	return err
}

// UpdateError updates the error message for an acquisition
func (r *PostgresAcquisitionRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	query := `
		UPDATE acquisitions
		SET status = 'failed', error_message = $1, updated_at = NOW()
		WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, errorMsg, id)
	return err
}

// SetCSVKey records the object-storage key of the exported CSV artifact
func (r *PostgresAcquisitionRepository) SetCSVKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `
		UPDATE acquisitions
		SET csv_s3_key = $1, updated_at = NOW()
		WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, key, id)
	return err
}

// StoreResults stores synthesized spectrum data
func (r *PostgresAcquisitionRepository) StoreResults(ctx context.Context, results *models.AcquisitionResults) error {
	frequencies, err := json.Marshal(results.Frequencies)
	if err != nil {
		return fmt.Errorf("failed to marshal frequencies: %w", err)
	}
	intensities, err := json.Marshal(results.Intensities)
	if err != nil {
		return fmt.Errorf("failed to marshal intensities: %w", err)
	}

	query := `
		INSERT INTO acquisition_results (id, acquisition_id, frequencies, intensities, point_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		results.ID,
		results.AcquisitionID,
		string(frequencies),
		string(intensities),
		results.PointCount,
		results.CreatedAt)

	return err
}

// GetResults retrieves synthesized spectrum data
func (r *PostgresAcquisitionRepository) GetResults(ctx context.Context, acquisitionID uuid.UUID) (*models.AcquisitionResults, error) {
	query := `
		SELECT id, acquisition_id, frequencies, intensities, point_count, created_at
		FROM acquisition_results
		WHERE acquisition_id = $1`

	var results models.AcquisitionResults
	var frequenciesStr, intensitiesStr string

	err := r.db.QueryRowContext(ctx, query, acquisitionID).Scan(
		&results.ID,
		&results.AcquisitionID,
		&frequenciesStr,
		&intensitiesStr,
		&results.PointCount,
		&results.CreatedAt)

	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(frequenciesStr), &results.Frequencies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal frequencies: %w", err)
	}
	if err := json.Unmarshal([]byte(intensitiesStr), &results.Intensities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intensities: %w", err)
	}

	return &results, nil
}
