package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rastonlab/ftmw-api/internal/api/handlers"
	"github.com/rastonlab/ftmw-api/internal/catalog"
	"github.com/rastonlab/ftmw-api/internal/processing"
	"github.com/rastonlab/ftmw-api/internal/repository"
	"github.com/rastonlab/ftmw-api/internal/storage"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, engine processing.Synthesizer, store catalog.Store, artifacts storage.ArtifactStore, repo repository.AcquisitionRepository, processingSvc processing.ProcessingService) {
	// Initialize handlers
	spectrumHandler := handlers.NewSpectrumHandler(engine, store)
	acquisitionHandler := handlers.NewAcquisitionHandler(repo, artifacts, processingSvc)

	// Register synthesis routes
	huma.Register(api, huma.Operation{
		OperationID: "acquireSpectrum",
		Method:      http.MethodPost,
		Path:        "/api/spectra",
		Summary:     "Acquire a spectrum",
		Description: "Synthesizes the observed spectrum for a molecule and acquisition setup",
		Tags:        []string{"Spectrum"},
	}, spectrumHandler.AcquireSpectrum)

	huma.Register(api, huma.Operation{
		OperationID: "findPeaks",
		Method:      http.MethodPost,
		Path:        "/api/peaks",
		Summary:     "Find peaks",
		Description: "Thresholds a synthesized spectrum and returns its peaks",
		Tags:        []string{"Spectrum"},
	}, spectrumHandler.FindPeaks)

	huma.Register(api, huma.Operation{
		OperationID: "listMolecules",
		Method:      http.MethodGet,
		Path:        "/api/molecules",
		Summary:     "List molecules",
		Description: "Lists the molecules available in the line catalog",
		Tags:        []string{"Catalog"},
	}, spectrumHandler.ListMolecules)

	// Register acquisition record routes
	huma.Register(api, huma.Operation{
		OperationID: "createAcquisition",
		Method:      http.MethodPost,
		Path:        "/api/acquisitions",
		Summary:     "Create a new acquisition",
		Description: "Records an acquisition and synthesizes its spectrum in the background",
		Tags:        []string{"Acquisition"},
	}, acquisitionHandler.CreateAcquisition)

	huma.Register(api, huma.Operation{
		OperationID: "getAcquisitionStatus",
		Method:      http.MethodGet,
		Path:        "/api/acquisitions/{id}/status",
		Summary:     "Get acquisition status",
		Description: "Returns the current status and progress of an acquisition",
		Tags:        []string{"Acquisition"},
	}, acquisitionHandler.GetAcquisitionStatus)

	huma.Register(api, huma.Operation{
		OperationID: "getAcquisitionResults",
		Method:      http.MethodGet,
		Path:        "/api/acquisitions/{id}/results",
		Summary:     "Get acquisition results",
		Description: "Returns the synthesized spectrum and CSV download link",
		Tags:        []string{"Acquisition"},
	}, acquisitionHandler.GetAcquisitionResults)
}
