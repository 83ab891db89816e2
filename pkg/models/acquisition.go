package models

import (
	"time"
)

// CreateAcquisitionRequest represents a request to record and run an acquisition
type CreateAcquisitionRequest struct {
	Body AcquireSpectrumRequestBody
}

// CreateAcquisitionResponseBody is the body of the create acquisition response
type CreateAcquisitionResponseBody struct {
	ID     string `json:"id" doc:"Acquisition unique identifier"`
	Status string `json:"status" doc:"Initial acquisition status"`
}

// CreateAcquisitionResponse represents the response from creating an acquisition
type CreateAcquisitionResponse struct {
	Body CreateAcquisitionResponseBody
}

// GetAcquisitionStatusRequest represents a request to get acquisition status
type GetAcquisitionStatusRequest struct {
	ID string `path:"id" doc:"Acquisition ID"`
}

// GetAcquisitionStatusResponseBody is the body of the status response
type GetAcquisitionStatusResponseBody struct {
	ID        string  `json:"id" doc:"Acquisition ID"`
	Status    string  `json:"status" enum:"pending,processing,completed,failed" doc:"Acquisition status"`
	Progress  int     `json:"progress" minimum:"0" maximum:"100" doc:"Acquisition progress percentage"`
	Message   string  `json:"message,omitempty" doc:"Human-readable status message"`
	ResultsID *string `json:"results_id,omitempty" doc:"Results ID when the acquisition completes"`
}

// GetAcquisitionStatusResponse represents the current status of an acquisition
type GetAcquisitionStatusResponse struct {
	Body GetAcquisitionStatusResponseBody
}

// GetAcquisitionResultsRequest represents a request to get acquisition results
type GetAcquisitionResultsRequest struct {
	ID string `path:"id" doc:"Acquisition ID"`
}

// GetAcquisitionResultsResponseBody is the body of the results response
type GetAcquisitionResultsResponseBody struct {
	ID        string    `json:"id" doc:"Results ID"`
	X         []float64 `json:"x" doc:"Frequency grid in MHz"`
	Y         []float64 `json:"y" doc:"Intensity at each grid point"`
	CSVURL    *string   `json:"csv_url,omitempty" doc:"Pre-signed download URL for the CSV export"`
	CreatedAt time.Time `json:"created_at" doc:"Result creation timestamp"`
}

// GetAcquisitionResultsResponse represents the complete acquisition results
type GetAcquisitionResultsResponse struct {
	Body GetAcquisitionResultsResponseBody
}
