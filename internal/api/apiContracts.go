package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

// AnalysisResponse carries the bounded summary, the AI analysis and every
// per-file failure marker. FileErrors is never silently empty when a file
// failed - each marker also appears inside the summary text.
type AnalysisResponse struct {
	Question       string   `json:"question,omitempty"`
	Summary        string   `json:"summary"`
	Analysis       string   `json:"analysis,omitempty"`
	FileErrors     []string `json:"file_errors,omitempty"`
	FilesProcessed int      `json:"files_processed"`
}

type Result struct {
	Status           string            `json:"status"`
	AnalysisResponse *AnalysisResponse `json:"analysis_response,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

// requests---------------------

type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}
