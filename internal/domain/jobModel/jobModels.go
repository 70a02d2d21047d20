package jobModel

import (
	"context"
	"time"
)

type JobStatus string
type InternalStatus string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	AnalyzeInit   InternalStatus = "Init"
	ExtractionRun InternalStatus = "Extraction"
	SummarizeRun  InternalStatus = "Summarization"
	LLMCall       InternalStatus = "LLM"
	Error         InternalStatus = "Error"
	Complete      InternalStatus = "Complete"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

// UploadedFileRef points at one spooled upload. The worker deletes the temp
// file once the job finishes, whatever the outcome.
type UploadedFileRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type JobPayload struct {
	Files    []UploadedFileRef `json:"files,omitempty"`
	Question string            `json:"question,omitempty"`

	Summary        string   `json:"summary,omitempty"`
	Analysis       string   `json:"analysis,omitempty"`
	FileErrors     []string `json:"file_errors,omitempty"`
	FilesProcessed int      `json:"files_processed,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
