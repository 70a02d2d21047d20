package summarize

import (
	"net/http"

	"github.com/akolanti/SheetAPI/internal/domain/jobModel"
	"github.com/akolanti/SheetAPI/pkg/logger_i"
)

func returnOutput(job jobModel.Job, answer string) jobModel.Job {
	job.JobPayload.Analysis = answer
	job.CurrentStep = jobModel.Complete
	return job
}

func logOutput(job jobModel.Job, status jobModel.InternalStatus, log *logger_i.Logger) jobModel.Job {
	job.CurrentStep = status
	log.Debug("ProcessAnalysis", "Current Status", job.CurrentStep)
	return job
}

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}
