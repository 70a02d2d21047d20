package adapter

import (
	"fmt"
	"time"

	"github.com/akolanti/SheetAPI/internal/api"
	"github.com/akolanti/SheetAPI/internal/domain/jobModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id),
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:           string(job.Status),
		AnalysisResponse: ToAnalysisResponse(job.JobPayload),
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToAnalysisResponse(payload jobModel.JobPayload) *api.AnalysisResponse {
	if payload.Summary == "" && payload.Analysis == "" {
		return nil
	}

	return &api.AnalysisResponse{
		Question:       payload.Question,
		Summary:        payload.Summary,
		Analysis:       payload.Analysis,
		FileErrors:     payload.FileErrors,
		FilesProcessed: payload.FilesProcessed,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
