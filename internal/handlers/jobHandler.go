package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akolanti/SheetAPI/internal/config"
	"github.com/akolanti/SheetAPI/internal/domain/jobModel"
	"github.com/akolanti/SheetAPI/internal/job"
	"github.com/akolanti/SheetAPI/internal/metrics"
	"github.com/akolanti/SheetAPI/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service *job.Service
}

func InitJobHandler(jobService *job.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})
}

func CreateNewJob(newJob newJobData) {
	logJH.Info("To create new job", "traceId", newJob.traceId, "job id", newJob.id)
	handlerInstance.pushToJobChannel(newJob)
}

func GetJobStatus(id string, traceId string) (result jobModel.Job, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{}
	_job.Id = newJob.id
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = jobModel.JobStatusQueued
	_job.CurrentStep = jobModel.AnalyzeInit
	_job.JobPayload.Files = newJob.files
	_job.JobPayload.Question = newJob.question

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //this is a blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new job")

	//every analysis job involves extraction plus an external LLM call, so the
	//dispatcher gets a signal per job and decides whether the pool can grow.
	//idle workers retire on their own, which keeps the pool small between bursts
	accurateCount := atomic.AddInt64(&h.service.RequestCount, 1)
	if accurateCount%config.RequestsPerNewWorkerCount == 0 || len(newJob.files) > 1 {
		metrics.StartDispatcherSignalCount() //metrics
		logJH.Debug("Request count ", accurateCount)
		h.service.DispatcherChannel <- true
	}
}
