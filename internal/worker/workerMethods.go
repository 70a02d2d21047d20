package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/akolanti/SheetAPI/internal/config"
	jobmodel "github.com/akolanti/SheetAPI/internal/domain/jobModel"
	"github.com/akolanti/SheetAPI/internal/metrics"
)

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.JobExecutionTimeout)
	defer cancel()
	logger.Debug("Processing job:", "job Id:", job.Id, "trace Id", job.TraceId)

	saveJobState(ctx, job, jobmodel.JobStatusRunning)

	job = _summarizeService.ProcessAnalysis(ctx, job)

	job.EndTime = time.Now()
	if job.Status == jobmodel.JobStatusError {
		saveJobState(ctx, job, jobmodel.JobStatusError)
		return
	}
	saveJobState(ctx, job, jobmodel.JobStatusComplete)
}

func removeWorker(reason string) {
	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()
}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update job status", "err", err)
	}
}
