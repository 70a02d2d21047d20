package summarize

import (
	"context"
	"os"
	"time"

	"github.com/akolanti/SheetAPI/internal/config"
	"github.com/akolanti/SheetAPI/internal/domain/jobModel"
	"github.com/akolanti/SheetAPI/internal/domain/sheetModel"
	"github.com/akolanti/SheetAPI/internal/metrics"
	"github.com/akolanti/SheetAPI/internal/summarize/llm"
	"github.com/akolanti/SheetAPI/pkg/logger_i"
)

// Service is what the worker calls. It hides the engine and the LLM provider
// behind one method so the worker stays decoupled from both.
type Service interface {
	ProcessAnalysis(ctx context.Context, job jobModel.Job) jobModel.Job
}

type service struct {
	llmProvider llm.Provider
	summaryCfg  sheetModel.SummaryConfig
	logger      *logger_i.Logger
}

// NewService constructor. The caps are injected once and reused for every
// job this service processes.
func NewService(provider llm.Provider, cfg sheetModel.SummaryConfig) Service {
	return &service{
		llmProvider: provider,
		summaryCfg:  cfg,
		logger:      logger_i.NewLogger("Summarize Service"),
	}
}

// ProcessAnalysis runs the full pipeline for one job: read the spooled
// uploads, summarize them into one bounded document, then hand that document
// to the LLM provider together with the user question. The temp uploads are
// removed whatever the outcome.
func (s *service) ProcessAnalysis(ctx context.Context, job jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "JobId", job.Id)
	defer s.cleanupUploads(job.JobPayload.Files, inMethodLogger)

	processContext, cancel := context.WithTimeout(ctx, config.JobExecutionTimeout)
	defer cancel()

	files := s.readUploads(job.JobPayload.Files, inMethodLogger)

	doc, err := s.executeSummarizeStep(processContext, inMethodLogger, &job, files)
	if err != nil {
		if IsConfigError(err) {
			return s.jobError(job, err, "SUMMARIZER_MISCONFIGURED", false)
		}
		return s.jobError(job, err, "SUMMARIZATION_FAILURE", true)
	}

	job.JobPayload.Summary = doc.Text
	job.JobPayload.FilesProcessed = len(files)
	for _, fileErr := range doc.Errors {
		job.JobPayload.FileErrors = append(job.JobPayload.FileErrors, fileErr.Marker())
	}
	metrics.CaptureFilesProcessed(len(files), len(doc.Errors))

	answer, err := s.executeLLMStep(processContext, inMethodLogger, &job, doc)
	if err != nil {
		//the bounded summary survives in the payload even when the provider fails
		return s.jobError(job, err, "LLM_GENERATION_FAILURE", true)
	}

	return returnOutput(job, answer)
}

// readUploads loads the spooled files back into memory. A file that cannot
// be read stays in the batch with empty content - the extractor will report
// it as unreadable, which keeps the failure visible in the Summary Document.
func (s *service) readUploads(refs []jobModel.UploadedFileRef, log *logger_i.Logger) []sheetModel.UploadedFile {
	files := make([]sheetModel.UploadedFile, len(refs))
	for i, ref := range refs {
		content, err := os.ReadFile(ref.Path)
		if err != nil {
			log.Error("Failed to read spooled upload", "file", ref.Name, "err", err)
		}
		files[i] = sheetModel.UploadedFile{Name: ref.Name, Content: content}
	}
	return files
}

func (s *service) cleanupUploads(refs []jobModel.UploadedFileRef, log *logger_i.Logger) {
	for _, ref := range refs {
		if err := os.Remove(ref.Path); err != nil {
			log.Error("Error removing temp upload", "file", ref.Path, "err", err)
		}
	}
}

func (s *service) executeSummarizeStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, files []sheetModel.UploadedFile) (sheetModel.SummaryDocument, error) {
	*job = logOutput(*job, jobModel.SummarizeRun, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("summarization", time.Since(start)) }()

	return SummarizeBatch(ctx, files, s.summaryCfg)
}

func (s *service) executeLLMStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, doc sheetModel.SummaryDocument) (string, error) {
	*job = logOutput(*job, jobModel.LLMCall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	return s.llmProvider.Generate(ctx, doc.Text, job.JobPayload.Question)
}
