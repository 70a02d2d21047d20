// @title           Sheet Analysis API
// @version         1.0
// @description     This API handles asynchronous spreadsheet analysis
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/SheetAPI/internal/config"
	"github.com/akolanti/SheetAPI/internal/data/store"
	jobmodel "github.com/akolanti/SheetAPI/internal/domain/jobModel"
	"github.com/akolanti/SheetAPI/internal/domain/sheetModel"
	"github.com/akolanti/SheetAPI/internal/handlers"
	"github.com/akolanti/SheetAPI/internal/job"
	"github.com/akolanti/SheetAPI/internal/server"
	"github.com/akolanti/SheetAPI/internal/summarize"
	"github.com/akolanti/SheetAPI/internal/summarize/llm"
	"github.com/akolanti/SheetAPI/internal/summarize/llm/gemini"
	"github.com/akolanti/SheetAPI/internal/summarize/llm/openai"
	"github.com/akolanti/SheetAPI/internal/worker"
	"github.com/akolanti/SheetAPI/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and job store
	var jobStore jobmodel.JobStore
	if redisJobStore := store.GetRedisJobStore(serviceContext); redisJobStore != nil {
		jobStore = redisJobStore
	} else if config.FALLBACK_REDIS_TO_INTERNALSTORE {
		logger.Error("Redis store is offline, falling back to in-memory store")
		jobStore = store.InitInMemoryJobStore()
	} else {
		logger.Error("Redis store is offline. Shutting down.")
		return
	}

	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		JobStore:          jobStore,
	}
	logger.Info("Starting job service")
	service := job.InitJobService(serviceConfig)

	llmProvider := selectLLMProvider(serviceContext)
	if llmProvider == nil {
		logger.Error("LLM provider failed to initialize. Shutting down.", "provider", config.LLMProvider)
		return
	}

	summaryConfig := sheetModel.DefaultSummaryConfig()
	if err := summaryConfig.Validate(); err != nil {
		logger.Error("Invalid summarizer configuration. Shutting down.", "error", err)
		return
	}
	summarizeService := summarize.NewService(llmProvider, summaryConfig)

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, summarizeService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

func selectLLMProvider(ctx context.Context) llm.Provider {
	switch config.LLMProvider {
	case "openai":
		return openai.GetOpenAIClient(config.OpenAIModelName, config.OpenAIAPIKey)
	default:
		return gemini.GetGeminiClient(ctx, config.GeminiModelName, config.GeminiAPIKey)
	}
}
