package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, it falls back to an internal in-memory store
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//analysis job deadline - extraction plus one LLM round trip
	JobExecutionTimeout = 120 * time.Second

	//uploads - hosting bound, everything past it is rejected before extraction
	MaxUploadSize = 10 << 20 //10mb
	UploadDirName = "temporary_data"

	//summarizer caps - the engine receives these through SummaryConfig,
	//these are only the deployment defaults
	DefaultRowCap      = 100
	DefaultCellCharCap = 500
	DefaultMaxFiles    = 4
	ColumnSampleLimit  = 5

	//llm
	LLMRequestTimeout = 60 * time.Second
	GeminiModelName   = "gemini-2.0-flash"
	OpenAIModelName   = "gpt-4o-mini"
	ModelContext      = "You are an expert data analyst. You are given a bounded structured summary " +
		"of one or more uploaded spreadsheet files. Base your analysis strictly on that summary, " +
		"call out data quality issues and truncation markers, and say so when the summary does not " +
		"contain enough information to answer."

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisJobStore = 0

	//redis timeouts
	RedisJobStoreTTL = 24 * time.Hour
)

// secrets and per-deployment switches come from the environment
var (
	GeminiAPIKey  = os.Getenv("GEMINI_API_KEY")
	OpenAIAPIKey  = os.Getenv("OPENAI_API_KEY")
	LLMProvider   = getEnvOrDefault("LLM_PROVIDER", "gemini") //gemini or openai
	AuthToken     = os.Getenv("AUTH_TOKEN")
	NoAuthBypass  = os.Getenv("AUTH_TOKEN") == "" //empty token means local dev, auth is skipped
	RedisPassword = os.Getenv("REDIS_PASSWORD")
)

func getEnvOrDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
