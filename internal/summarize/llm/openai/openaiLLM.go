package openai

import (
	"context"
	"errors"
	"sync"

	"github.com/akolanti/SheetAPI/internal/config"
	"github.com/akolanti/SheetAPI/internal/customHttpClient"
	"github.com/akolanti/SheetAPI/internal/summarize/llm"
	"github.com/akolanti/SheetAPI/pkg/logger_i"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type llmClient struct {
	client    openaisdk.Client
	modelName string
}

var logger *logger_i.Logger
var openaiClient *llmClient
var once sync.Once

func GetOpenAIClient(modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		if apikey == "" {
			logger.Error("OpenAI API key is empty")
			return
		}
		client := openaisdk.NewClient(
			option.WithAPIKey(apikey),
			option.WithHTTPClient(customHttpClient.GetPooledClient()),
		)
		openaiClient = &llmClient{client: client, modelName: modelName}
		logger.Info("OpenAI client created", "model", modelName)
	})

	if openaiClient == nil {
		return nil
	}
	return openaiClient
}

func (c *llmClient) Generate(ctx context.Context, summary string, question string) (string, error) {
	userPrompt := llm.BuildAnalysisPrompt(summary, question)

	completion, err := c.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: c.modelName,
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(config.ModelContext),
			openaisdk.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty response from openai")
	}
	return completion.Choices[0].Message.Content, nil
}
