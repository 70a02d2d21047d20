package gemini

import (
	"context"
	"errors"
	"sync"

	"github.com/akolanti/SheetAPI/internal/config"
	"github.com/akolanti/SheetAPI/internal/customHttpClient"
	"github.com/akolanti/SheetAPI/internal/summarize/llm"
	"github.com/akolanti/SheetAPI/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

func GetGeminiClient(ctx context.Context, modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, apikey, modelName)
	})

	if geminiClient == nil {
		return nil
	}
	return &llmClient{client: geminiClient.client, modelName: geminiClient.modelName}
}

func newGeminiClient(ctx context.Context, apikey string, modelName string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apikey,
		HTTPClient: customHttpClient.GetPooledClient(),
	})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	geminiClient = &llmClient{client: c, modelName: modelName}
	logger.Info("Gemini client created", "model", modelName)
}

func (c *llmClient) Generate(ctx context.Context, summary string, question string) (string, error) {
	systemInstruction := &genai.Content{
		Parts: []*genai.Part{
			{Text: config.ModelContext},
		},
	}

	userPrompt := llm.BuildAnalysisPrompt(summary, question)

	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction,
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(userPrompt),
		contentConfig,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", errors.New("empty response from gemini")
	}
	return result.Text(), nil
}
