package tutor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sat-prep/internal/config"
	"sat-prep/internal/domain"
	"sat-prep/internal/logger"

	"github.com/tmc/langchaingo/llms"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

var errEmptyCompletion = errors.New("tutor model returned no choices")

// GroqClient implements domain.TutorClient against Groq's OpenAI-compatible API
type GroqClient struct {
	llm     llms.Model
	model   string
	timeout time.Duration
}

// NewGroqClient creates a client for the configured base URL and model
func NewGroqClient(cfg config.TutorConfig) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("tutor API key cannot be empty")
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(cfg.APIKey),
		openaiLLM.WithModel(cfg.Model),
		openaiLLM.WithBaseURL(cfg.BaseURL),
		openaiLLM.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI client for tutor: %w", err)
	}
	return NewGroqClientWithModel(llm, cfg), nil
}

// NewGroqClientWithModel wraps an existing llms.Model
func NewGroqClientWithModel(llm llms.Model, cfg config.TutorConfig) *GroqClient {
	return &GroqClient{llm: llm, model: cfg.Model, timeout: cfg.Timeout}
}

// Complete sends the whole conversation and returns the raw reply text
func (c *GroqClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	opts := []llms.CallOption{
		llms.WithModel(model),
		llms.WithTemperature(req.Temperature),
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	start := time.Now()
	resp, err := c.llm.GenerateContent(ctx, toMessageContent(req.Messages), opts...)
	if err != nil {
		logger.Get().Error("Tutor completion failed",
			zap.String("model", model),
			zap.Int("messages", len(req.Messages)),
			zap.Error(err))
		return "", fmt.Errorf("tutor completion: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}

	logger.Get().Debug("Tutor completion finished",
		zap.String("model", model),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("stop_reason", resp.Choices[0].StopReason))
	return resp.Choices[0].Content, nil
}

func toMessageContent(messages []*domain.ChatMessage) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		out = append(out, llms.TextParts(messageType(m.Role), m.Content))
	}
	return out
}

func messageType(role domain.ChatRole) llms.ChatMessageType {
	switch role {
	case domain.RoleSystem:
		return llms.ChatMessageTypeSystem
	case domain.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
