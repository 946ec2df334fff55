package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sat-prep/internal/config"
	"sat-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	gotMessages []llms.MessageContent
	gotOptions  llms.CallOptions
	resp        *llms.ContentResponse
	err         error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.gotMessages = messages
	for _, opt := range options {
		opt(&f.gotOptions)
	}
	return f.resp, f.err
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func conversation() []*domain.ChatMessage {
	return []*domain.ChatMessage{
		{Role: domain.RoleSystem, Content: "system prompt"},
		{Role: domain.RoleAssistant, Content: "welcome"},
		{Role: domain.RoleUser, Content: "What is a slope?"},
	}
}

func TestGroqClient_Complete(t *testing.T) {
	fake := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "Math question\nRise over run."}}}}
	client := NewGroqClientWithModel(fake, config.TutorConfig{Model: "llama3-70b-8192", Timeout: time.Second})

	out, err := client.Complete(context.Background(), domain.CompletionRequest{
		Messages:    conversation(),
		Temperature: 0.5,
		MaxTokens:   2048,
	})
	require.NoError(t, err)
	assert.Equal(t, "Math question\nRise over run.", out)

	require.Len(t, fake.gotMessages, 3)
	assert.Equal(t, llms.ChatMessageTypeSystem, fake.gotMessages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeAI, fake.gotMessages[1].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, fake.gotMessages[2].Role)
	assert.Equal(t, llms.TextContent{Text: "What is a slope?"}, fake.gotMessages[2].Parts[0])

	assert.Equal(t, "llama3-70b-8192", fake.gotOptions.Model)
	assert.Equal(t, 0.5, fake.gotOptions.Temperature)
	assert.Equal(t, 2048, fake.gotOptions.MaxTokens)
}

func TestGroqClient_RequestModelOverrides(t *testing.T) {
	fake := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "ok"}}}}
	client := NewGroqClientWithModel(fake, config.TutorConfig{Model: "default"})

	_, err := client.Complete(context.Background(), domain.CompletionRequest{Messages: conversation(), Model: "mixtral-8x7b-32768"})
	require.NoError(t, err)
	assert.Equal(t, "mixtral-8x7b-32768", fake.gotOptions.Model)
	assert.Zero(t, fake.gotOptions.MaxTokens)
}

func TestGroqClient_Errors(t *testing.T) {
	t.Run("model error", func(t *testing.T) {
		cause := errors.New("rate limited")
		client := NewGroqClientWithModel(&fakeModel{err: cause}, config.TutorConfig{Model: "m"})
		_, err := client.Complete(context.Background(), domain.CompletionRequest{Messages: conversation()})
		assert.ErrorIs(t, err, cause)
	})

	t.Run("no choices", func(t *testing.T) {
		client := NewGroqClientWithModel(&fakeModel{resp: &llms.ContentResponse{}}, config.TutorConfig{Model: "m"})
		_, err := client.Complete(context.Background(), domain.CompletionRequest{Messages: conversation()})
		assert.ErrorIs(t, err, errEmptyCompletion)
	})
}

func TestNewGroqClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGroqClient(config.TutorConfig{Model: "m"})
	assert.Error(t, err)
}

func TestGroqClient_OpenAICompatibleEndpoint(t *testing.T) {
	var received struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content any    `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "llama3-70b-8192",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Not math\nRead actively."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer srv.Close()

	client, err := NewGroqClient(config.TutorConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "llama3-70b-8192",
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	out, err := client.Complete(context.Background(), domain.CompletionRequest{Messages: conversation(), Temperature: 0.5})
	require.NoError(t, err)
	assert.Equal(t, "Not math\nRead actively.", out)

	assert.Equal(t, "llama3-70b-8192", received.Model)
	require.Len(t, received.Messages, 3)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Equal(t, "assistant", received.Messages[1].Role)
	assert.Equal(t, "user", received.Messages[2].Role)
}
