package service

import (
	"context"
	"errors"
	"strings"

	"sat-prep/internal/cache"
	"sat-prep/internal/config"
	"sat-prep/internal/domain"
	"sat-prep/internal/dto"
	"sat-prep/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// TutorService answers a user's message within a persisted chat session
type TutorService interface {
	Chat(ctx context.Context, userID string, req *dto.TutorChatRequest) (*dto.TutorChatResponse, error)
}

type tutorService struct {
	client  domain.TutorClient
	history ChatHistoryService
	cache   domain.Cache
	config  config.TutorConfig
	sfGroup singleflight.Group
}

func NewTutorService(client domain.TutorClient, history ChatHistoryService, c domain.Cache, cfg config.TutorConfig) TutorService {
	defaults := config.Default().Tutor
	if cfg.Model == "" {
		cfg.Model = defaults.Model
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaults.MaxTokens
	}
	return &tutorService{client: client, history: history, cache: c, config: cfg}
}

// Chat stores the user message before calling the model, so it survives an LLM failure
func (s *tutorService) Chat(ctx context.Context, userID string, req *dto.TutorChatRequest) (*dto.TutorChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("message")}
	}

	session, err := s.resolveSession(ctx, userID, req.SessionID, message)
	if err != nil {
		return nil, err
	}

	if _, err := s.history.AppendMessage(ctx, session.ID, domain.RoleUser, message); err != nil {
		return nil, err
	}

	_, stored, err := s.history.GetConversation(ctx, userID, session.ID)
	if err != nil {
		return nil, err
	}

	raw, err := s.reply(ctx, session.ID, message, buildPrompt(stored))
	if err != nil {
		return nil, err
	}

	parsed := domain.ParseTutorReply(raw)
	if parsed.ExampleErr != nil {
		logger.Get().Warn("Dropping malformed quiz example from tutor reply",
			zap.String("session_id", session.ID),
			zap.Error(parsed.ExampleErr))
	}

	saved, err := s.history.AppendMessage(ctx, session.ID, domain.RoleAssistant, raw)
	if err != nil {
		return nil, err
	}

	return &dto.TutorChatResponse{
		SessionID:   session.ID,
		MessageID:   saved.ID,
		Content:     parsed.Content,
		Category:    string(parsed.Category),
		QuizExample: parsed.QuizExample,
	}, nil
}

func (s *tutorService) resolveSession(ctx context.Context, userID, sessionID, message string) (*domain.ChatSession, error) {
	if sessionID == "" {
		return s.history.StartSession(ctx, userID, message)
	}
	return s.history.OwnedSession(ctx, userID, sessionID)
}

// reply collapses identical in-flight prompts for a session into one model call
// and serves repeated conversations from the reply cache
func (s *tutorService) reply(ctx context.Context, sessionID, message string, prompt []*domain.ChatMessage) (string, error) {
	l := logger.Get()
	cacheKey := cache.TutorReplyKey(s.config.Model, fingerprint(prompt))

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		l.Debug("Tutor reply cache hit", zap.String("session_id", sessionID))
		return cached, nil
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		l.Warn("Tutor reply cache lookup failed", zap.String("key", cacheKey), zap.Error(err))
	}

	v, err, shared := s.sfGroup.Do(sessionID+"\x00"+message, func() (interface{}, error) {
		// 다른 요청이 취소되어도 공유된 호출은 계속 진행
		callCtx := context.WithoutCancel(ctx)
		raw, err := s.client.Complete(callCtx, domain.CompletionRequest{
			Messages:    prompt,
			Model:       s.config.Model,
			Temperature: s.config.Temperature,
			MaxTokens:   s.config.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(callCtx, cacheKey, raw, s.config.ReplyTTL); err != nil {
			l.Warn("Failed to cache tutor reply", zap.String("key", cacheKey), zap.Error(err))
		}
		return raw, nil
	})
	if err != nil {
		return "", domain.NewLLMServiceError(err).WithContext("session_id", sessionID)
	}
	if shared {
		l.Debug("Tutor reply shared between concurrent requests", zap.String("session_id", sessionID))
	}
	return v.(string), nil
}

// buildPrompt prefixes the stored conversation with the system prompt and welcome turn
func buildPrompt(stored []*domain.ChatMessage) []*domain.ChatMessage {
	prompt := make([]*domain.ChatMessage, 0, len(stored)+2)
	prompt = append(prompt,
		&domain.ChatMessage{Role: domain.RoleSystem, Content: tutorSystemPrompt},
		&domain.ChatMessage{Role: domain.RoleAssistant, Content: tutorWelcomeMessage},
	)
	for _, m := range stored {
		if m.Role == domain.RoleSystem {
			continue
		}
		prompt = append(prompt, m)
	}
	return prompt
}

func fingerprint(messages []*domain.ChatMessage) string {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(string(m.Role))
		b.WriteByte(0)
		b.WriteString(m.Content)
		b.WriteByte(0)
	}
	return b.String()
}
