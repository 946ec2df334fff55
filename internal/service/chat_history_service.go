package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sat-prep/internal/domain"
	"sat-prep/internal/logger"
	"sat-prep/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ChatHistoryService manages a user's tutoring conversations. Every
// operation is scoped to userID; a session owned by someone else is
// reported as not found.
type ChatHistoryService interface {
	ListSessions(ctx context.Context, userID string) ([]*domain.ChatSession, error)
	GetConversation(ctx context.Context, userID, sessionID string) (*domain.ChatSession, []*domain.ChatMessage, error)
	RenameSession(ctx context.Context, userID, sessionID, title string) (*domain.ChatSession, error)
	ToggleFavorite(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error)
	DeleteSession(ctx context.Context, userID, sessionID string) error

	StartSession(ctx context.Context, userID, firstMessage string) (*domain.ChatSession, error)
	OwnedSession(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error)
	AppendMessage(ctx context.Context, sessionID string, role domain.ChatRole, content string) (*domain.ChatMessage, error)
}

type chatHistoryService struct {
	repo domain.ChatHistoryRepository
	tx   domain.TransactionManager
}

func NewChatHistoryService(repo domain.ChatHistoryRepository, tx domain.TransactionManager) ChatHistoryService {
	return &chatHistoryService{repo: repo, tx: tx}
}

func (s *chatHistoryService) ListSessions(ctx context.Context, userID string) ([]*domain.ChatSession, error) {
	sessions, err := s.repo.ListSessions(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list chat sessions", err)
	}
	if sessions == nil {
		sessions = []*domain.ChatSession{}
	}
	return sessions, nil
}

func (s *chatHistoryService) OwnedSession(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load chat session", err)
	}
	if session == nil || session.UserID != userID {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return session, nil
}

// GetConversation loads the session and its messages concurrently
func (s *chatHistoryService) GetConversation(ctx context.Context, userID, sessionID string) (*domain.ChatSession, []*domain.ChatMessage, error) {
	var (
		session  *domain.ChatSession
		messages []*domain.ChatMessage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		session, err = s.OwnedSession(gctx, userID, sessionID)
		return err
	})
	g.Go(func() error {
		var err error
		messages, err = s.repo.ListMessages(gctx, sessionID)
		if err != nil {
			return domain.NewInternalError("failed to list chat messages", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if messages == nil {
		messages = []*domain.ChatMessage{}
	}
	return session, messages, nil
}

func (s *chatHistoryService) RenameSession(ctx context.Context, userID, sessionID, title string) (*domain.ChatSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("title")}
	}

	session, err := s.OwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSession(ctx, sessionID, domain.ChatSessionUpdate{Title: &title}); err != nil {
		return nil, wrapRepoError("failed to rename chat session", err)
	}

	session.Title = title
	session.UpdatedAt = time.Now()
	return session, nil
}

func (s *chatHistoryService) ToggleFavorite(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error) {
	session, err := s.OwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	favorite := !session.IsFavorite
	if err := s.repo.UpdateSession(ctx, sessionID, domain.ChatSessionUpdate{IsFavorite: &favorite}); err != nil {
		return nil, wrapRepoError("failed to update chat session", err)
	}

	session.IsFavorite = favorite
	session.UpdatedAt = time.Now()
	return session, nil
}

// DeleteSession removes the messages and the session in a single transaction
func (s *chatHistoryService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	if _, err := s.OwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.DeleteMessages(txCtx, sessionID); err != nil {
			return err
		}
		return s.repo.DeleteSession(txCtx, sessionID)
	})
	if err != nil {
		return wrapRepoError("failed to delete chat session", err)
	}

	logger.Get().Info("Chat session deleted", zap.String("session_id", sessionID), zap.String("user_id", userID))
	return nil
}

func (s *chatHistoryService) StartSession(ctx context.Context, userID, firstMessage string) (*domain.ChatSession, error) {
	session := domain.NewChatSession(util.NewULID(), userID, firstMessage)
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, domain.NewInternalError("failed to create chat session", err)
	}
	return session, nil
}

func (s *chatHistoryService) AppendMessage(ctx context.Context, sessionID string, role domain.ChatRole, content string) (*domain.ChatMessage, error) {
	msg := &domain.ChatMessage{
		ID:        util.NewULID(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	// 메시지 저장과 세션 updated_at 갱신은 한 트랜잭션
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.AddMessage(txCtx, msg)
	})
	if err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to store %s message", role), err)
	}
	return msg, nil
}

// wrapRepoError keeps domain errors from the repository intact
func wrapRepoError(message string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewInternalError(message, err)
}
