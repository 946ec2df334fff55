package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

const (
	defaultSessionTitle = "New Chat"
	sessionTitleLength  = 30
)

// ChatSession is a tutoring conversation owned by a user
type ChatSession struct {
	ID         string
	UserID     string
	Title      string
	IsFavorite bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewChatSession creates a session titled after the first user message
func NewChatSession(id, userID, firstMessage string) *ChatSession {
	now := time.Now()
	return &ChatSession{
		ID:        id,
		UserID:    userID,
		Title:     SessionTitle(firstMessage),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SessionTitle derives a session title from the first user message.
func SessionTitle(firstMessage string) string {
	msg := strings.TrimSpace(firstMessage)
	if msg == "" {
		return defaultSessionTitle
	}
	if utf8.RuneCountInString(msg) <= sessionTitleLength {
		return msg
	}
	return string([]rune(msg)[:sessionTitleLength]) + "..."
}

// ChatMessage is a single turn of a conversation
type ChatMessage struct {
	ID        string
	SessionID string
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}

// ChatSessionUpdate carries the mutable fields of a session. Nil means unchanged.
type ChatSessionUpdate struct {
	Title      *string
	IsFavorite *bool
}

// ChatHistoryRepository persists chat sessions and their messages
type ChatHistoryRepository interface {
	CreateSession(ctx context.Context, session *ChatSession) error
	GetSession(ctx context.Context, sessionID string) (*ChatSession, error)
	ListSessions(ctx context.Context, userID string) ([]*ChatSession, error)
	UpdateSession(ctx context.Context, sessionID string, update ChatSessionUpdate) error
	DeleteSession(ctx context.Context, sessionID string) error

	AddMessage(ctx context.Context, message *ChatMessage) error
	ListMessages(ctx context.Context, sessionID string) ([]*ChatMessage, error)
	DeleteMessages(ctx context.Context, sessionID string) error
}

// TransactionManager runs fn inside a single database transaction
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
