package dto

import (
	"time"

	"sat-prep/internal/domain"
)

// ChatSessionResponse represents a chat session in the API response
// @Description Chat session information
type ChatSessionResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ChatSessionsResponse lists a user's sessions, newest activity first
type ChatSessionsResponse struct {
	Sessions []ChatSessionResponse `json:"sessions"`
}

// ChatMessageResponse represents a single stored message. Assistant
// messages are returned post-processed, like a fresh tutor reply.
type ChatMessageResponse struct {
	ID          string              `json:"id"`
	Role        string              `json:"role"`
	Content     string              `json:"content"`
	Category    string              `json:"category,omitempty"`
	QuizExample *domain.QuizExample `json:"quiz_example,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ChatMessagesResponse is a session together with its messages in order
type ChatMessagesResponse struct {
	Session  ChatSessionResponse   `json:"session"`
	Messages []ChatMessageResponse `json:"messages"`
}

// RenameChatRequest represents the body of PATCH /api/chats/:id
// @Description Request body for renaming a chat session
type RenameChatRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

func NewChatSessionResponse(s *domain.ChatSession) ChatSessionResponse {
	return ChatSessionResponse{
		ID:         s.ID,
		Title:      s.Title,
		IsFavorite: s.IsFavorite,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func NewChatMessageResponse(m *domain.ChatMessage) ChatMessageResponse {
	resp := ChatMessageResponse{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.Role == domain.RoleAssistant {
		reply := domain.ParseTutorReply(m.Content)
		resp.Content = reply.Content
		resp.Category = string(reply.Category)
		resp.QuizExample = reply.QuizExample
	}
	return resp
}

func NewChatSessionsResponse(sessions []*domain.ChatSession) *ChatSessionsResponse {
	items := make([]ChatSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, NewChatSessionResponse(s))
	}
	return &ChatSessionsResponse{Sessions: items}
}

func NewChatMessagesResponse(session *domain.ChatSession, messages []*domain.ChatMessage) *ChatMessagesResponse {
	items := make([]ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		items = append(items, NewChatMessageResponse(m))
	}
	return &ChatMessagesResponse{Session: NewChatSessionResponse(session), Messages: items}
}
