package dto

import "sat-prep/internal/domain"

// TutorChatRequest represents a message sent to the tutor
// @Description Request body for chatting with the tutor
type TutorChatRequest struct {
	SessionID string `json:"session_id,omitempty" validate:"omitempty,ulid"`
	Message   string `json:"message" validate:"required,max=4000"`
}

// TutorChatResponse is the post-processed tutor reply
type TutorChatResponse struct {
	SessionID   string              `json:"session_id"`
	MessageID   string              `json:"message_id"`
	Content     string              `json:"content"`
	Category    string              `json:"category"`
	QuizExample *domain.QuizExample `json:"quiz_example,omitempty"`
}
