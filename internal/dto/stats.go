package dto

import (
	"time"

	"sat-prep/internal/domain"
)

// SectionStats summarises a user's attempts in one section
type SectionStats struct {
	Section      string `json:"section"`
	Total        int    `json:"total"`
	Correct      int    `json:"correct"`
	AccuracyRate int    `json:"accuracy_rate"`
}

// AttemptItem is one recorded answer
type AttemptItem struct {
	ID               string    `json:"id"`
	Section          string    `json:"section"`
	QuestionID       string    `json:"question_id"`
	Selected         string    `json:"selected"`
	Correct          bool      `json:"correct"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
	CreatedAt        time.Time `json:"created_at"`
}

// StatsResponse is the practice summary of the authenticated user
// @Description Practice statistics
type StatsResponse struct {
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
	AccuracyRate   int            `json:"accuracy_rate"` // whole percent
	TotalHours     float64        `json:"total_hours"`   // one decimal place
	Sections       []SectionStats `json:"sections"`
	RecentAttempts []AttemptItem  `json:"recent_attempts"`
}

func NewAttemptItem(a *domain.PracticeAttempt) AttemptItem {
	return AttemptItem{
		ID:               a.ID,
		Section:          string(a.Section),
		QuestionID:       a.QuestionID,
		Selected:         a.Selected,
		Correct:          a.Correct,
		TimeSpentSeconds: a.TimeSpentSeconds,
		CreatedAt:        a.CreatedAt,
	}
}
