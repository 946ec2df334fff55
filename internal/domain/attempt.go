package domain

import (
	"context"
	"time"
)

// PracticeAttempt is one graded answer by a signed-in user
type PracticeAttempt struct {
	ID               string
	UserID           string
	Section          Section
	QuestionID       string
	Selected         string
	Correct          bool
	TimeSpentSeconds int
	CreatedAt        time.Time
}

// SectionTally aggregates a user's attempts within one section
type SectionTally struct {
	Section          Section
	Total            int
	Correct          int
	TimeSpentSeconds int
}

// AttemptRepository persists practice attempts. Attempts are append-only.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *PracticeAttempt) error
	// SectionTallies returns one row per section the user has attempted
	SectionTallies(ctx context.Context, userID string) ([]SectionTally, error)
	// RecentAttempts returns at most limit attempts, newest first
	RecentAttempts(ctx context.Context, userID string, limit int) ([]*PracticeAttempt, error)
}
