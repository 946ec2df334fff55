package models

import "time"

// PracticeAttempt maps a row of PRACTICE_ATTEMPTS
type PracticeAttempt struct {
	ID         string    `db:"ID"` // ULID
	UserID     string    `db:"USER_ID"`
	Section    string    `db:"SECTION"`
	QuestionID string    `db:"QUESTION_ID"`
	Selected   string    `db:"SELECTED"`
	IsCorrect  int       `db:"IS_CORRECT"` // NUMBER(1), 0 or 1
	TimeSpent  int       `db:"TIME_SPENT"` // seconds
	CreatedAt  time.Time `db:"CREATED_AT"`
}

// SectionTally is a GROUP BY section row over PRACTICE_ATTEMPTS
type SectionTally struct {
	Section   string `db:"SECTION"`
	Total     int    `db:"TOTAL"`
	Correct   int    `db:"CORRECT"`
	TimeSpent int    `db:"TIME_SPENT"`
}
