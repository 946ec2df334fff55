package models

import "time"

// ChatSession maps a row of CHAT_SESSIONS
type ChatSession struct {
	ID         string    `db:"ID"`          // ULID
	UserID     string    `db:"USER_ID"`     // JWT subject of the owner
	Title      string    `db:"TITLE"`
	IsFavorite int       `db:"IS_FAVORITE"` // NUMBER(1), 0 or 1
	CreatedAt  time.Time `db:"CREATED_AT"`
	UpdatedAt  time.Time `db:"UPDATED_AT"`
}

// ChatMessage maps a row of CHAT_MESSAGES
type ChatMessage struct {
	ID        string    `db:"ID"` // ULID
	SessionID string    `db:"SESSION_ID"`
	Role      string    `db:"ROLE"` // system, user or assistant
	Content   string    `db:"CONTENT"`
	CreatedAt time.Time `db:"CREATED_AT"`
}
