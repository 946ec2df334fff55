package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"sat-prep/internal/domain"
	"sat-prep/internal/repository/models"
	"sat-prep/internal/util"

	"github.com/jmoiron/sqlx"
)

const sessionColumns = `id, user_id, title, is_favorite, created_at, updated_at`

// chatHistoryRepository implements domain.ChatHistoryRepository on Oracle via sqlx
type chatHistoryRepository struct {
	db *sqlx.DB
}

func NewChatHistoryRepository(db *sqlx.DB) domain.ChatHistoryRepository {
	return &chatHistoryRepository{db: db}
}

func (r *chatHistoryRepository) executor(ctx context.Context) DBTX {
	return GetExecutor(ctx, r.db)
}

func (r *chatHistoryRepository) CreateSession(ctx context.Context, session *domain.ChatSession) error {
	query := `INSERT INTO chat_sessions (id, user_id, title, is_favorite, created_at, updated_at)
	          VALUES (:id, :user_id, :title, :is_favorite, :created_at, :updated_at)`

	m := fromDomainChatSession(session)
	_, err := r.executor(ctx).NamedExecContext(ctx, query, map[string]interface{}{
		"id":          m.ID,
		"user_id":     m.UserID,
		"title":       m.Title,
		"is_favorite": m.IsFavorite,
		"created_at":  m.CreatedAt,
		"updated_at":  m.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create chat session: %w", err)
	}
	return nil
}

// GetSession returns nil, nil when the session does not exist
func (r *chatHistoryRepository) GetSession(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	var m models.ChatSession
	query := `SELECT ` + sessionColumns + ` FROM chat_sessions WHERE id = :1`
	if err := r.executor(ctx).GetContext(ctx, &m, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	return toDomainChatSession(&m), nil
}

func (r *chatHistoryRepository) ListSessions(ctx context.Context, userID string) ([]*domain.ChatSession, error) {
	var rows []models.ChatSession
	query := `SELECT ` + sessionColumns + ` FROM chat_sessions WHERE user_id = :1 ORDER BY updated_at DESC, id DESC`
	if err := r.executor(ctx).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}

	sessions := make([]*domain.ChatSession, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, toDomainChatSession(&rows[i]))
	}
	return sessions, nil
}

func (r *chatHistoryRepository) UpdateSession(ctx context.Context, sessionID string, update domain.ChatSessionUpdate) error {
	setClauses := []string{"updated_at = :updated_at"}
	args := map[string]interface{}{
		"id":         sessionID,
		"updated_at": time.Now(),
	}
	if update.Title != nil {
		setClauses = append(setClauses, "title = :title")
		args["title"] = *update.Title
	}
	if update.IsFavorite != nil {
		setClauses = append(setClauses, "is_favorite = :is_favorite")
		args["is_favorite"] = util.BoolToNumber(*update.IsFavorite)
	}

	query := `UPDATE chat_sessions SET ` + strings.Join(setClauses, ", ") + ` WHERE id = :id`
	result, err := r.executor(ctx).NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update chat session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewSessionNotFoundError(sessionID)
	}
	return nil
}

// DeleteSession removes only the session row; messages must be deleted first
func (r *chatHistoryRepository) DeleteSession(ctx context.Context, sessionID string) error {
	result, err := r.executor(ctx).ExecContext(ctx, `DELETE FROM chat_sessions WHERE id = :1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewSessionNotFoundError(sessionID)
	}
	return nil
}

// AddMessage stores message and bumps the owning session's updated_at
func (r *chatHistoryRepository) AddMessage(ctx context.Context, message *domain.ChatMessage) error {
	exec := r.executor(ctx)
	m := fromDomainChatMessage(message)

	_, err := exec.NamedExecContext(ctx,
		`INSERT INTO chat_messages (id, session_id, role, content, created_at)
		 VALUES (:id, :session_id, :role, :content, :created_at)`,
		map[string]interface{}{
			"id":         m.ID,
			"session_id": m.SessionID,
			"role":       m.Role,
			"content":    m.Content,
			"created_at": m.CreatedAt,
		})
	if err != nil {
		return fmt.Errorf("failed to add chat message: %w", err)
	}

	if _, err := exec.ExecContext(ctx,
		`UPDATE chat_sessions SET updated_at = :1 WHERE id = :2`, m.CreatedAt, m.SessionID); err != nil {
		return fmt.Errorf("failed to touch chat session: %w", err)
	}
	return nil
}

func (r *chatHistoryRepository) ListMessages(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error) {
	var rows []models.ChatMessage
	query := `SELECT id, session_id, role, content, created_at FROM chat_messages
	          WHERE session_id = :1 ORDER BY created_at ASC, id ASC`
	if err := r.executor(ctx).SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	messages := make([]*domain.ChatMessage, 0, len(rows))
	for i := range rows {
		messages = append(messages, toDomainChatMessage(&rows[i]))
	}
	return messages, nil
}

func (r *chatHistoryRepository) DeleteMessages(ctx context.Context, sessionID string) error {
	if _, err := r.executor(ctx).ExecContext(ctx, `DELETE FROM chat_messages WHERE session_id = :1`, sessionID); err != nil {
		return fmt.Errorf("failed to delete chat messages: %w", err)
	}
	return nil
}

// --- converters ---

func toDomainChatSession(m *models.ChatSession) *domain.ChatSession {
	if m == nil {
		return nil
	}
	return &domain.ChatSession{
		ID:         m.ID,
		UserID:     m.UserID,
		Title:      m.Title,
		IsFavorite: m.IsFavorite != 0,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromDomainChatSession(s *domain.ChatSession) *models.ChatSession {
	if s == nil {
		return nil
	}
	return &models.ChatSession{
		ID:         s.ID,
		UserID:     s.UserID,
		Title:      s.Title,
		IsFavorite: util.BoolToNumber(s.IsFavorite),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func toDomainChatMessage(m *models.ChatMessage) *domain.ChatMessage {
	if m == nil {
		return nil
	}
	return &domain.ChatMessage{
		ID:        m.ID,
		SessionID: m.SessionID,
		Role:      domain.ChatRole(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func fromDomainChatMessage(msg *domain.ChatMessage) *models.ChatMessage {
	if msg == nil {
		return nil
	}
	return &models.ChatMessage{
		ID:        msg.ID,
		SessionID: msg.SessionID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}
