package repository

import (
	"context"
	"fmt"

	"sat-prep/internal/domain"
	"sat-prep/internal/repository/models"
	"sat-prep/internal/util"

	"github.com/jmoiron/sqlx"
)

// practiceAttemptRepository implements domain.AttemptRepository on Oracle via sqlx
type practiceAttemptRepository struct {
	db *sqlx.DB
}

func NewPracticeAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &practiceAttemptRepository{db: db}
}

func (r *practiceAttemptRepository) executor(ctx context.Context) DBTX {
	return GetExecutor(ctx, r.db)
}

func (r *practiceAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.PracticeAttempt) error {
	m := fromDomainPracticeAttempt(attempt)
	query := `INSERT INTO practice_attempts (id, user_id, section, question_id, selected, is_correct, time_spent, created_at)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		m.ID, m.UserID, m.Section, m.QuestionID, m.Selected, m.IsCorrect, m.TimeSpent, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create practice attempt: %w", err)
	}
	return nil
}

func (r *practiceAttemptRepository) SectionTallies(ctx context.Context, userID string) ([]domain.SectionTally, error) {
	var rows []models.SectionTally
	query := `SELECT section, COUNT(*) AS total, SUM(is_correct) AS correct, SUM(time_spent) AS time_spent
	          FROM practice_attempts WHERE user_id = :1 GROUP BY section`
	if err := r.executor(ctx).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to tally practice attempts: %w", err)
	}

	tallies := make([]domain.SectionTally, 0, len(rows))
	for _, row := range rows {
		tallies = append(tallies, domain.SectionTally{
			Section:          domain.Section(row.Section),
			Total:            row.Total,
			Correct:          row.Correct,
			TimeSpentSeconds: row.TimeSpent,
		})
	}
	return tallies, nil
}

func (r *practiceAttemptRepository) RecentAttempts(ctx context.Context, userID string, limit int) ([]*domain.PracticeAttempt, error) {
	if limit <= 0 {
		return []*domain.PracticeAttempt{}, nil
	}

	var rows []models.PracticeAttempt
	query := `SELECT id, user_id, section, question_id, selected, is_correct, time_spent, created_at
	          FROM practice_attempts WHERE user_id = :1
	          ORDER BY created_at DESC, id DESC
	          FETCH FIRST :2 ROWS ONLY`
	if err := r.executor(ctx).SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list practice attempts: %w", err)
	}

	attempts := make([]*domain.PracticeAttempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainPracticeAttempt(&rows[i]))
	}
	return attempts, nil
}

func toDomainPracticeAttempt(m *models.PracticeAttempt) *domain.PracticeAttempt {
	if m == nil {
		return nil
	}
	return &domain.PracticeAttempt{
		ID:               m.ID,
		UserID:           m.UserID,
		Section:          domain.Section(m.Section),
		QuestionID:       m.QuestionID,
		Selected:         m.Selected,
		Correct:          m.IsCorrect != 0,
		TimeSpentSeconds: m.TimeSpent,
		CreatedAt:        m.CreatedAt,
	}
}

func fromDomainPracticeAttempt(a *domain.PracticeAttempt) *models.PracticeAttempt {
	if a == nil {
		return nil
	}
	return &models.PracticeAttempt{
		ID:         a.ID,
		UserID:     a.UserID,
		Section:    string(a.Section),
		QuestionID: a.QuestionID,
		Selected:   a.Selected,
		IsCorrect:  util.BoolToNumber(a.Correct),
		TimeSpent:  a.TimeSpentSeconds,
		CreatedAt:  a.CreatedAt,
	}
}
