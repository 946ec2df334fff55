package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sat-prep/internal/config"
	"sat-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_RecordAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("fills id and timestamp", func(t *testing.T) {
		repo := new(MockAttemptRepository)
		svc := NewStatsService(repo, config.StatsConfig{})

		repo.On("CreateAttempt", ctx, mock.MatchedBy(func(a *domain.PracticeAttempt) bool {
			return a.ID != "" && !a.CreatedAt.IsZero() && a.TimeSpentSeconds == 0
		})).Return(nil).Once()

		err := svc.RecordAttempt(ctx, &domain.PracticeAttempt{UserID: "u1", Section: domain.SectionMath, QuestionID: "m01", Selected: "A", TimeSpentSeconds: -3})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("requires a user", func(t *testing.T) {
		repo := new(MockAttemptRepository)
		svc := NewStatsService(repo, config.StatsConfig{})

		err := svc.RecordAttempt(ctx, &domain.PracticeAttempt{QuestionID: "m01"})
		requireCode(t, err, domain.CodeUnauthorized)
		repo.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockAttemptRepository)
		svc := NewStatsService(repo, config.StatsConfig{})
		repo.On("CreateAttempt", ctx, mock.Anything).Return(errors.New("ORA-01400")).Once()

		err := svc.RecordAttempt(ctx, &domain.PracticeAttempt{UserID: "u1", QuestionID: "m01"})
		requireCode(t, err, domain.CodeInternal)
	})
}

func TestStatsService_GetStats(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("aggregates sections and recent attempts", func(t *testing.T) {
		repo := new(MockAttemptRepository)
		svc := NewStatsService(repo, config.StatsConfig{RecentLimit: 3})

		repo.On("SectionTallies", mock.Anything, "u1").Return([]domain.SectionTally{
			{Section: domain.SectionMath, Total: 6, Correct: 5, TimeSpentSeconds: 5400},
			{Section: domain.SectionWriting, Total: 3, Correct: 1, TimeSpentSeconds: 600},
		}, nil).Once()
		repo.On("RecentAttempts", mock.Anything, "u1", 3).Return([]*domain.PracticeAttempt{
			{ID: "a3", Section: domain.SectionWriting, QuestionID: "w1", Selected: "D", CreatedAt: now},
			{ID: "a2", Section: domain.SectionMath, QuestionID: "m2", Selected: "B", Correct: true, CreatedAt: now.Add(-time.Minute)},
		}, nil).Once()

		stats, err := svc.GetStats(ctx, "u1")
		require.NoError(t, err)

		assert.Equal(t, 9, stats.TotalQuestions)
		assert.Equal(t, 6, stats.CorrectAnswers)
		assert.Equal(t, 67, stats.AccuracyRate)
		assert.Equal(t, 1.7, stats.TotalHours)

		require.Len(t, stats.Sections, 3)
		assert.Equal(t, "math", stats.Sections[0].Section)
		assert.Equal(t, 83, stats.Sections[0].AccuracyRate)
		assert.Equal(t, "reading", stats.Sections[1].Section)
		assert.Zero(t, stats.Sections[1].Total)
		assert.Zero(t, stats.Sections[1].AccuracyRate)
		assert.Equal(t, 33, stats.Sections[2].AccuracyRate)

		require.Len(t, stats.RecentAttempts, 2)
		assert.Equal(t, "a3", stats.RecentAttempts[0].ID)
		assert.True(t, stats.RecentAttempts[1].Correct)
		repo.AssertExpectations(t)
	})

	t.Run("new user gets zeroed stats", func(t *testing.T) {
		repo := new(MockAttemptRepository)
		svc := NewStatsService(repo, config.StatsConfig{})

		repo.On("SectionTallies", mock.Anything, "u2").Return([]domain.SectionTally{}, nil).Once()
		repo.On("RecentAttempts", mock.Anything, "u2", config.Default().Stats.RecentLimit).Return([]*domain.PracticeAttempt{}, nil).Once()

		stats, err := svc.GetStats(ctx, "u2")
		require.NoError(t, err)
		assert.Zero(t, stats.TotalQuestions)
		assert.Zero(t, stats.AccuracyRate)
		assert.Len(t, stats.Sections, 3)
		require.NotNil(t, stats.RecentAttempts)
		assert.Empty(t, stats.RecentAttempts)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockAttemptRepository)
		svc := NewStatsService(repo, config.StatsConfig{})

		repo.On("SectionTallies", mock.Anything, "u1").Return(nil, errors.New("ORA-03113")).Once()
		repo.On("RecentAttempts", mock.Anything, "u1", mock.Anything).Return([]*domain.PracticeAttempt{}, nil).Maybe()

		_, err := svc.GetStats(ctx, "u1")
		requireCode(t, err, domain.CodeInternal)
	})
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(0, 0))
	assert.Equal(t, 100, percent(4, 4))
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 50, percent(1, 2))
}
