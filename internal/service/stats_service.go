package service

import (
	"context"
	"math"
	"time"

	"sat-prep/internal/config"
	"sat-prep/internal/domain"
	"sat-prep/internal/dto"
	"sat-prep/internal/logger"
	"sat-prep/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AttemptRecorder stores graded answers of signed-in users
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, attempt *domain.PracticeAttempt) error
}

// StatsService records practice attempts and summarises them per user
type StatsService interface {
	AttemptRecorder
	GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error)
}

type statsService struct {
	repo   domain.AttemptRepository
	config config.StatsConfig
}

func NewStatsService(repo domain.AttemptRepository, cfg config.StatsConfig) StatsService {
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = config.Default().Stats.RecentLimit
	}
	return &statsService{repo: repo, config: cfg}
}

func (s *statsService) RecordAttempt(ctx context.Context, attempt *domain.PracticeAttempt) error {
	if attempt.UserID == "" {
		return domain.NewUnauthorizedError("Authentication required")
	}
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	if attempt.TimeSpentSeconds < 0 {
		attempt.TimeSpentSeconds = 0
	}

	if err := s.repo.CreateAttempt(ctx, attempt); err != nil {
		return domain.NewInternalError("failed to record practice attempt", err)
	}
	logger.Get().Debug("Practice attempt recorded",
		zap.String("user_id", attempt.UserID),
		zap.String("question_id", attempt.QuestionID),
		zap.Bool("correct", attempt.Correct))
	return nil
}

// GetStats loads the per-section tallies and the recent attempts concurrently
func (s *statsService) GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	var (
		tallies []domain.SectionTally
		recent  []*domain.PracticeAttempt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tallies, err = s.repo.SectionTallies(gctx, userID)
		if err != nil {
			return domain.NewInternalError("failed to load practice statistics", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, err = s.repo.RecentAttempts(gctx, userID, s.config.RecentLimit)
		if err != nil {
			return domain.NewInternalError("failed to load recent attempts", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildStats(tallies, recent), nil
}

// buildStats always lists every section, zeroed when the user has no attempts in it
func buildStats(tallies []domain.SectionTally, recent []*domain.PracticeAttempt) *dto.StatsResponse {
	bySection := make(map[domain.Section]domain.SectionTally, len(tallies))
	var total, correct, seconds int
	for _, t := range tallies {
		bySection[t.Section] = t
		total += t.Total
		correct += t.Correct
		seconds += t.TimeSpentSeconds
	}

	resp := &dto.StatsResponse{
		TotalQuestions: total,
		CorrectAnswers: correct,
		AccuracyRate:   percent(correct, total),
		TotalHours:     math.Round(float64(seconds)/3600*10) / 10,
		Sections:       make([]dto.SectionStats, 0, len(domain.AllSections)),
		RecentAttempts: make([]dto.AttemptItem, 0, len(recent)),
	}
	for _, section := range domain.AllSections {
		t := bySection[section]
		resp.Sections = append(resp.Sections, dto.SectionStats{
			Section:      string(section),
			Total:        t.Total,
			Correct:      t.Correct,
			AccuracyRate: percent(t.Correct, t.Total),
		})
	}
	for _, a := range recent {
		resp.RecentAttempts = append(resp.RecentAttempts, dto.NewAttemptItem(a))
	}
	return resp
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}
