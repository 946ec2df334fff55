package service

import (
	"context"
	"strings"

	"sat-prep/internal/config"
	"sat-prep/internal/domain"
	"sat-prep/internal/dto"
	"sat-prep/internal/logger"

	"go.uber.org/zap"
)

// QuestionBank is the read model the question service serves from
type QuestionBank interface {
	domain.QuestionSource
	Question(section domain.Section, id string) (*domain.Question, bool)
	Count(section domain.Section) int
	Domains(section domain.Section) []string
}

// QuestionService exposes the question bank to the HTTP layer
type QuestionService interface {
	GetSections(ctx context.Context) (*dto.SectionsResponse, error)
	ListQuestions(ctx context.Context, req *dto.QuestionListRequest) (*dto.QuestionListResponse, error)
	GetRandomQuestions(ctx context.Context, req *dto.RandomQuestionsRequest) (*dto.QuestionListResponse, error)
	GetQuestion(ctx context.Context, section, questionID string) (*dto.QuestionResponse, error)
	// CheckAnswer grades req. When userID is set the attempt is recorded.
	CheckAnswer(ctx context.Context, userID string, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error)
}

type questionService struct {
	bank     QuestionBank
	config   config.QuestionBankConfig
	attempts AttemptRecorder // nil disables recording
}

func NewQuestionService(bank QuestionBank, cfg config.QuestionBankConfig, attempts AttemptRecorder) QuestionService {
	if cfg.DefaultSampleCount <= 0 {
		cfg.DefaultSampleCount = config.Default().QuestionBank.DefaultSampleCount
	}
	if cfg.MaxSampleCount <= 0 {
		cfg.MaxSampleCount = config.Default().QuestionBank.MaxSampleCount
	}
	return &questionService{bank: bank, config: cfg, attempts: attempts}
}

func parseSection(raw string) (domain.Section, error) {
	section, ok := domain.ParseSection(raw)
	if !ok {
		return "", domain.NewInvalidSectionError(raw)
	}
	return section, nil
}

func (s *questionService) GetSections(ctx context.Context) (*dto.SectionsResponse, error) {
	resp := &dto.SectionsResponse{Sections: make([]dto.SectionSummary, 0, len(domain.AllSections))}
	for _, section := range domain.AllSections {
		resp.Sections = append(resp.Sections, dto.SectionSummary{
			Section:       string(section),
			QuestionCount: s.bank.Count(section),
			Domains:       s.bank.Domains(section),
		})
	}
	return resp, nil
}

func (s *questionService) ListQuestions(ctx context.Context, req *dto.QuestionListRequest) (*dto.QuestionListResponse, error) {
	section, err := parseSection(req.Section)
	if err != nil {
		return nil, err
	}
	questions := s.bank.Questions(section, req.Domain)
	return dto.NewQuestionListResponse(section, req.Domain, questions), nil
}

// GetRandomQuestions applies the default count when none is given and caps it at the configured maximum
func (s *questionService) GetRandomQuestions(ctx context.Context, req *dto.RandomQuestionsRequest) (*dto.QuestionListResponse, error) {
	section, err := parseSection(req.Section)
	if err != nil {
		return nil, err
	}

	count := s.config.DefaultSampleCount
	if req.Count != nil {
		count = *req.Count
	}
	if count < 0 {
		return nil, domain.ValidationErrors{domain.NewOutOfRangeError("count", count, 0, s.config.MaxSampleCount)}
	}
	if count > s.config.MaxSampleCount {
		logger.Get().Debug("Capping requested sample count",
			zap.Int("requested", count),
			zap.Int("max", s.config.MaxSampleCount))
		count = s.config.MaxSampleCount
	}

	questions := s.bank.RandomQuestions(section, count, req.Domain)
	return dto.NewQuestionListResponse(section, req.Domain, questions), nil
}

func (s *questionService) GetQuestion(ctx context.Context, rawSection, questionID string) (*dto.QuestionResponse, error) {
	section, err := parseSection(rawSection)
	if err != nil {
		return nil, err
	}
	q, ok := s.bank.Question(section, questionID)
	if !ok {
		return nil, domain.NewQuestionNotFoundError(section, questionID)
	}
	resp := dto.NewQuestionResponse(q)
	return &resp, nil
}

func (s *questionService) CheckAnswer(ctx context.Context, userID string, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
	section, err := parseSection(req.Section)
	if err != nil {
		return nil, err
	}
	q, ok := s.bank.Question(section, req.QuestionID)
	if !ok {
		return nil, domain.NewQuestionNotFoundError(section, req.QuestionID)
	}
	selected, ok := choiceKey(q, req.Answer)
	if !ok {
		return nil, domain.ValidationErrors{{
			Field:   "answer",
			Code:    domain.CodeInvalidFormat,
			Message: "answer must be one of the question's choices",
			Value:   req.Answer,
		}}
	}

	correct := q.IsCorrect(selected)
	logger.Get().Debug("Answer checked",
		zap.String("section", string(section)),
		zap.String("question_id", q.ID),
		zap.Bool("correct", correct))

	if userID != "" && s.attempts != nil {
		err := s.attempts.RecordAttempt(ctx, &domain.PracticeAttempt{
			UserID:           userID,
			Section:          section,
			QuestionID:       q.ID,
			Selected:         selected,
			Correct:          correct,
			TimeSpentSeconds: req.TimeSpentSeconds,
		})
		// 기록 실패는 채점 결과에 영향을 주지 않음
		if err != nil {
			logger.Get().Warn("Failed to record practice attempt",
				zap.String("user_id", userID),
				zap.String("question_id", q.ID),
				zap.Error(err))
		}
	}

	return &dto.CheckAnswerResponse{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}, nil
}

// choiceKey returns the key of q's choice named by answer, ignoring case
func choiceKey(q *domain.Question, answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	for _, key := range q.Choices.Keys() {
		if strings.EqualFold(key, answer) {
			return key, true
		}
	}
	return "", false
}
