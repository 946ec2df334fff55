package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"sat-prep/internal/domain"
	"sat-prep/internal/dto"
	"sat-prep/internal/handler"
	"sat-prep/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// --- Manual Mocks ---

type MockQuestionService struct {
	GetSectionsFunc        func(ctx context.Context) (*dto.SectionsResponse, error)
	ListQuestionsFunc      func(ctx context.Context, req *dto.QuestionListRequest) (*dto.QuestionListResponse, error)
	GetRandomQuestionsFunc func(ctx context.Context, req *dto.RandomQuestionsRequest) (*dto.QuestionListResponse, error)
	GetQuestionFunc        func(ctx context.Context, section, questionID string) (*dto.QuestionResponse, error)
	CheckAnswerFunc        func(ctx context.Context, userID string, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error)
}

func (m *MockQuestionService) GetSections(ctx context.Context) (*dto.SectionsResponse, error) {
	if m.GetSectionsFunc != nil {
		return m.GetSectionsFunc(ctx)
	}
	panic("MockQuestionService.GetSectionsFunc not implemented")
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, req *dto.QuestionListRequest) (*dto.QuestionListResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, req)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}

func (m *MockQuestionService) GetRandomQuestions(ctx context.Context, req *dto.RandomQuestionsRequest) (*dto.QuestionListResponse, error) {
	if m.GetRandomQuestionsFunc != nil {
		return m.GetRandomQuestionsFunc(ctx, req)
	}
	panic("MockQuestionService.GetRandomQuestionsFunc not implemented")
}

func (m *MockQuestionService) GetQuestion(ctx context.Context, section, questionID string) (*dto.QuestionResponse, error) {
	if m.GetQuestionFunc != nil {
		return m.GetQuestionFunc(ctx, section, questionID)
	}
	panic("MockQuestionService.GetQuestionFunc not implemented")
}

func (m *MockQuestionService) CheckAnswer(ctx context.Context, userID string, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
	if m.CheckAnswerFunc != nil {
		return m.CheckAnswerFunc(ctx, userID, req)
	}
	panic("MockQuestionService.CheckAnswerFunc not implemented")
}

type MockChatHistoryService struct {
	ListSessionsFunc    func(ctx context.Context, userID string) ([]*domain.ChatSession, error)
	GetConversationFunc func(ctx context.Context, userID, sessionID string) (*domain.ChatSession, []*domain.ChatMessage, error)
	RenameSessionFunc   func(ctx context.Context, userID, sessionID, title string) (*domain.ChatSession, error)
	ToggleFavoriteFunc  func(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error)
	DeleteSessionFunc   func(ctx context.Context, userID, sessionID string) error
}

func (m *MockChatHistoryService) ListSessions(ctx context.Context, userID string) ([]*domain.ChatSession, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx, userID)
	}
	panic("MockChatHistoryService.ListSessionsFunc not implemented")
}

func (m *MockChatHistoryService) GetConversation(ctx context.Context, userID, sessionID string) (*domain.ChatSession, []*domain.ChatMessage, error) {
	if m.GetConversationFunc != nil {
		return m.GetConversationFunc(ctx, userID, sessionID)
	}
	panic("MockChatHistoryService.GetConversationFunc not implemented")
}

func (m *MockChatHistoryService) RenameSession(ctx context.Context, userID, sessionID, title string) (*domain.ChatSession, error) {
	if m.RenameSessionFunc != nil {
		return m.RenameSessionFunc(ctx, userID, sessionID, title)
	}
	panic("MockChatHistoryService.RenameSessionFunc not implemented")
}

func (m *MockChatHistoryService) ToggleFavorite(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error) {
	if m.ToggleFavoriteFunc != nil {
		return m.ToggleFavoriteFunc(ctx, userID, sessionID)
	}
	panic("MockChatHistoryService.ToggleFavoriteFunc not implemented")
}

func (m *MockChatHistoryService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, userID, sessionID)
	}
	panic("MockChatHistoryService.DeleteSessionFunc not implemented")
}

func (m *MockChatHistoryService) StartSession(ctx context.Context, userID, firstMessage string) (*domain.ChatSession, error) {
	panic("not used by handlers")
}

func (m *MockChatHistoryService) OwnedSession(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error) {
	panic("not used by handlers")
}

func (m *MockChatHistoryService) AppendMessage(ctx context.Context, sessionID string, role domain.ChatRole, content string) (*domain.ChatMessage, error) {
	panic("not used by handlers")
}

type MockTutorService struct {
	ChatFunc func(ctx context.Context, userID string, req *dto.TutorChatRequest) (*dto.TutorChatResponse, error)
}

func (m *MockTutorService) Chat(ctx context.Context, userID string, req *dto.TutorChatRequest) (*dto.TutorChatResponse, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, userID, req)
	}
	panic("MockTutorService.ChatFunc not implemented")
}

type MockFavoriteService struct {
	ListFunc   func(ctx context.Context, userID string) ([]*domain.FavoriteResponse, error)
	SaveFunc   func(ctx context.Context, userID string, req *dto.SaveFavoriteRequest) (*domain.FavoriteResponse, error)
	RemoveFunc func(ctx context.Context, userID, favoriteID string) error
}

func (m *MockFavoriteService) List(ctx context.Context, userID string) ([]*domain.FavoriteResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	panic("MockFavoriteService.ListFunc not implemented")
}

func (m *MockFavoriteService) Save(ctx context.Context, userID string, req *dto.SaveFavoriteRequest) (*domain.FavoriteResponse, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, userID, req)
	}
	panic("MockFavoriteService.SaveFunc not implemented")
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID, favoriteID string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, favoriteID)
	}
	panic("MockFavoriteService.RemoveFunc not implemented")
}

type MockStatsService struct {
	GetStatsFunc func(ctx context.Context, userID string) (*dto.StatsResponse, error)
}

func (m *MockStatsService) RecordAttempt(ctx context.Context, attempt *domain.PracticeAttempt) error {
	panic("not used by handlers")
}

func (m *MockStatsService) GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, userID)
	}
	panic("MockStatsService.GetStatsFunc not implemented")
}

// MockAuthService accepts "good-token" for user-1
type MockAuthService struct{}

func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if tokenString == "good-token" {
		return &dto.AuthClaims{UserID: "user-1", TokenType: "access"}, nil
	}
	return nil, errors.New("token is malformed")
}

func (m *MockAuthService) GenerateAccessToken(userID string, ttl time.Duration) (string, error) {
	panic("not used by handlers")
}

type testServices struct {
	question *MockQuestionService
	chat     *MockChatHistoryService
	tutor    *MockTutorService
	favorite *MockFavoriteService
	stats    *MockStatsService
}

func newTestApp() (*fiber.App, *testServices) {
	svcs := &testServices{
		question: &MockQuestionService{},
		chat:     &MockChatHistoryService{},
		tutor:    &MockTutorService{},
		favorite: &MockFavoriteService{},
		stats:    &MockStatsService{},
	}
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.SetupRoutes(app, &handler.Handlers{
		Question: handler.NewQuestionHandler(svcs.question),
		Chat:     handler.NewChatHandler(svcs.chat),
		Tutor:    handler.NewTutorHandler(svcs.tutor),
		Favorite: handler.NewFavoriteHandler(svcs.favorite),
		Stats:    handler.NewStatsHandler(svcs.stats),
	}, &MockAuthService{})
	return app, svcs
}

// newRequest builds a JSON request; an empty token sends no Authorization header
func newRequest(method, target, body, token string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}
