package handler_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sat-prep/internal/domain"
	"sat-prep/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *domain.ChatSession {
	return &domain.ChatSession{
		ID:        "01HZX3A7M0000000000000000S",
		UserID:    "user-1",
		Title:     "Quadratics",
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
	}
}

func TestChatHandler_RequiresAuth(t *testing.T) {
	app, _ := newTestApp()

	for _, tc := range []struct{ method, target string }{
		{"GET", "/api/chats"},
		{"GET", "/api/chats/s1/messages"},
		{"DELETE", "/api/chats/s1"},
		{"POST", "/api/chats/s1/favorite"},
	} {
		resp, err := app.Test(newRequest(tc.method, tc.target, "", ""))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, tc.target)

		resp, err = app.Test(newRequest(tc.method, tc.target, "", "bad-token"))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, tc.target)
	}
}

func TestChatHandler_ListSessions(t *testing.T) {
	app, svcs := newTestApp()
	svcs.chat.ListSessionsFunc = func(ctx context.Context, userID string) ([]*domain.ChatSession, error) {
		assert.Equal(t, "user-1", userID)
		return []*domain.ChatSession{sampleSession()}, nil
	}

	resp, err := app.Test(newRequest("GET", "/api/chats", "", "good-token"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ChatSessionsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Sessions, 1)
	assert.Equal(t, "Quadratics", body.Sessions[0].Title)
}

func TestChatHandler_GetMessages(t *testing.T) {
	app, svcs := newTestApp()
	svcs.chat.GetConversationFunc = func(ctx context.Context, userID, sessionID string) (*domain.ChatSession, []*domain.ChatMessage, error) {
		if sessionID != "01HZX3A7M0000000000000000S" {
			return nil, nil, domain.NewSessionNotFoundError(sessionID)
		}
		return sampleSession(), []*domain.ChatMessage{
			{ID: "m1", Role: domain.RoleUser, Content: "What is a radian?"},
			{ID: "m2", Role: domain.RoleAssistant, Content: "Math question\nAn angle measure."},
		}, nil
	}

	resp, err := app.Test(newRequest("GET", "/api/chats/01HZX3A7M0000000000000000S/messages", "", "good-token"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ChatMessagesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "What is a radian?", body.Messages[0].Content)
	assert.Empty(t, body.Messages[0].Category)
	assert.Equal(t, "An angle measure.", body.Messages[1].Content)
	assert.Equal(t, "math", body.Messages[1].Category)

	resp, err = app.Test(newRequest("GET", "/api/chats/other/messages", "", "good-token"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestChatHandler_RenameSession(t *testing.T) {
	app, svcs := newTestApp()
	svcs.chat.RenameSessionFunc = func(ctx context.Context, userID, sessionID, title string) (*domain.ChatSession, error) {
		s := sampleSession()
		s.Title = title
		return s, nil
	}

	resp, err := app.Test(newRequest("PATCH", "/api/chats/s1", `{"title": "Trig review"}`, "good-token"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body dto.ChatSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Trig review", body.Title)

	resp, err = app.Test(newRequest("PATCH", "/api/chats/s1", `{"title": ""}`, "good-token"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatHandler_ToggleFavoriteAndDelete(t *testing.T) {
	app, svcs := newTestApp()
	svcs.chat.ToggleFavoriteFunc = func(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error) {
		s := sampleSession()
		s.IsFavorite = true
		return s, nil
	}
	deleted := ""
	svcs.chat.DeleteSessionFunc = func(ctx context.Context, userID, sessionID string) error {
		deleted = sessionID
		return nil
	}

	resp, err := app.Test(newRequest("POST", "/api/chats/s1/favorite", "", "good-token"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body dto.ChatSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsFavorite)

	resp, err = app.Test(newRequest("DELETE", "/api/chats/s1", "", "good-token"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "s1", deleted)
}
