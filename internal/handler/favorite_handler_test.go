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

func TestFavoriteHandler(t *testing.T) {
	app, svcs := newTestApp()
	saved := map[string]*domain.FavoriteResponse{}

	svcs.favorite.SaveFunc = func(ctx context.Context, userID string, req *dto.SaveFavoriteRequest) (*domain.FavoriteResponse, error) {
		fav := &domain.FavoriteResponse{ID: req.ID, Question: req.Question, Answer: req.Answer, SavedAt: time.Now()}
		saved[fav.ID] = fav
		return fav, nil
	}
	svcs.favorite.ListFunc = func(ctx context.Context, userID string) ([]*domain.FavoriteResponse, error) {
		out := []*domain.FavoriteResponse{}
		for _, f := range saved {
			out = append(out, f)
		}
		return out, nil
	}
	svcs.favorite.RemoveFunc = func(ctx context.Context, userID, favoriteID string) error {
		delete(saved, favoriteID)
		return nil
	}

	resp, err := app.Test(newRequest("POST", "/api/favorites", `{"id": "f1", "question": "Slope?", "answer": "Rise over run"}`, "good-token"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(newRequest("POST", "/api/favorites", `{"question": "missing answer"}`, "good-token"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(newRequest("GET", "/api/favorites", "", "good-token"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body dto.FavoritesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Favorites, 1)
	assert.Equal(t, "Rise over run", body.Favorites[0].Answer)

	resp, err = app.Test(newRequest("DELETE", "/api/favorites/f1", "", "good-token"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, saved)

	resp, err = app.Test(newRequest("GET", "/api/favorites", "", ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
