package service

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"sat-prep/internal/cache"
	"sat-prep/internal/config"
	"sat-prep/internal/domain"
	"sat-prep/internal/dto"
	"sat-prep/internal/logger"
	"sat-prep/internal/util"

	"go.uber.org/zap"
)

// FavoriteService stores bookmarked tutor answers in a Redis hash per user
type FavoriteService interface {
	List(ctx context.Context, userID string) ([]*domain.FavoriteResponse, error)
	Save(ctx context.Context, userID string, req *dto.SaveFavoriteRequest) (*domain.FavoriteResponse, error)
	Remove(ctx context.Context, userID, favoriteID string) error
}

type favoriteService struct {
	cache domain.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewFavoriteService(c domain.Cache, cfg config.FavoritesConfig) FavoriteService {
	return &favoriteService{cache: c, ttl: cfg.TTL, now: time.Now}
}

// List returns the favorites oldest first. Entries that fail to decode are skipped.
func (s *favoriteService) List(ctx context.Context, userID string) ([]*domain.FavoriteResponse, error) {
	raw, err := s.cache.HGetAll(ctx, cache.FavoritesKey(userID))
	if err != nil {
		return nil, domain.NewInternalError("failed to load favorites", err)
	}

	favorites := make([]*domain.FavoriteResponse, 0, len(raw))
	for field, value := range raw {
		var fav domain.FavoriteResponse
		if err := json.Unmarshal([]byte(value), &fav); err != nil {
			logger.Get().Warn("Skipping corrupt favorite entry",
				zap.String("user_id", userID),
				zap.String("field", field),
				zap.Error(err))
			continue
		}
		favorites = append(favorites, &fav)
	}

	slices.SortFunc(favorites, func(a, b *domain.FavoriteResponse) int {
		if c := a.SavedAt.Compare(b.SavedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return favorites, nil
}

// Save upserts by id; saving an existing id replaces it and moves it to the end
func (s *favoriteService) Save(ctx context.Context, userID string, req *dto.SaveFavoriteRequest) (*domain.FavoriteResponse, error) {
	fav := &domain.FavoriteResponse{
		ID:       strings.TrimSpace(req.ID),
		Question: req.Question,
		Answer:   req.Answer,
		SavedAt:  s.now().UTC(),
	}
	if fav.ID == "" {
		fav.ID = util.NewULID()
	}

	payload, err := json.Marshal(fav)
	if err != nil {
		return nil, domain.NewInternalError("failed to encode favorite", err)
	}

	key := cache.FavoritesKey(userID)
	if err := s.cache.HSet(ctx, key, fav.ID, string(payload)); err != nil {
		return nil, domain.NewInternalError("failed to save favorite", err)
	}
	if s.ttl > 0 {
		if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
			logger.Get().Warn("Failed to refresh favorites TTL", zap.String("key", key), zap.Error(err))
		}
	}
	return fav, nil
}

// Remove is idempotent; removing an unknown id succeeds
func (s *favoriteService) Remove(ctx context.Context, userID, favoriteID string) error {
	if err := s.cache.HDel(ctx, cache.FavoritesKey(userID), favoriteID); err != nil {
		return domain.NewInternalError("failed to remove favorite", err)
	}
	return nil
}
