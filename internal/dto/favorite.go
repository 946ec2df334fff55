package dto

import "sat-prep/internal/domain"

// SaveFavoriteRequest bookmarks a tutor answer. An existing id is overwritten.
// @Description Request body for saving a favorite response
type SaveFavoriteRequest struct {
	ID       string `json:"id,omitempty" validate:"omitempty,max=64"`
	Question string `json:"question" validate:"required,max=4000"`
	Answer   string `json:"answer" validate:"required,max=20000"`
}

// FavoritesResponse lists a user's favorites, oldest first
type FavoritesResponse struct {
	Favorites []*domain.FavoriteResponse `json:"favorites"`
}
