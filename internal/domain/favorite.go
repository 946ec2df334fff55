package domain

import "time"

// FavoriteResponse is a tutor answer the user bookmarked
type FavoriteResponse struct {
	ID       string    `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	SavedAt  time.Time `json:"saved_at"`
}
