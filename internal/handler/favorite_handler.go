package handler

import (
	"sat-prep/internal/dto"
	"sat-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler manages bookmarked tutor responses
type FavoriteHandler struct {
	service service.FavoriteService
}

func NewFavoriteHandler(service service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// List godoc
// @Summary List favourite responses
// @Tags favorites
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.FavoritesResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	favorites, err := h.service.List(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FavoritesResponse{Favorites: favorites})
}

// Save godoc
// @Summary Save a favourite response
// @Description Saving an existing id replaces it
// @Tags favorites
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.SaveFavoriteRequest true "Favourite"
// @Success 201 {object} domain.FavoriteResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) Save(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	req, err := validated[dto.SaveFavoriteRequest](c)
	if err != nil {
		return err
	}
	fav, err := h.service.Save(c.UserContext(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fav)
}

// Remove godoc
// @Summary Remove a favourite response
// @Tags favorites
// @Security ApiKeyAuth
// @Param id path string true "Favourite ID"
// @Success 204
// @Router /favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.UserContext(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
