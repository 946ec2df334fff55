package handler

import (
	"sat-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves a user's practice statistics
type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats godoc
// @Summary Practice statistics
// @Description Totals, accuracy, per-section counts and the most recent attempts of the current user
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	stats, err := h.service.GetStats(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
