package handler

import (
	"sat-prep/internal/dto"
	"sat-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TutorHandler struct {
	service service.TutorService
}

func NewTutorHandler(service service.TutorService) *TutorHandler {
	return &TutorHandler{service: service}
}

// Chat godoc
// @Summary Ask the SAT tutor
// @Description Starts a session when session_id is omitted. The user message is stored even if the model call fails.
// @Tags tutor
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.TutorChatRequest true "Message"
// @Success 200 {object} dto.TutorChatResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /tutor/chat [post]
func (h *TutorHandler) Chat(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	req, err := validated[dto.TutorChatRequest](c)
	if err != nil {
		return err
	}
	resp, err := h.service.Chat(c.UserContext(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
