package handler

import (
	"sat-prep/internal/dto"
	"sat-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler exposes a user's tutoring conversations
type ChatHandler struct {
	service service.ChatHistoryService
}

func NewChatHandler(service service.ChatHistoryService) *ChatHandler {
	return &ChatHandler{service: service}
}

// ListSessions godoc
// @Summary List chat sessions
// @Description Most recently active first
// @Tags chats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ChatSessionsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /chats [get]
func (h *ChatHandler) ListSessions(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	sessions, err := h.service.ListSessions(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewChatSessionsResponse(sessions))
}

// GetMessages godoc
// @Summary Get a conversation
// @Tags chats
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ChatMessagesResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /chats/{id}/messages [get]
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	session, messages, err := h.service.GetConversation(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewChatMessagesResponse(session, messages))
}

// RenameSession godoc
// @Summary Rename a chat session
// @Tags chats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param request body dto.RenameChatRequest true "New title"
// @Success 200 {object} dto.ChatSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /chats/{id} [patch]
func (h *ChatHandler) RenameSession(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	req, err := validated[dto.RenameChatRequest](c)
	if err != nil {
		return err
	}
	session, err := h.service.RenameSession(c.UserContext(), userID, c.Params("id"), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewChatSessionResponse(session))
}

// ToggleFavorite godoc
// @Summary Toggle the favourite flag of a chat session
// @Tags chats
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ChatSessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /chats/{id}/favorite [post]
func (h *ChatHandler) ToggleFavorite(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	session, err := h.service.ToggleFavorite(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewChatSessionResponse(session))
}

// DeleteSession godoc
// @Summary Delete a chat session and its messages
// @Tags chats
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /chats/{id} [delete]
func (h *ChatHandler) DeleteSession(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteSession(c.UserContext(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
