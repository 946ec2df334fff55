package handler

import (
	"sat-prep/internal/dto"
	"sat-prep/internal/middleware"
	"sat-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question bank HTTP requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// GetSections godoc
// @Summary List sections
// @Description Returns every SAT section with its question count and domains
// @Tags questions
// @Produce json
// @Success 200 {object} dto.SectionsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sections [get]
func (h *QuestionHandler) GetSections(c *fiber.Ctx) error {
	resp, err := h.service.GetSections(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns the questions of a section, optionally filtered by domain (case-insensitive substring)
// @Tags questions
// @Produce json
// @Param section query string true "Section" Enums(math, reading, writing)
// @Param domain query string false "Domain filter"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	req, err := validated[dto.QuestionListRequest](c)
	if err != nil {
		return err
	}
	resp, err := h.service.ListQuestions(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetRandomQuestions godoc
// @Summary Random practice set
// @Description Returns up to count distinct questions in random order
// @Tags questions
// @Produce json
// @Param section query string true "Section" Enums(math, reading, writing)
// @Param count query int false "Number of questions (default 10)"
// @Param domain query string false "Domain filter"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /questions/random [get]
func (h *QuestionHandler) GetRandomQuestions(c *fiber.Ctx) error {
	req, err := validated[dto.RandomQuestionsRequest](c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetRandomQuestions(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param section path string true "Section"
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{section}/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestion(c.UserContext(), c.Params("section"), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CheckAnswer godoc
// @Summary Check an answer
// @Description Grades a choice key against a bank question. Attempts of signed-in users are recorded.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CheckAnswerRequest true "Answer details"
// @Success 200 {object} dto.CheckAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /questions/check [post]
func (h *QuestionHandler) CheckAnswer(c *fiber.Ctx) error {
	req, err := validated[dto.CheckAnswerRequest](c)
	if err != nil {
		return err
	}
	resp, err := h.service.CheckAnswer(c.UserContext(), middleware.UserIDFromCtx(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
