package handler

import (
	"sat-prep/internal/dto"
	"sat-prep/internal/middleware"
	"sat-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler of the API
type Handlers struct {
	Question *QuestionHandler
	Chat     *ChatHandler
	Tutor    *TutorHandler
	Favorite *FavoriteHandler
	Stats    *StatsHandler
}

// SetupRoutes registers the /api routes. Question routes are public; chat,
// tutor, favourite and stats routes require an access token.
func SetupRoutes(app *fiber.App, h *Handlers, authService service.AuthService) {
	vm := middleware.NewValidationMiddleware()
	apiGroup := app.Group("/api")

	// Question bank routes
	questions := apiGroup.Group("", middleware.OptionalAuth(authService))
	questions.Get("/sections", h.Question.GetSections)
	questions.Get("/questions", middleware.ValidateQuery[dto.QuestionListRequest](vm), h.Question.ListQuestions)
	questions.Get("/questions/random", middleware.ValidateQuery[dto.RandomQuestionsRequest](vm), h.Question.GetRandomQuestions)
	questions.Post("/questions/check", middleware.ValidateBody[dto.CheckAnswerRequest](vm), h.Question.CheckAnswer)
	questions.Get("/questions/:section/:id", h.Question.GetQuestion)

	// Chat history routes
	chats := apiGroup.Group("/chats", middleware.Protected(authService))
	chats.Get("/", h.Chat.ListSessions)
	chats.Get("/:id/messages", h.Chat.GetMessages)
	chats.Patch("/:id", middleware.ValidateBody[dto.RenameChatRequest](vm), h.Chat.RenameSession)
	chats.Post("/:id/favorite", h.Chat.ToggleFavorite)
	chats.Delete("/:id", h.Chat.DeleteSession)

	// Tutor routes
	tutor := apiGroup.Group("/tutor", middleware.Protected(authService))
	tutor.Post("/chat", middleware.ValidateBody[dto.TutorChatRequest](vm), h.Tutor.Chat)

	// Favourite response routes
	favorites := apiGroup.Group("/favorites", middleware.Protected(authService))
	favorites.Get("/", h.Favorite.List)
	favorites.Post("/", middleware.ValidateBody[dto.SaveFavoriteRequest](vm), h.Favorite.Save)
	favorites.Delete("/:id", h.Favorite.Remove)

	apiGroup.Get("/stats", middleware.Protected(authService), h.Stats.GetStats)
}
