package dto

import "sat-prep/internal/domain"

// SectionSummary describes one section of the question bank
// @Description Section information
type SectionSummary struct {
	Section       string   `json:"section"`
	QuestionCount int      `json:"question_count"`
	Domains       []string `json:"domains"`
}

// SectionsResponse lists every section, including empty ones
type SectionsResponse struct {
	Sections []SectionSummary `json:"sections"`
}

// QuestionResponse is a practice question without its answer
// @Description Question information
type QuestionResponse struct {
	ID         string         `json:"id"`
	Section    string         `json:"section"`
	Domain     string         `json:"domain"`
	Difficulty string         `json:"difficulty,omitempty"`
	Question   string         `json:"question"`
	Choices    domain.Choices `json:"choices" swaggertype:"object,string"`
}

// QuestionListResponse wraps a list of questions with the filter that produced it
type QuestionListResponse struct {
	Section   string             `json:"section"`
	Domain    string             `json:"domain,omitempty"`
	Count     int                `json:"count"`
	Questions []QuestionResponse `json:"questions"`
}

// QuestionListRequest holds the query of GET /api/questions
type QuestionListRequest struct {
	Section string `query:"section" validate:"required,section"`
	Domain  string `query:"domain" validate:"max=100"`
}

// RandomQuestionsRequest holds the query of GET /api/questions/random.
// Count is a pointer so an absent value can fall back to the default.
type RandomQuestionsRequest struct {
	Section string `query:"section" validate:"required,section"`
	Count   *int   `query:"count" validate:"omitempty,min=0"`
	Domain  string `query:"domain" validate:"max=100"`
}

// CheckAnswerRequest represents a user's answer to a bank question
// @Description Request body for checking an answer
type CheckAnswerRequest struct {
	Section    string `json:"section" validate:"required,section"`
	QuestionID string `json:"question_id" validate:"required,max=100"`
	Answer     string `json:"answer" validate:"required,max=10"`
	// TimeSpentSeconds is recorded with the attempt of a signed-in user
	TimeSpentSeconds int `json:"time_spent_seconds,omitempty" validate:"min=0,max=86400"`
}

// CheckAnswerResponse is the grading result for a single answer
type CheckAnswerResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// NewQuestionResponse hides the answer and explanation of q
func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Section:    string(q.Section),
		Domain:     q.Domain,
		Difficulty: q.Difficulty,
		Question:   q.Prompt,
		Choices:    q.Choices,
	}
}

// NewQuestionListResponse converts questions, always producing a non-nil list
func NewQuestionListResponse(section domain.Section, domainFilter string, questions []*domain.Question) *QuestionListResponse {
	items := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		items = append(items, NewQuestionResponse(q))
	}
	return &QuestionListResponse{
		Section:   string(section),
		Domain:    domainFilter,
		Count:     len(items),
		Questions: items,
	}
}
