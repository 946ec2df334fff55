package domain

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"slices"
	"strings"
)

// ReplyCategory is the tutor's own classification of a user question
type ReplyCategory string

const (
	CategoryMath    ReplyCategory = "math"
	CategoryNotMath ReplyCategory = "not_math"
	CategoryUnknown ReplyCategory = "unknown"
)

const (
	categoryLineMath    = "math question"
	categoryLineNotMath = "not math"
)

var quizExamplePattern = regexp.MustCompile(`(?s)<quiz-example>(.*?)</quiz-example>`)

// QuizExample is a practice question embedded in a tutor reply
type QuizExample struct {
	Question      string   `json:"question"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Validate checks the example is complete enough to render
func (q *QuizExample) Validate() error {
	switch {
	case strings.TrimSpace(q.Question) == "":
		return errors.New("quiz example has no question")
	case len(q.Choices) == 0:
		return errors.New("quiz example has no choices")
	case strings.TrimSpace(q.CorrectAnswer) == "":
		return errors.New("quiz example has no correct answer")
	case strings.TrimSpace(q.Explanation) == "":
		return errors.New("quiz example has no explanation")
	}
	return nil
}

// TutorReply is a post-processed assistant response
type TutorReply struct {
	Content     string
	Category    ReplyCategory
	QuizExample *QuizExample
	// ExampleErr is set when a quiz example block was present but unusable
	ExampleErr error
	Raw        string
}

// ParseTutorReply strips the leading category line and any quiz example
// blocks from raw. The first well-formed example is returned; the correct
// answer is appended to its choices when the model left it out.
func ParseTutorReply(raw string) *TutorReply {
	reply := &TutorReply{Raw: raw, Category: CategoryUnknown}

	body := strings.TrimSpace(raw)
	firstLine, rest, _ := strings.Cut(body, "\n")
	switch normalizeCategoryLine(firstLine) {
	case categoryLineMath:
		reply.Category = CategoryMath
		body = rest
	case categoryLineNotMath:
		reply.Category = CategoryNotMath
		body = rest
	}

	for _, match := range quizExamplePattern.FindAllStringSubmatch(body, -1) {
		if reply.QuizExample != nil {
			break
		}
		example, err := parseQuizExample(match[1])
		if err != nil {
			reply.ExampleErr = err
			continue
		}
		reply.QuizExample = example
		reply.ExampleErr = nil
	}

	reply.Content = strings.TrimSpace(quizExamplePattern.ReplaceAllString(body, ""))
	return reply
}

func normalizeCategoryLine(line string) string {
	line = strings.Trim(strings.TrimSpace(line), `"'*#:.`)
	return strings.ToLower(strings.TrimSpace(line))
}

func parseQuizExample(block string) (*QuizExample, error) {
	block = strings.TrimSpace(block)
	block = strings.TrimPrefix(block, "```json")
	block = strings.TrimPrefix(block, "```")
	block = strings.TrimSuffix(block, "```")

	var example QuizExample
	if err := json.Unmarshal([]byte(block), &example); err != nil {
		return nil, err
	}
	if err := example.Validate(); err != nil {
		return nil, err
	}
	if !slices.Contains(example.Choices, example.CorrectAnswer) {
		example.Choices = append(example.Choices, example.CorrectAnswer)
	}
	return &example, nil
}

// CompletionRequest is a chat completion call against the tutor model
type CompletionRequest struct {
	Messages    []*ChatMessage
	Model       string
	Temperature float64
	MaxTokens   int
}

// TutorClient talks to the language model backing the tutor
type TutorClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
