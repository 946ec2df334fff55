package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTutorReply_MathWithExample(t *testing.T) {
	raw := `Math question
To solve 2x + 3 = 7, subtract 3 from both sides and divide by 2.

<quiz-example>
{
  "question": "Solve 3x - 4 = 11",
  "choices": ["3", "4", "6"],
  "correctAnswer": "5",
  "explanation": "Add 4, then divide by 3."
}
</quiz-example>

Keep practicing!`

	reply := ParseTutorReply(raw)
	assert.Equal(t, CategoryMath, reply.Category)
	assert.Equal(t, raw, reply.Raw)
	assert.NotContains(t, reply.Content, "Math question")
	assert.NotContains(t, reply.Content, "quiz-example")
	assert.Contains(t, reply.Content, "subtract 3")
	assert.Contains(t, reply.Content, "Keep practicing!")

	require.NotNil(t, reply.QuizExample)
	assert.NoError(t, reply.ExampleErr)
	assert.Equal(t, "Solve 3x - 4 = 11", reply.QuizExample.Question)
	assert.Equal(t, []string{"3", "4", "6", "5"}, reply.QuizExample.Choices)
}

func TestParseTutorReply_NotMath(t *testing.T) {
	reply := ParseTutorReply("Not math\nThe reading section has 54 questions.")
	assert.Equal(t, CategoryNotMath, reply.Category)
	assert.Equal(t, "The reading section has 54 questions.", reply.Content)
	assert.Nil(t, reply.QuizExample)
}

func TestParseTutorReply_DecoratedCategoryLine(t *testing.T) {
	assert.Equal(t, CategoryMath, ParseTutorReply("**Math question**\nok").Category)
	assert.Equal(t, CategoryNotMath, ParseTutorReply(`"Not math"`+"\nok").Category)
}

func TestParseTutorReply_MissingCategory(t *testing.T) {
	reply := ParseTutorReply("Sure! Here is a study plan.\nWeek 1: algebra.")
	assert.Equal(t, CategoryUnknown, reply.Category)
	assert.Equal(t, "Sure! Here is a study plan.\nWeek 1: algebra.", reply.Content)
}

func TestParseTutorReply_MalformedExample(t *testing.T) {
	raw := "Math question\nExplanation.\n<quiz-example>{not json}</quiz-example>"
	reply := ParseTutorReply(raw)
	assert.Equal(t, "Explanation.", reply.Content)
	assert.Nil(t, reply.QuizExample)
	assert.Error(t, reply.ExampleErr)

	incomplete := "Math question\n<quiz-example>{\"question\": \"q\", \"choices\": []}</quiz-example>"
	reply = ParseTutorReply(incomplete)
	assert.Nil(t, reply.QuizExample)
	assert.Error(t, reply.ExampleErr)
	assert.Empty(t, reply.Content)
}

func TestParseTutorReply_FencedExample(t *testing.T) {
	raw := "Math question\nSee below.\n<quiz-example>\n```json\n" +
		`{"question": "1+1?", "choices": ["1", "2"], "correctAnswer": "2", "explanation": "Sum."}` +
		"\n```\n</quiz-example>"
	reply := ParseTutorReply(raw)
	require.NotNil(t, reply.QuizExample)
	assert.Equal(t, []string{"1", "2"}, reply.QuizExample.Choices)
	assert.Equal(t, "See below.", reply.Content)
}
