package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Section is a top-level subject partition of the question bank
type Section string

const (
	SectionMath    Section = "math"
	SectionReading Section = "reading"
	SectionWriting Section = "writing"
)

// AllSections lists the sections in display order
var AllSections = []Section{SectionMath, SectionReading, SectionWriting}

// ParseSection normalizes a user supplied section name
func ParseSection(s string) (Section, bool) {
	section := Section(strings.ToLower(strings.TrimSpace(s)))
	return section, section.Valid()
}

// Valid reports whether s is one of the known sections
func (s Section) Valid() bool {
	switch s {
	case SectionMath, SectionReading, SectionWriting:
		return true
	default:
		return false
	}
}

// Choice is one answer option of a multiple choice question
type Choice struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Choices keeps answer options in the order they appear in the dataset.
// It decodes from and encodes to a JSON object.
type Choices []Choice

// Get returns the text for key
func (c Choices) Get(key string) (string, bool) {
	for _, ch := range c {
		if ch.Key == key {
			return ch.Text, true
		}
	}
	return "", false
}

// Has reports whether key is one of the options
func (c Choices) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Keys returns the option keys in display order
func (c Choices) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, ch := range c {
		keys = append(keys, ch.Key)
	}
	return keys
}

// UnmarshalJSON decodes a JSON object while keeping key order.
func (c *Choices) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("choices: expected JSON object")
	}

	var out Choices
	seen := make(map[string]struct{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("choices: expected string key")
		}
		var text string
		if err := dec.Decode(&text); err != nil {
			return fmt.Errorf("choices: value for %q: %w", key, err)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("choices: duplicate key %q", key)
		}
		seen[key] = struct{}{}
		out = append(out, Choice{Key: key, Text: text})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// MarshalJSON encodes the options as a JSON object in display order.
func (c Choices) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ch := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(ch.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(ch.Text)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Question is a single exam question. Values are never mutated once loaded.
type Question struct {
	ID            string
	Section       Section
	Domain        string
	Difficulty    string // opaque label, not interpreted by selection
	Prompt        string
	Choices       Choices
	Explanation   string
	CorrectAnswer string
}

// Clone returns a deep copy of q
func (q *Question) Clone() *Question {
	c := *q
	c.Choices = slices.Clone(q.Choices)
	return &c
}

// MatchesDomain reports whether the question's domain contains filter,
// ignoring case. An empty filter matches everything.
func (q *Question) MatchesDomain(filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(q.Domain), strings.ToLower(filter))
}

// IsCorrect reports whether answer is the correct choice key
func (q *Question) IsCorrect(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), q.CorrectAnswer)
}

// Validate checks the invariants a question must satisfy before it can be sampled
func (q *Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return NewValidationError("id is required")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return NewValidationError("prompt is required")
	}
	if len(q.Choices) == 0 {
		return NewValidationError("at least one choice is required")
	}
	if !q.Choices.Has(q.CorrectAnswer) {
		return NewValidationError(fmt.Sprintf("correct answer %q is not one of the choices %v", q.CorrectAnswer, q.Choices.Keys()))
	}
	return nil
}

// NewValidationError builds a plain validation error for domain invariants
func NewValidationError(message string) error {
	return NewError(CodeValidation, message, nil)
}

// QuestionSource is the read side of the question bank. Returned questions
// are copies owned by the caller.
type QuestionSource interface {
	QuestionsBySection(section Section) []*Question
	Questions(section Section, domain string) []*Question
	RandomQuestions(section Section, count int, domain string) []*Question
}
