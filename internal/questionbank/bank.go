// Package questionbank holds the immutable SAT question bank and the
// filter and sampling stages built on top of it.
package questionbank

import (
	"math/rand/v2"
	"slices"

	"sat-prep/internal/domain"
)

// Bank is an immutable, in-memory question bank partitioned by section.
// It is safe for concurrent use; nothing writes to it after construction.
// Every question it returns is a copy, so callers may modify results freely.
type Bank struct {
	sections map[domain.Section][]*domain.Question
	index    map[domain.Section]map[string]*domain.Question
	intN     func(n int) int
}

// Option configures a Bank
type Option func(*Bank)

// WithIntN replaces the random source used by the sampler. fn must return a
// value in [0, n) and be safe for concurrent use if the bank is shared.
func WithIntN(fn func(n int) int) Option {
	return func(b *Bank) {
		if fn != nil {
			b.intN = fn
		}
	}
}

// NewBank builds a bank from per-section question sequences. The questions
// are copied; later changes by the caller do not affect the bank.
func NewBank(sections map[domain.Section][]*domain.Question, opts ...Option) *Bank {
	b := &Bank{
		sections: make(map[domain.Section][]*domain.Question, len(sections)),
		index:    make(map[domain.Section]map[string]*domain.Question, len(sections)),
		intN:     rand.IntN,
	}
	for section, questions := range sections {
		owned := make([]*domain.Question, 0, len(questions))
		idx := make(map[string]*domain.Question, len(questions))
		for _, q := range questions {
			c := q.Clone()
			owned = append(owned, c)
			idx[c.ID] = c
		}
		b.sections[section] = owned
		b.index[section] = idx
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// QuestionsBySection returns every question of section in dataset order.
// Unknown or empty sections yield an empty, non-nil slice.
func (b *Bank) QuestionsBySection(section domain.Section) []*domain.Question {
	return cloneAll(b.sections[section])
}

// Questions returns the questions of section whose domain contains
// domainFilter, ignoring case. Relative order is preserved. An empty filter
// returns the whole section.
func (b *Bank) Questions(section domain.Section, domainFilter string) []*domain.Question {
	return cloneAll(b.pool(section, domainFilter))
}

// pool returns a fresh slice of the bank's own question pointers matching
// domainFilter. It must not escape the package.
func (b *Bank) pool(section domain.Section, domainFilter string) []*domain.Question {
	if domainFilter == "" {
		return slices.Clone(b.sections[section])
	}
	pool := []*domain.Question{}
	for _, q := range b.sections[section] {
		if q.MatchesDomain(domainFilter) {
			pool = append(pool, q)
		}
	}
	return pool
}

func cloneAll(questions []*domain.Question) []*domain.Question {
	out := make([]*domain.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Clone())
	}
	return out
}

// RandomQuestions draws min(count, len(pool)) distinct questions from the
// filtered pool in uniformly random order. count <= 0 yields an empty slice.
func (b *Bank) RandomQuestions(section domain.Section, count int, domainFilter string) []*domain.Question {
	if count <= 0 {
		return []*domain.Question{}
	}
	pool := b.pool(section, domainFilter)
	n := min(count, len(pool))

	// Partial Fisher-Yates: only the first n positions need to be settled.
	for i := 0; i < n; i++ {
		j := i + b.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return cloneAll(pool[:n])
}

// Question looks up a single question by id within section
func (b *Bank) Question(section domain.Section, id string) (*domain.Question, bool) {
	q, ok := b.index[section][id]
	if !ok {
		return nil, false
	}
	return q.Clone(), true
}

// Count returns the number of questions in section
func (b *Bank) Count(section domain.Section) int {
	return len(b.sections[section])
}

// Domains lists the distinct domain labels of section in first-seen order
func (b *Bank) Domains(section domain.Section) []string {
	seen := make(map[string]struct{})
	domains := []string{}
	for _, q := range b.sections[section] {
		if _, ok := seen[q.Domain]; ok {
			continue
		}
		seen[q.Domain] = struct{}{}
		domains = append(domains, q.Domain)
	}
	return domains
}

var _ domain.QuestionSource = (*Bank)(nil)
