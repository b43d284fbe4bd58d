package provider

import "github.com/sjoshi/digitdrill/internal/problemgen"

// Sequential serves the pool in order, once through.
type Sequential struct {
	pool   []problemgen.Question
	cursor int
}

var _ Provider = (*Sequential)(nil)

// NewSequential creates an uninitialized sequential provider.
func NewSequential() *Sequential {
	return &Sequential{}
}

func (s *Sequential) Initialize(questions []problemgen.Question) {
	s.pool = questions
	s.cursor = 0
}

func (s *Sequential) Next() *problemgen.Question {
	if s.cursor >= len(s.pool) {
		return nil
	}
	q := &s.pool[s.cursor]
	s.cursor++
	return q
}

func (s *Sequential) HasMore() bool {
	return s.cursor < len(s.pool)
}
