package session

import (
	"time"

	"github.com/sjoshi/digitdrill/internal/problemgen"
)

// Session ties together one run of the practice engine: its identity, the
// question pool it was started with, and the progress accumulated so far.
type Session struct {
	ID        string
	Mode      string
	StartedAt time.Time
	EndedAt   time.Time
	Questions []problemgen.Question
	Progress  map[string]*ProgressEntry
}
