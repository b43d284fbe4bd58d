package input

import (
	"strconv"
	"strings"

	"github.com/sjoshi/digitdrill/internal/session"
)

// Touch models a numeric keypad widget: digit taps build the answer, a
// submit tap forwards it.
type Touch struct {
	gate
	buffer strings.Builder
}

var _ Handler = (*Touch)(nil)

// NewTouch creates a disabled touch handler.
func NewTouch() *Touch {
	return &Touch{}
}

func (t *Touch) Method() session.InputMethod { return session.InputTouch }

// Tap appends one keypad digit (0-9). Out-of-range taps are ignored.
func (t *Touch) Tap(digit int) {
	if !t.Enabled() || digit < 0 || digit > 9 {
		return
	}
	t.buffer.WriteString(strconv.Itoa(digit))
}

// Clear empties the keypad buffer.
func (t *Touch) Clear() {
	t.buffer.Reset()
}

// Buffer returns the current unsubmitted digits, for display.
func (t *Touch) Buffer() string {
	return t.buffer.String()
}

// Submit parses the tapped digits as a decimal integer and forwards the
// answer. An empty buffer produces no submission.
func (t *Touch) Submit() {
	if !t.Enabled() {
		return
	}
	raw := t.buffer.String()
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}
	t.buffer.Reset()
	t.emit(session.NumberAnswer(value, raw, session.InputTouch))
}
