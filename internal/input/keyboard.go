package input

import (
	"strconv"
	"strings"

	"github.com/sjoshi/digitdrill/internal/session"
)

// Keyboard buffers typed digits and submits them as a decimal number.
// The render layer forwards keypresses via Type/Backspace/Submit.
type Keyboard struct {
	gate
	buffer strings.Builder
}

var _ Handler = (*Keyboard)(nil)

// NewKeyboard creates a disabled keyboard handler.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Method() session.InputMethod { return session.InputKeyboard }

// Type appends one character to the buffer. Only digits, a leading
// minus and a decimal point are kept; everything else is ignored.
func (k *Keyboard) Type(r rune) {
	if !k.Enabled() {
		return
	}
	switch {
	case r >= '0' && r <= '9':
	case r == '.' && !strings.Contains(k.buffer.String(), "."):
	case r == '-' && k.buffer.Len() == 0:
	default:
		return
	}
	k.buffer.WriteRune(r)
}

// Backspace removes the last buffered character.
func (k *Keyboard) Backspace() {
	if !k.Enabled() {
		return
	}
	s := k.buffer.String()
	if s == "" {
		return
	}
	k.buffer.Reset()
	k.buffer.WriteString(s[:len(s)-1])
}

// Clear drops the buffered text.
func (k *Keyboard) Clear() {
	k.buffer.Reset()
}

// Buffer returns the current unsubmitted text, for display.
func (k *Keyboard) Buffer() string {
	return k.buffer.String()
}

// Submit parses the buffer and forwards the answer. An unparseable or
// empty buffer produces no submission.
func (k *Keyboard) Submit() {
	if !k.Enabled() {
		return
	}
	raw := k.buffer.String()
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return
	}
	k.buffer.Reset()
	k.emit(session.NumberAnswer(value, raw, session.InputKeyboard))
}
