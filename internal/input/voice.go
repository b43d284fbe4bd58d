package input

import (
	"time"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/session"
)

// Voice receives recognized speech and interprets it through the domain
// plugin, so spoken number words ("twenty-one") resolve the same way the
// plugin parses any text.
type Voice struct {
	gate
	plugin domain.Plugin
}

var _ Handler = (*Voice)(nil)

// NewVoice creates a disabled voice handler parsing through plugin.
func NewVoice(plugin domain.Plugin) *Voice {
	return &Voice{plugin: plugin}
}

func (v *Voice) Method() session.InputMethod { return session.InputVoice }

// Hear processes one recognition result. confidence is the channel's
// [0, 1] estimate; pass 0 when the recognizer reports none. Unparseable
// transcripts produce no submission.
func (v *Voice) Hear(transcript string, confidence float64) {
	if !v.Enabled() {
		return
	}
	value, ok := v.plugin.ParseAnswer(transcript)
	if !ok {
		return
	}
	v.emit(session.Answer{
		Value:      &value,
		Type:       session.AnswerNumber,
		Raw:        transcript,
		Timestamp:  time.Now(),
		Method:     session.InputVoice,
		Confidence: confidence,
	})
}
