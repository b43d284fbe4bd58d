package session

import "time"

// AnswerType describes how an Answer's value should be interpreted.
type AnswerType string

const (
	AnswerNumber AnswerType = "number"
	AnswerText   AnswerType = "text"
	AnswerSkip   AnswerType = "skip"
)

// InputMethod identifies the channel that captured an answer.
type InputMethod string

const (
	InputKeyboard  InputMethod = "keyboard"
	InputVoice     InputMethod = "voice"
	InputTouch     InputMethod = "touch"
	InputSelection InputMethod = "selection"
)

// Answer is a single captured response.
type Answer struct {
	// Value is the parsed domain value. Nil when Type is AnswerSkip.
	Value *float64

	// Type classifies the answer.
	Type AnswerType

	// Raw is the original input string, when one exists.
	Raw string

	// Timestamp is the wall-clock moment of capture.
	Timestamp time.Time

	// Method is the channel the answer arrived on.
	Method InputMethod

	// Confidence is in [0, 1] for noisy channels (voice). Zero when the
	// channel does not report one.
	Confidence float64
}

// SkipAnswer builds the synthetic answer recorded when a question is skipped.
func SkipAnswer(method InputMethod) Answer {
	return Answer{
		Type:      AnswerSkip,
		Timestamp: time.Now(),
		Method:    method,
	}
}

// NumberAnswer builds a parsed numeric answer.
func NumberAnswer(value float64, raw string, method InputMethod) Answer {
	return Answer{
		Value:     &value,
		Type:      AnswerNumber,
		Raw:       raw,
		Timestamp: time.Now(),
		Method:    method,
	}
}
