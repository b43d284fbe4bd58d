package input

import (
	"testing"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/session"
)

func collect(h Handler) *[]session.Answer {
	var got []session.Answer
	h.Bind(func(a session.Answer) { got = append(got, a) })
	return &got
}

func TestKeyboard_SubmitParsesBuffer(t *testing.T) {
	k := NewKeyboard()
	got := collect(k)
	k.Enable()

	k.Type('4')
	k.Type('2')
	k.Submit()

	if len(*got) != 1 {
		t.Fatalf("got %d answers, want 1", len(*got))
	}
	a := (*got)[0]
	if a.Value == nil || *a.Value != 42 {
		t.Errorf("Value = %v, want 42", a.Value)
	}
	if a.Type != session.AnswerNumber {
		t.Errorf("Type = %q, want number", a.Type)
	}
	if a.Method != session.InputKeyboard {
		t.Errorf("Method = %q, want keyboard", a.Method)
	}
	if a.Raw != "42" {
		t.Errorf("Raw = %q, want %q", a.Raw, "42")
	}
	if a.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestKeyboard_ClearDropsBuffer(t *testing.T) {
	k := NewKeyboard()
	got := collect(k)
	k.Enable()

	k.Type('7')
	k.Clear()
	k.Submit()

	if len(*got) != 0 {
		t.Fatalf("cleared buffer emitted %d answers", len(*got))
	}
	if k.Buffer() != "" {
		t.Errorf("Buffer = %q after Clear, want empty", k.Buffer())
	}
}

func TestKeyboard_DisabledDropsEverything(t *testing.T) {
	k := NewKeyboard()
	got := collect(k)

	k.Type('5')
	k.Submit()

	if len(*got) != 0 {
		t.Fatalf("disabled handler emitted %d answers", len(*got))
	}
	if k.Buffer() != "" {
		t.Errorf("disabled handler buffered %q", k.Buffer())
	}
}

func TestKeyboard_EmptyBufferNoSubmission(t *testing.T) {
	k := NewKeyboard()
	got := collect(k)
	k.Enable()

	k.Submit()

	if len(*got) != 0 {
		t.Fatalf("empty buffer emitted %d answers", len(*got))
	}
}

func TestKeyboard_RejectsNonNumericRunes(t *testing.T) {
	k := NewKeyboard()
	k.Enable()

	k.Type('x')
	k.Type('1')
	k.Type('.')
	k.Type('.')
	k.Type('5')

	if k.Buffer() != "1.5" {
		t.Errorf("Buffer = %q, want %q", k.Buffer(), "1.5")
	}
}

func TestKeyboard_Backspace(t *testing.T) {
	k := NewKeyboard()
	k.Enable()

	k.Type('1')
	k.Type('2')
	k.Backspace()

	if k.Buffer() != "1" {
		t.Errorf("Buffer = %q, want %q", k.Buffer(), "1")
	}
}

func TestTouch_TapAndSubmit(t *testing.T) {
	h := NewTouch()
	got := collect(h)
	h.Enable()

	h.Tap(7)
	h.Tap(3)
	h.Submit()

	if len(*got) != 1 {
		t.Fatalf("got %d answers, want 1", len(*got))
	}
	a := (*got)[0]
	if a.Value == nil || *a.Value != 73 {
		t.Errorf("Value = %v, want 73", a.Value)
	}
	if a.Method != session.InputTouch {
		t.Errorf("Method = %q, want touch", a.Method)
	}
}

func TestTouch_IgnoresOutOfRangeDigits(t *testing.T) {
	h := NewTouch()
	h.Enable()

	h.Tap(10)
	h.Tap(-1)
	h.Tap(5)

	if h.Buffer() != "5" {
		t.Errorf("Buffer = %q, want %q", h.Buffer(), "5")
	}
}

func TestVoice_ParsesThroughPlugin(t *testing.T) {
	v := NewVoice(domain.NewArithmetic())
	got := collect(v)
	v.Enable()

	v.Hear("twenty-one", 0.93)

	if len(*got) != 1 {
		t.Fatalf("got %d answers, want 1", len(*got))
	}
	a := (*got)[0]
	if a.Value == nil || *a.Value != 21 {
		t.Errorf("Value = %v, want 21", a.Value)
	}
	if a.Method != session.InputVoice {
		t.Errorf("Method = %q, want voice", a.Method)
	}
	if a.Confidence != 0.93 {
		t.Errorf("Confidence = %v, want 0.93", a.Confidence)
	}
	if a.Raw != "twenty-one" {
		t.Errorf("Raw = %q, want transcript", a.Raw)
	}
}

func TestVoice_UnparseableTranscriptDropped(t *testing.T) {
	v := NewVoice(domain.NewArithmetic())
	got := collect(v)
	v.Enable()

	v.Hear("pineapple", 0.5)

	if len(*got) != 0 {
		t.Fatalf("unparseable transcript emitted %d answers", len(*got))
	}
}

func TestVoice_DisabledDrops(t *testing.T) {
	v := NewVoice(domain.NewArithmetic())
	got := collect(v)

	v.Hear("nine", 0.9)

	if len(*got) != 0 {
		t.Fatalf("disabled handler emitted %d answers", len(*got))
	}
}
