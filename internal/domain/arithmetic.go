package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

const (
	// answerTolerance is the float closeness treated as equality. The
	// built-in generator only emits integers, so this matters only for
	// externally loaded pools with decimal answers.
	answerTolerance = 0.01

	// streakBonusCap caps the streak contribution to mastery.
	streakBonusCap = 0.2

	// speedBonusThresholdMs is the average response time below which the
	// speed bonus applies.
	speedBonusThresholdMs = 3000

	// speedBonus is the mastery bonus for fast average responses.
	speedBonus = 0.1
)

// Arithmetic is the Plugin implementation for elementary arithmetic.
type Arithmetic struct{}

var _ Plugin = (*Arithmetic)(nil)

// NewArithmetic returns the arithmetic domain plugin.
func NewArithmetic() *Arithmetic {
	return &Arithmetic{}
}

func (a *Arithmetic) Name() string { return "arithmetic" }

func (a *Arithmetic) QuestionTypes() []string { return []string{problemgen.TypeMath} }

// ValidateAnswer accepts exact equality or closeness within 0.01.
func (a *Arithmetic) ValidateAnswer(value, correct float64) bool {
	return value == correct || math.Abs(value-correct) < answerTolerance
}

// ValidateAnswerWithQuestion delegates to ValidateAnswer; the arithmetic
// domain needs nothing from the question beyond its correct answer.
func (a *Arithmetic) ValidateAnswerWithQuestion(value float64, q *problemgen.Question) bool {
	return a.ValidateAnswer(value, q.CorrectAnswer)
}

// ParseAnswer accepts decimal numbers ("42", "3.14") and English number
// words ("nine", "twenty-one", "one hundred"). Input is trimmed and
// case-insensitive.
func (a *Arithmetic) ParseAnswer(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n, true
	}
	if n, ok := parseNumberWords(s); ok {
		return float64(n), true
	}
	return 0, false
}

// CalculateMastery combines accuracy with streak and speed bonuses:
// min(accuracy + min(streak/5, 0.2) + speedBonus, 1).
func (a *Arithmetic) CalculateMastery(entry *session.ProgressEntry) float64 {
	attempts := entry.Attempts
	if attempts < 1 {
		attempts = 1
	}
	accuracy := float64(entry.CorrectCount) / float64(attempts)

	streakBonus := float64(entry.Streak) / 5
	if streakBonus > streakBonusCap {
		streakBonus = streakBonusCap
	}

	bonus := 0.0
	if entry.AverageTime < speedBonusThresholdMs {
		bonus = speedBonus
	}

	return math.Min(accuracy+streakBonus+bonus, 1)
}

// Hint returns an operator-tailored heuristic on the first attempt, a
// partial numeric hint on the second, and the answer from the third on.
func (a *Arithmetic) Hint(q *problemgen.Question, attempt int) string {
	switch {
	case attempt <= 1:
		return operatorHint(q)
	case attempt == 2:
		return partialHint(q)
	default:
		return "The answer is " + a.FormatAnswer(q.CorrectAnswer)
	}
}

func operatorHint(q *problemgen.Question) string {
	c := q.Content
	switch c.Operator {
	case problemgen.OpAdd:
		return fmt.Sprintf("Try counting up from %d.", c.Operand1)
	case problemgen.OpSubtract:
		return fmt.Sprintf("Start at %d and count down %d.", c.Operand1, c.Operand2)
	case problemgen.OpMultiply:
		return fmt.Sprintf("Think of it as %d groups of %d.", c.Operand1, c.Operand2)
	case problemgen.OpDivide:
		return fmt.Sprintf("How many times does %d fit into %d?", c.Operand2, c.Operand1)
	}
	return "Take it one step at a time."
}

func partialHint(q *problemgen.Question) string {
	answer := int(q.CorrectAnswer)
	if answer < 10 {
		return "The answer is less than 10."
	}
	leading := answer
	for leading >= 10 {
		leading /= 10
	}
	return fmt.Sprintf("The answer starts with %d.", leading)
}

// Explanation renders the canonical "a op b = answer" string.
func (a *Arithmetic) Explanation(q *problemgen.Question) string {
	return fmt.Sprintf("%s = %s", q.Content.Expression, a.FormatAnswer(q.CorrectAnswer))
}

// FormatAnswer renders integers without decimals and everything else to
// two decimal places.
func (a *Arithmetic) FormatAnswer(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// RenderQuestion returns the display prompt, e.g. "2 + 3 = ?".
func (a *Arithmetic) RenderQuestion(q *problemgen.Question) string {
	return q.Content.Expression + " = ?"
}
