package problemgen

// TypeMath is the question type tag produced by the arithmetic generator.
const TypeMath = "math"

// Operator is the arithmetic operation in a question.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "×"
	OpDivide   Operator = "÷"
)

// Content is the arithmetic payload of a question.
type Content struct {
	// Operand1 and Operand2 are the left and right operands.
	// Both are non-negative integers.
	Operand1 int
	Operand2 int

	// Operator is the operation joining the operands.
	Operator Operator

	// Expression is the rendered prompt, e.g. "2 + 3".
	Expression string
}

// Question is a single practice question. Questions are created before a
// session starts and are immutable thereafter.
type Question struct {
	// ID is a stable unique identifier assigned at creation.
	ID string

	// Type is the domain tag, e.g. "math".
	Type string

	// Content is the domain-specific payload.
	Content Content

	// CorrectAnswer is the canonical answer. The generator only emits
	// integers in [0, 99]; externally loaded pools may carry decimals.
	CorrectAnswer float64

	// Metadata is an optional free-form mapping.
	Metadata map[string]any
}
