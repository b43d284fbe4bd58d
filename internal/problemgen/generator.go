package problemgen

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// AnswerMax is the inclusive upper bound for generated answers.
const AnswerMax = 99

var operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Generator produces arithmetic questions with answers in [0, AnswerMax].
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a time-seeded source.
func NewGenerator() *Generator {
	return NewGeneratorWithSeed(uint64(time.Now().UnixNano()))
}

// NewGeneratorWithSeed creates a generator with a fixed seed, for
// reproducible pools.
func NewGeneratorWithSeed(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate produces one question. Operands are sampled from
// operator-specific ranges so the answer lands in [0, AnswerMax]:
//
//	+  both operands in [0, 49]
//	-  a in [0, 99], b in [0, a]
//	×  a in [0, 9], b in [0, 10]
//	÷  b in [1, 9], quotient in [0, 10], a = b·q
//
// Division never has a zero divisor and always yields an exact integer.
func (g *Generator) Generate() Question {
	for {
		op := operators[g.rng.IntN(len(operators))]

		var a, b int
		switch op {
		case OpAdd:
			a = g.rng.IntN(50)
			b = g.rng.IntN(50)
		case OpSubtract:
			a = g.rng.IntN(100)
			b = g.rng.IntN(a + 1)
		case OpMultiply:
			a = g.rng.IntN(10)
			b = g.rng.IntN(11)
		case OpDivide:
			b = g.rng.IntN(9) + 1
			a = b * g.rng.IntN(11)
		}

		answer := Evaluate(op, a, b)
		if answer < 0 || answer > AnswerMax {
			// Each range already satisfies the bound; the guard keeps the
			// invariant local to this function.
			continue
		}

		return Question{
			ID:            newQuestionID(),
			Type:          TypeMath,
			CorrectAnswer: float64(answer),
			Content: Content{
				Operand1:   a,
				Operand2:   b,
				Operator:   op,
				Expression: fmt.Sprintf("%d %s %d", a, op, b),
			},
		}
	}
}

// GenerateN produces a pool of n questions.
func (g *Generator) GenerateN(n int) []Question {
	pool := make([]Question, n)
	for i := range pool {
		pool[i] = g.Generate()
	}
	return pool
}

// Evaluate computes op applied to the operands. Division is integer
// division; callers must guarantee b divides a when op is OpDivide.
func Evaluate(op Operator, a, b int) int {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	}
	return 0
}

// newQuestionID returns a time-prefixed unique id, e.g. "q-1718123456789-1a2b3c4d".
func newQuestionID() string {
	return fmt.Sprintf("q-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
