package provider

import (
	"fmt"
	"testing"

	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/session"
)

func pool(n int) []problemgen.Question {
	qs := make([]problemgen.Question, n)
	for i := range qs {
		qs[i] = problemgen.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Type:          problemgen.TypeMath,
			CorrectAnswer: float64(i),
			Content: problemgen.Content{
				Operand1:   i,
				Operand2:   0,
				Operator:   problemgen.OpAdd,
				Expression: fmt.Sprintf("%d + 0", i),
			},
		}
	}
	return qs
}

func TestSequential_Order(t *testing.T) {
	p := NewSequential()
	p.Initialize(pool(3))

	for i := 1; i <= 3; i++ {
		if !p.HasMore() {
			t.Fatalf("HasMore = false before question %d", i)
		}
		q := p.Next()
		if q == nil {
			t.Fatalf("Next = nil for question %d", i)
		}
		want := fmt.Sprintf("q%d", i)
		if q.ID != want {
			t.Errorf("Next().ID = %q, want %q", q.ID, want)
		}
	}

	if p.HasMore() {
		t.Error("HasMore = true after exhaustion")
	}
	if q := p.Next(); q != nil {
		t.Errorf("Next after exhaustion = %v, want nil", q)
	}
}

func TestSequential_EmptyPool(t *testing.T) {
	p := NewSequential()
	p.Initialize(nil)

	if p.HasMore() {
		t.Error("HasMore = true for empty pool")
	}
	if p.Next() != nil {
		t.Error("Next != nil for empty pool")
	}
}

func TestRandom_NoImmediateRepeat(t *testing.T) {
	p := NewRandomWithSeed(11)
	p.Initialize(pool(4))

	last := ""
	for i := 0; i < 200; i++ {
		q := p.Next()
		if q == nil {
			t.Fatal("Next = nil on non-empty pool")
		}
		if q.ID == last {
			t.Fatalf("immediate repeat of %q at draw %d", q.ID, i)
		}
		last = q.ID
	}
}

func TestRandom_SingleQuestionRepeats(t *testing.T) {
	p := NewRandomWithSeed(12)
	p.Initialize(pool(1))

	for i := 0; i < 10; i++ {
		q := p.Next()
		if q == nil || q.ID != "q1" {
			t.Fatalf("Next = %v, want q1", q)
		}
	}
	if !p.HasMore() {
		t.Error("HasMore = false for non-empty pool")
	}
}

func TestRandom_EmptyPoolConsistency(t *testing.T) {
	p := NewRandomWithSeed(13)
	p.Initialize(nil)

	if p.HasMore() {
		t.Error("HasMore = true for empty pool")
	}
	if p.Next() != nil {
		t.Error("Next != nil for empty pool")
	}
}

func TestAdaptive_PrefersLowMastery(t *testing.T) {
	p := NewAdaptive()
	p.Initialize(pool(3))

	p.ObserveProgress(map[string]*session.ProgressEntry{
		"q1": {QuestionID: "q1", Attempts: 5, CorrectCount: 5, Mastery: 1.0},
		"q2": {QuestionID: "q2", Attempts: 5, CorrectCount: 1, IncorrectCount: 4, Mastery: 0.2},
		"q3": {QuestionID: "q3", Attempts: 5, CorrectCount: 4, IncorrectCount: 1, Streak: 4, Mastery: 0.9},
	})

	counts := map[string]int{}
	for i := 0; i < 30; i++ {
		counts[p.Next().ID]++
	}

	if counts["q2"] <= counts["q1"] {
		t.Errorf("low-mastery q2 served %d times, mastered q1 %d times", counts["q2"], counts["q1"])
	}
	if counts["q2"] < counts["q3"] {
		t.Errorf("low-mastery q2 served %d times, near-mastered q3 %d times", counts["q2"], counts["q3"])
	}
	if counts["q1"] > 3 {
		t.Errorf("mastered q1 served %d times, want rare", counts["q1"])
	}
}

func TestAdaptive_UnseenBeforeMastered(t *testing.T) {
	p := NewAdaptive()
	p.Initialize(pool(2))

	p.ObserveProgress(map[string]*session.ProgressEntry{
		"q1": {QuestionID: "q1", Attempts: 3, CorrectCount: 3, Mastery: 1.0},
	})

	// q2 has never been seen and must win over the mastered q1.
	if q := p.Next(); q.ID != "q2" {
		t.Errorf("Next().ID = %q, want q2", q.ID)
	}
}

func TestAdaptive_TieBreaksLeastRecentlyServed(t *testing.T) {
	p := NewAdaptive()
	p.Initialize(pool(3))

	// No progress at all: equal weights, rotation by staleness.
	seen := map[string]int{}
	for i := 0; i < 9; i++ {
		seen[p.Next().ID]++
	}
	for id, n := range seen {
		if n != 3 {
			t.Errorf("%s served %d times, want 3 (round-robin under equal weights)", id, n)
		}
	}
}

func TestAdaptive_NoImmediateRepeat(t *testing.T) {
	p := NewAdaptive()
	p.Initialize(pool(2))

	last := ""
	for i := 0; i < 20; i++ {
		q := p.Next()
		if q.ID == last {
			t.Fatalf("immediate repeat of %q", q.ID)
		}
		last = q.ID
	}
}

func TestAdaptive_EmptyPool(t *testing.T) {
	p := NewAdaptive()
	p.Initialize(nil)

	if p.HasMore() {
		t.Error("HasMore = true for empty pool")
	}
	if p.Next() != nil {
		t.Error("Next != nil for empty pool")
	}
}
