package spacedrep

import (
	"testing"
	"time"

	"github.com/abhisek/quizme/internal/question"
)

var base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestBox_AddIsIdempotent(t *testing.T) {
	b := newBox(TierDefs[TierUnasked])
	q := question.NewShortAnswer("q", "a", false)

	b.add(q)
	b.add(q)

	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
	if !b.Contains(q.ID()) {
		t.Error("expected box to contain question")
	}
}

func TestBox_RemoveIsIdempotent(t *testing.T) {
	b := newBox(TierDefs[TierUnasked])
	q := question.NewShortAnswer("q", "a", false)
	other := question.NewShortAnswer("q", "a", false)

	b.add(q)
	b.remove(other)
	if b.Len() != 1 {
		t.Fatalf("removing absent question changed Len() to %d", b.Len())
	}

	b.remove(q)
	b.remove(q)
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.Contains(q.ID()) {
		t.Error("expected question removed")
	}
}

func TestBox_SameContentDifferentIDs(t *testing.T) {
	b := newBox(TierDefs[TierUnasked])
	b.add(question.NewShortAnswer("same", "same", false))
	b.add(question.NewShortAnswer("same", "same", false))

	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestNextDue_Empty(t *testing.T) {
	b := newBox(TierDefs[TierMissed])
	if q := b.NextDue(base); q != nil {
		t.Errorf("expected nil from empty box, got %v", q)
	}
}

func TestNextDue_UnaskedFirst(t *testing.T) {
	b := newBox(TierDefs[TierUnasked])
	asked := question.NewShortAnswer("asked", "a", false)
	asked.Present(base.Add(-time.Hour))
	fresh := question.NewShortAnswer("fresh", "a", false)

	b.add(asked)
	b.add(fresh)

	if got := b.NextDue(base); !got.Equal(fresh) {
		t.Errorf("NextDue() = %v, want never-asked question", got)
	}
}

func TestNextDue_OldestFirst(t *testing.T) {
	b := newBox(TierDefs[TierMissed])
	recent := question.NewShortAnswer("recent", "a", false)
	recent.Present(base.Add(-2 * time.Minute))
	oldest := question.NewShortAnswer("oldest", "a", false)
	oldest.Present(base.Add(-10 * time.Minute))

	b.add(recent)
	b.add(oldest)

	if got := b.NextDue(base); !got.Equal(oldest) {
		t.Errorf("NextDue() = %v, want oldest question", got)
	}
}

func TestNextDue_TieBreakIsInsertionOrder(t *testing.T) {
	b := newBox(TierDefs[TierUnasked])
	first := question.NewShortAnswer("first", "a", false)
	second := question.NewShortAnswer("second", "a", false)
	third := question.NewShortAnswer("third", "a", false)

	b.add(first)
	b.add(second)
	b.add(third)

	for i := 0; i < 3; i++ {
		if got := b.NextDue(base); !got.Equal(first) {
			t.Fatalf("NextDue() = %v, want first inserted", got)
		}
	}

	b.remove(first)
	if got := b.NextDue(base); !got.Equal(second) {
		t.Errorf("NextDue() = %v, want second inserted", got)
	}
}

func TestNextDue_RespectsInterval(t *testing.T) {
	b := newBox(TierDefs[TierMissed])
	q := question.NewShortAnswer("q", "a", false)
	q.Present(base)
	b.add(q)

	if got := b.NextDue(base.Add(30 * time.Second)); got != nil {
		t.Errorf("NextDue after 30s = %v, want nil", got)
	}
	if got := b.NextDue(base.Add(60 * time.Second)); !got.Equal(q) {
		t.Errorf("NextDue after exactly 60s = %v, want question", got)
	}
	if got := b.NextDue(base.Add(61 * time.Second)); !got.Equal(q) {
		t.Errorf("NextDue after 61s = %v, want question", got)
	}
}

func TestNextDue_SkipsIneligibleOlderForNone(t *testing.T) {
	b := newBox(TierDefs[TierOnce])
	a := question.NewShortAnswer("a", "a", false)
	a.Present(base.Add(-100 * time.Second))
	c := question.NewShortAnswer("c", "c", false)
	c.Present(base.Add(-50 * time.Second))
	b.add(a)
	b.add(c)

	if got := b.NextDue(base); got != nil {
		t.Errorf("NextDue() = %v, want nil when no member waited 180s", got)
	}
}

func TestNextDue_KnownOnlyAdmitsNeverAsked(t *testing.T) {
	b := newBox(TierDefs[TierKnown])
	q := question.NewShortAnswer("q", "a", false)
	q.Present(base)
	b.add(q)

	if got := b.NextDue(base.Add(24 * 365 * time.Hour)); got != nil {
		t.Errorf("NextDue() = %v, want nil for Known tier", got)
	}
}

func TestBox_QuestionsIsCopy(t *testing.T) {
	b := newBox(TierDefs[TierUnasked])
	b.add(question.NewShortAnswer("q", "a", false))

	qs := b.Questions()
	qs[0] = nil
	if b.Questions()[0] == nil {
		t.Error("Questions() must return a copy")
	}
}
