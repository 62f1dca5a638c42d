package spacedrep

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizme/internal/question"
)

// Box is one tier of the schedule: an unordered set of questions sharing a
// minimum re-exposure delay. A Box is only mutated by its Scheduler.
type Box struct {
	name     string
	interval time.Duration

	// members keeps insertion order, which breaks ties in NextDue.
	members []*question.Question
	ids     map[uuid.UUID]struct{}
}

func newBox(def TierDef) *Box {
	return &Box{
		name:     def.Name,
		interval: def.Interval,
		ids:      make(map[uuid.UUID]struct{}),
	}
}

// Name returns the tier label.
func (b *Box) Name() string { return b.name }

// Interval returns the minimum time between exposures in this tier.
func (b *Box) Interval() time.Duration { return b.interval }

// Len returns the number of questions in the box.
func (b *Box) Len() int { return len(b.members) }

// Contains reports whether a question with id is in the box.
func (b *Box) Contains(id uuid.UUID) bool {
	_, ok := b.ids[id]
	return ok
}

// Questions returns the members in insertion order.
func (b *Box) Questions() []*question.Question {
	out := make([]*question.Question, len(b.members))
	copy(out, b.members)
	return out
}

// IsDue returns true if q may be served from this box at now: either it
// was never asked, or at least the box interval has elapsed since it was.
func (b *Box) IsDue(q *question.Question, now time.Time) bool {
	last, asked := q.LastAsked()
	if !asked {
		return true
	}
	if b.interval == Forever {
		return false
	}
	return now.Sub(last) >= b.interval
}

// NextDue returns the most eligible member at now, or nil if none is due.
// Members are considered least recently asked first, never-asked before
// all others, with insertion order breaking ties.
func (b *Box) NextDue(now time.Time) *question.Question {
	ordered := b.Questions()
	sort.SliceStable(ordered, func(i, j int) bool {
		li, _ := ordered[i].LastAsked()
		lj, _ := ordered[j].LastAsked()
		return li.Before(lj)
	})

	for _, q := range ordered {
		if b.IsDue(q, now) {
			return q
		}
	}
	return nil
}

// add inserts q unless a question with the same id is already present.
func (b *Box) add(q *question.Question) {
	if b.Contains(q.ID()) {
		return
	}
	b.members = append(b.members, q)
	b.ids[q.ID()] = struct{}{}
}

// remove deletes q if present.
func (b *Box) remove(q *question.Question) {
	if !b.Contains(q.ID()) {
		return
	}
	for i, m := range b.members {
		if m.ID() == q.ID() {
			b.members = append(b.members[:i], b.members[i+1:]...)
			break
		}
	}
	delete(b.ids, q.ID())
}
