package spacedrep

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizme/internal/question"
)

// Transition records a question's move between tiers.
type Transition struct {
	QuestionID uuid.UUID
	From       int
	To         int
}

// Promoted reports whether the move advanced the question.
func (t Transition) Promoted() bool { return t.To > t.From }

// Scheduler manages Leitner-box scheduling across the fixed tiers. It owns
// both the boxes and the id -> tier index map; the two are only ever
// updated together through AddNew and Move.
type Scheduler struct {
	boxes     [NumTiers]*Box
	location  map[uuid.UUID]int
	observers []Observer
}

// NewScheduler creates a scheduler with empty tiers. Observers are notified
// with the tier populations after every Move.
func NewScheduler(observers ...Observer) *Scheduler {
	s := &Scheduler{
		location:  make(map[uuid.UUID]int),
		observers: observers,
	}
	for i, def := range TierDefs {
		s.boxes[i] = newBox(def)
	}
	return s
}

// AddObserver registers an additional observer.
func (s *Scheduler) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// AddNew places a new question in the Unasked tier.
func (s *Scheduler) AddNew(q *question.Question) error {
	if _, ok := s.location[q.ID()]; ok {
		return fmt.Errorf("add %s: %w", q.ID(), ErrAlreadyTracked)
	}
	s.boxes[TierUnasked].add(q)
	s.location[q.ID()] = TierUnasked
	return nil
}

// Move reschedules q after an answer: one tier up on success (capped at
// Known), back to Missed on failure.
func (s *Scheduler) Move(q *question.Question, correct bool) (Transition, error) {
	current, ok := s.location[q.ID()]
	if !ok {
		return Transition{}, fmt.Errorf("move %s: %w", q.ID(), ErrNotFound)
	}

	next := nextTier(current, correct)
	s.boxes[current].remove(q)
	s.boxes[next].add(q)
	s.location[q.ID()] = next

	s.notify()
	return Transition{QuestionID: q.ID(), From: current, To: next}, nil
}

// NextQuestion returns the next question to serve at now, or nil when no
// question in tiers Missed through Twice is due. Tiers are strictly
// prioritised by index; Known questions are never served.
func (s *Scheduler) NextQuestion(now time.Time) *question.Question {
	for _, b := range s.boxes[:TierKnown] {
		if q := b.NextDue(now); q != nil {
			return q
		}
	}
	return nil
}

// Location returns the tier index of the question with id.
func (s *Scheduler) Location(id uuid.UUID) (int, bool) {
	idx, ok := s.location[id]
	return idx, ok
}

// Box returns the tier at index i. It panics if i is out of range.
func (s *Scheduler) Box(i int) *Box {
	return s.boxes[i]
}

// Len returns the number of tracked questions.
func (s *Scheduler) Len() int {
	return len(s.location)
}

// Pending returns the number of questions not yet Known.
func (s *Scheduler) Pending() int {
	n := 0
	for _, b := range s.boxes[:TierKnown] {
		n += b.Len()
	}
	return n
}

// Counts returns each tier's name and population, in tier order.
func (s *Scheduler) Counts() []TierCount {
	counts := make([]TierCount, NumTiers)
	for i, b := range s.boxes {
		counts[i] = TierCount{Index: i, Name: b.Name(), Size: b.Len()}
	}
	return counts
}

func (s *Scheduler) notify() {
	if len(s.observers) == 0 {
		return
	}
	counts := s.Counts()
	for _, o := range s.observers {
		o.ObserveTiers(counts)
	}
}
