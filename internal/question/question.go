package question

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Kind tags the closed set of question variants.
type Kind string

const (
	KindShortAnswer Kind = "shortanswer" // free-text answer compared after normalization
	KindTrueFalse   Kind = "truefalse"   // boolean answer with optional explanation
)

// trueFalseHint is appended to true/false prompts when presented.
const trueFalseHint = " (True/False)"

// Question is a single quiz item. Two questions are the same question only
// if their IDs match; prompt and answer text play no part in identity.
type Question struct {
	id     uuid.UUID
	kind   Kind
	prompt string

	// answer holds the expected text for KindShortAnswer.
	answer        string
	caseSensitive bool

	// truth holds the expected value for KindTrueFalse.
	truth       bool
	explanation string

	// lastAsked is zero until the question is first presented.
	lastAsked time.Time
}

// NewShortAnswer creates a short-answer question.
func NewShortAnswer(prompt, answer string, caseSensitive bool) *Question {
	return &Question{
		id:            uuid.New(),
		kind:          KindShortAnswer,
		prompt:        prompt,
		answer:        answer,
		caseSensitive: caseSensitive,
	}
}

// NewTrueFalse creates a true/false question. An empty explanation makes
// IncorrectFeedback fall back to a generic message.
func NewTrueFalse(prompt string, answer bool, explanation string) *Question {
	return &Question{
		id:          uuid.New(),
		kind:        KindTrueFalse,
		prompt:      prompt,
		truth:       answer,
		explanation: explanation,
	}
}

// ID returns the stable identifier assigned at construction.
func (q *Question) ID() uuid.UUID { return q.id }

// Kind returns the question variant.
func (q *Question) Kind() Kind { return q.kind }

// Prompt returns the raw prompt text, without any presentation hint.
func (q *Question) Prompt() string { return q.prompt }

// CaseSensitive reports whether a short answer is compared with case.
func (q *Question) CaseSensitive() bool { return q.caseSensitive }

// Explanation returns the true/false explanation, if any.
func (q *Question) Explanation() string { return q.explanation }

// ExpectedAnswer returns the expected answer in display form.
func (q *Question) ExpectedAnswer() string {
	if q.kind == KindTrueFalse {
		return strconv.FormatBool(q.truth)
	}
	return q.answer
}

// LastAsked returns when the question was last presented. The boolean is
// false if it has never been presented.
func (q *Question) LastAsked() (time.Time, bool) {
	return q.lastAsked, !q.lastAsked.IsZero()
}

// Asked reports whether the question has been presented at least once.
func (q *Question) Asked() bool {
	return !q.lastAsked.IsZero()
}

// Present records now as the last exposure and returns the text to show.
// The exposure time never moves backwards.
func (q *Question) Present(now time.Time) string {
	if now.After(q.lastAsked) {
		q.lastAsked = now
	}
	if q.kind == KindTrueFalse {
		return q.prompt + trueFalseHint
	}
	return q.prompt
}

// CheckAnswer reports whether input is a correct answer.
// Short answers accept any input. True/false questions return an
// *InputError (wrapping ErrInvalidAnswer) for anything that is not a
// recognised true/false token.
func (q *Question) CheckAnswer(input string) (bool, error) {
	switch q.kind {
	case KindTrueFalse:
		got, err := parseTrueFalse(input)
		if err != nil {
			return false, err
		}
		return got == q.truth, nil
	default:
		return normalizeShortAnswer(input, q.caseSensitive) == normalizeShortAnswer(q.answer, q.caseSensitive), nil
	}
}

// IncorrectFeedback returns the message shown after a wrong answer.
func (q *Question) IncorrectFeedback() string {
	if q.kind == KindTrueFalse {
		if q.explanation == "" {
			return "Incorrect."
		}
		return "Incorrect. " + q.explanation
	}
	return "Incorrect. The correct answer is: " + q.answer
}

// Equal reports whether q and other are the same question.
func (q *Question) Equal(other *Question) bool {
	if q == nil || other == nil {
		return q == other
	}
	return q.id == other.id
}

func (q *Question) String() string {
	return fmt.Sprintf("Question(id=%s, kind=%s, question=%s)", q.id, q.kind, q.prompt)
}
