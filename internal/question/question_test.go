package question

import (
	"errors"
	"testing"
	"time"
)

func TestCheckAnswer_ShortAnswer(t *testing.T) {
	q := NewShortAnswer("Capital of France?", "Paris", false)

	tests := []struct {
		input string
		want  bool
	}{
		{"Paris", true},
		{"paris", true},
		{"  PARIS  ", true},
		{"Paris!", true},
		{"P.a.r.i.s", true},
		{"Lyon", false},
		{"", false},
		{"Par is", false},
	}

	for _, tc := range tests {
		got, err := q.CheckAnswer(tc.input)
		if err != nil {
			t.Fatalf("CheckAnswer(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, Paris) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_ShortAnswer_CaseSensitive(t *testing.T) {
	q := NewShortAnswer("Chemical symbol for sodium?", "Na", true)

	tests := []struct {
		input string
		want  bool
	}{
		{"Na", true},
		{" Na. ", true},
		{"na", false},
		{"NA", false},
	}

	for _, tc := range tests {
		got, _ := q.CheckAnswer(tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, Na/case-sensitive) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_ShortAnswer_Unicode(t *testing.T) {
	q := NewShortAnswer("Coffee in French?", "Café", false)

	tests := []struct {
		input string
		want  bool
	}{
		{"café", true},
		{"cafe\u0301", true}, // combining acute accent
		{"CAFÉ!", true},
		{"cafe", false},
	}

	for _, tc := range tests {
		got, _ := q.CheckAnswer(tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, Café) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_ShortAnswer_ExpectedIsAlwaysAccepted(t *testing.T) {
	answers := []string{"Paris", "4", "O'Neill", "snake_case", "Hello, World!"}
	for _, a := range answers {
		q := NewShortAnswer("q", a, false)
		variants := []string{a, " " + a + " ", "(" + a + ")"}
		for _, v := range variants {
			ok, err := q.CheckAnswer(v)
			if err != nil || !ok {
				t.Errorf("CheckAnswer(%q) for expected %q = %v, %v; want true", v, a, ok, err)
			}
		}
	}
}

func TestCheckAnswer_TrueFalse(t *testing.T) {
	q := NewTrueFalse("The Earth is flat", false, "The Earth is approximately spherical")

	tests := []struct {
		input string
		want  bool
	}{
		{"false", true},
		{"F", true},
		{" FALSE ", true},
		{"true", false},
		{"t", false},
	}

	for _, tc := range tests {
		got, err := q.CheckAnswer(tc.input)
		if err != nil {
			t.Fatalf("CheckAnswer(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, false) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_TrueFalse_InvalidInput(t *testing.T) {
	q := NewTrueFalse("Water is wet", true, "")
	asked := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	q.Present(asked)

	for _, input := range []string{"yes", "no", "", "1", "tru", "q"} {
		_, err := q.CheckAnswer(input)
		if err == nil {
			t.Fatalf("CheckAnswer(%q): expected error", input)
		}
		if !errors.Is(err, ErrInvalidAnswer) {
			t.Errorf("CheckAnswer(%q): error %v does not wrap ErrInvalidAnswer", input, err)
		}
		if err.Error() != "answer must be true/false" {
			t.Errorf("CheckAnswer(%q): message = %q", input, err.Error())
		}
	}

	last, ok := q.LastAsked()
	if !ok || !last.Equal(asked) {
		t.Errorf("LastAsked = %v, %v; want %v unchanged", last, ok, asked)
	}
}

func TestPresent(t *testing.T) {
	sa := NewShortAnswer("Capital of France?", "Paris", false)
	tf := NewTrueFalse("The sky is green", false, "")

	if sa.Asked() {
		t.Fatal("new question should not be asked")
	}
	if _, ok := sa.LastAsked(); ok {
		t.Fatal("LastAsked should report never asked")
	}

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := sa.Present(now); got != "Capital of France?" {
		t.Errorf("short answer Present = %q", got)
	}
	if got := tf.Present(now); got != "The sky is green (True/False)" {
		t.Errorf("true/false Present = %q", got)
	}
	if tf.Prompt() != "The sky is green" {
		t.Errorf("Prompt changed by Present: %q", tf.Prompt())
	}

	last, ok := sa.LastAsked()
	if !ok || !last.Equal(now) {
		t.Errorf("LastAsked = %v, want %v", last, now)
	}
}

func TestPresent_NeverMovesBackwards(t *testing.T) {
	q := NewShortAnswer("q", "a", false)
	later := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	q.Present(later)
	q.Present(later.Add(-time.Minute))

	last, _ := q.LastAsked()
	if !last.Equal(later) {
		t.Errorf("LastAsked = %v, want %v", last, later)
	}

	q.Present(later.Add(time.Minute))
	last, _ = q.LastAsked()
	if !last.Equal(later.Add(time.Minute)) {
		t.Errorf("LastAsked = %v, want %v", last, later.Add(time.Minute))
	}
}

func TestIncorrectFeedback(t *testing.T) {
	tests := []struct {
		name string
		q    *Question
		want string
	}{
		{"short answer", NewShortAnswer("Capital of France?", "Paris", false), "Incorrect. The correct answer is: Paris"},
		{"true/false with explanation", NewTrueFalse("Flat?", false, "It is round."), "Incorrect. It is round."},
		{"true/false without explanation", NewTrueFalse("Flat?", false, ""), "Incorrect."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.IncorrectFeedback(); got != tt.want {
				t.Errorf("IncorrectFeedback() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual_ByIDOnly(t *testing.T) {
	a := NewShortAnswer("Same?", "yes", false)
	b := NewShortAnswer("Same?", "yes", false)

	if a.Equal(b) {
		t.Error("questions with identical content but different ids must differ")
	}
	if !a.Equal(a) {
		t.Error("question must equal itself")
	}
	if a.ID() == b.ID() {
		t.Error("ids must be unique")
	}
	var nilQ *Question
	if a.Equal(nilQ) {
		t.Error("question must not equal nil")
	}
}

func TestExpectedAnswer(t *testing.T) {
	if got := NewTrueFalse("q", true, "").ExpectedAnswer(); got != "true" {
		t.Errorf("ExpectedAnswer = %q, want true", got)
	}
	if got := NewShortAnswer("q", "Paris", false).ExpectedAnswer(); got != "Paris" {
		t.Errorf("ExpectedAnswer = %q, want Paris", got)
	}
}
