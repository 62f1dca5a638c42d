package spacedrep

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCounts(t *testing.T) {
	s := NewScheduler()
	newTracked(t, s, "A", "B")

	got := FormatCounts(s.Counts())
	want := "Missed: 0 questions, Unasked: 2 questions, Correctly Answered Once: 0 questions, " +
		"Correctly Answered Twice: 0 questions, Known: 0 questions"
	assert.Equal(t, want, got)
}

func TestLogObserver(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := NewScheduler(NewLogObserver(logger))
	qs := newTracked(t, s, "A", "B")

	_, err := s.Move(qs[0], true)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Contains(t, entry.Message, "Unasked: 1 questions")
	assert.Contains(t, entry.Message, "Correctly Answered Once: 1 questions")
	assert.Equal(t, 2, entry.Data["pending"])
}

func TestPending_ExcludesKnown(t *testing.T) {
	counts := []TierCount{
		{Index: TierMissed, Size: 1},
		{Index: TierUnasked, Size: 2},
		{Index: TierKnown, Size: 5},
	}
	assert.Equal(t, 3, pending(counts))
}
