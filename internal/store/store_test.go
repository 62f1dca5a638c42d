package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizme/internal/question"
	"github.com/abhisek/quizme/internal/spacedrep"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"session_events", "answer_events", "tier_snapshots", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestOpen_WrapsDriver(t *testing.T) {
	s := openTestStore(t)
	assert.Equal(t, dialect.SQLite, s.drv.Dialect())

	var rows entsql.Rows
	query, args := builder().Select("next_val").From(entsql.Table("global_sequence")).Where(entsql.EQ("id", 1)).Query()
	require.NoError(t, s.drv.Query(context.Background(), query, args, &rows))
	defer rows.Close()

	next, err := entsql.ScanInt64(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)
}

func TestNextSequenceQuery(t *testing.T) {
	query, args := builder().Update("global_sequence").
		Add("next_val", 1).
		Where(entsql.EQ("id", 1)).
		Returning("next_val").
		Query()
	assert.Contains(t, query, "RETURNING")
	assert.Len(t, args, 2)
}

func TestOpenTwiceOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendSessionEvent(context.Background(), SessionEventData{
		SessionID: uuid.New(), Action: ActionStart, Learner: "ada",
	}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	var count int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM session_events").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestAppendEvent_Sequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sessionID := uuid.New().String()

	for i := 0; i < 3; i++ {
		seq, err := s.events.appendEvent(ctx, "tier_snapshots",
			[]string{"session_id", "counts"}, sessionID, "[]")
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	_, err := s.events.appendEvent(ctx, "no_such_table", []string{"session_id"}, sessionID)
	require.Error(t, err)

	seq, err := s.events.appendEvent(ctx, "tier_snapshots",
		[]string{"session_id", "counts"}, sessionID, "[]")
	require.NoError(t, err)
	assert.Equal(t, int64(4), seq, "failed insert must not consume a sequence number")
}

func TestSessionAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	sessionID := uuid.New()
	other := uuid.New()
	q1 := question.NewShortAnswer("Capital of France?", "Paris", false)
	q2 := question.NewTrueFalse("Water boils at 50C", false, "It boils at 100C.")

	require.NoError(t, repo.AppendAnswerEvent(ctx, answerFor(sessionID, q1, "paris", true, 1, 2)))
	require.NoError(t, repo.AppendAnswerEvent(ctx, answerFor(other, q1, "rome", false, 1, 0)))
	require.NoError(t, repo.AppendAnswerEvent(ctx, answerFor(sessionID, q2, "t", false, 1, 0)))

	got, err := repo.SessionAnswers(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, q1.ID(), got[0].QuestionID)
	assert.Equal(t, "shortanswer", got[0].Kind)
	assert.Equal(t, "Paris", got[0].ExpectedAnswer)
	assert.True(t, got[0].Correct)
	assert.Equal(t, 2, got[0].ToTier)

	assert.Equal(t, q2.ID(), got[1].QuestionID)
	assert.False(t, got[1].Correct)
	assert.Equal(t, "false", got[1].ExpectedAnswer)
	assert.Equal(t, sessionID, got[1].SessionID)

	assert.Less(t, got[0].Sequence, got[1].Sequence)
}

func TestSessionAnswers_Empty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.EventRepo().SessionAnswers(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	sessionID := uuid.New()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: sessionID, Action: ActionStart, Learner: "ada",
	}))
	q := question.NewShortAnswer("2+2", "4", false)
	require.NoError(t, repo.AppendAnswerEvent(ctx, answerFor(sessionID, q, "4", true, 1, 2)))
	require.NoError(t, repo.AppendTierSnapshot(ctx, sessionID, spacedrep.NewScheduler().Counts()))

	answers, err := repo.SessionAnswers(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, int64(2), answers[0].Sequence)

	snap, err := repo.LatestTierSnapshot(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, int64(3), snap.Sequence)
}

func TestLatestTierSnapshot(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	sessionID := uuid.New()

	snap, err := repo.LatestTierSnapshot(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, snap, "expected nil snapshot when none exist")

	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.events.now = func() time.Time { return fixed }

	sched := spacedrep.NewScheduler()
	q := question.NewShortAnswer("q", "a", false)
	require.NoError(t, sched.AddNew(q))
	require.NoError(t, repo.AppendTierSnapshot(ctx, sessionID, sched.Counts()))
	_, err = sched.Move(q, true)
	require.NoError(t, err)
	require.NoError(t, repo.AppendTierSnapshot(ctx, sessionID, sched.Counts()))

	snap, err = repo.LatestTierSnapshot(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, sched.Counts(), snap.Counts)
	assert.Equal(t, fixed, snap.Timestamp)
	assert.Equal(t, sessionID, snap.SessionID)
}

func TestTierRecorder(t *testing.T) {
	s := openTestStore(t)
	logger, hook := logtest.NewNullLogger()
	sessionID := uuid.New()

	sched := spacedrep.NewScheduler(NewTierRecorder(s.EventRepo(), sessionID, logger))
	q := question.NewTrueFalse("sky is blue", true, "")
	require.NoError(t, sched.AddNew(q))
	_, err := sched.Move(q, false)
	require.NoError(t, err)

	snap, err := s.EventRepo().LatestTierSnapshot(context.Background(), sessionID)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 1, snap.Counts[spacedrep.TierMissed].Size)
	assert.Empty(t, hook.AllEntries())
}

func TestTierRecorder_LogsFailure(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	repo := s.EventRepo()
	require.NoError(t, s.Close())

	logger, hook := logtest.NewNullLogger()
	NewTierRecorder(repo, uuid.New(), logger).ObserveTiers(spacedrep.NewScheduler().Counts())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "failed to record tier snapshot", hook.LastEntry().Message)
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("xdg data home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "quizme", "history.db"), got)
		assert.DirExists(t, filepath.Join(dir, "quizme"))
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", home)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "quizme", "history.db"), got)
	})

	t.Run("legacy env var is ignored", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_DATA_HOME", dir)
		t.Setenv("QUIZME_DB", filepath.Join(t.TempDir(), "other.db"))
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "quizme", "history.db"), got)
	})
}

func answerFor(sessionID uuid.UUID, q *question.Question, input string, correct bool, from, to int) AnswerEventData {
	return AnswerEventData{
		SessionID:      sessionID,
		QuestionID:     q.ID(),
		Kind:           string(q.Kind()),
		Prompt:         q.Prompt(),
		ExpectedAnswer: q.ExpectedAnswer(),
		LearnerAnswer:  input,
		Correct:        correct,
		FromTier:       from,
		ToTier:         to,
	}
}
