package store

import (
	"context"
	"encoding/json"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizme/internal/spacedrep"
)

func (r *eventRepo) AppendTierSnapshot(ctx context.Context, sessionID uuid.UUID, counts []spacedrep.TierCount) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("marshal tier counts: %w", err)
	}

	_, err = r.appendEvent(ctx, "tier_snapshots",
		[]string{"session_id", "counts"}, sessionID.String(), string(data))
	if err != nil {
		return fmt.Errorf("save tier snapshot: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestTierSnapshot(ctx context.Context, sessionID uuid.UUID) (*TierSnapshot, error) {
	var (
		snap TierSnapshot
		ts   int64
		raw  string
	)
	query, args := builder().
		Select("sequence", "timestamp", "counts").
		From(entsql.Table("tier_snapshots")).
		Where(entsql.EQ("session_id", sessionID.String())).
		OrderBy(entsql.Desc("sequence")).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query latest tier snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query latest tier snapshot: %w", err)
		}
		return nil, nil
	}
	if err := rows.Scan(&snap.Sequence, &ts, &raw); err != nil {
		return nil, fmt.Errorf("scan tier snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &snap.Counts); err != nil {
		return nil, fmt.Errorf("unmarshal tier counts: %w", err)
	}
	snap.SessionID = sessionID
	snap.Timestamp = fromMillis(ts)
	return &snap, nil
}

// TierRecorder appends a tier snapshot for every scheduler move.
// Write failures are logged; they never interrupt the session.
type TierRecorder struct {
	repo      EventRepo
	sessionID uuid.UUID
	log       logrus.FieldLogger
}

// NewTierRecorder creates a spacedrep.Observer that records into repo.
func NewTierRecorder(repo EventRepo, sessionID uuid.UUID, log logrus.FieldLogger) *TierRecorder {
	return &TierRecorder{repo: repo, sessionID: sessionID, log: log}
}

func (r *TierRecorder) ObserveTiers(counts []spacedrep.TierCount) {
	if err := r.repo.AppendTierSnapshot(context.Background(), r.sessionID, counts); err != nil {
		r.log.WithError(err).Warn("failed to record tier snapshot")
	}
}
