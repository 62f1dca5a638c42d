package spacedrep

import (
	"math"
	"time"
)

// Tier indexes, in scheduling priority order.
const (
	TierMissed  = 0 // most recently failed
	TierUnasked = 1 // never presented
	TierOnce    = 2 // one success since the last miss
	TierTwice   = 3 // two consecutive successes
	TierKnown   = 4 // mastered; never served again unless demoted
)

// NumTiers is the fixed number of tiers.
const NumTiers = 5

// Forever is the priority interval of the Known tier. Only never-asked
// questions are ever due in a tier with this interval.
const Forever = time.Duration(math.MaxInt64)

// TierDef describes one tier of the schedule.
type TierDef struct {
	Name     string
	Interval time.Duration
}

// TierDefs defines the tier names and minimum dwell times, by tier index.
var TierDefs = [NumTiers]TierDef{
	TierMissed:  {Name: "Missed", Interval: 60 * time.Second},
	TierUnasked: {Name: "Unasked", Interval: 0},
	TierOnce:    {Name: "Correctly Answered Once", Interval: 180 * time.Second},
	TierTwice:   {Name: "Correctly Answered Twice", Interval: 360 * time.Second},
	TierKnown:   {Name: "Known", Interval: Forever},
}

// nextTier returns the tier a question moves to from tier current.
// Success advances one tier, capped at Known; failure always resets to Missed.
func nextTier(current int, correct bool) int {
	if !correct {
		return TierMissed
	}
	return min(current+1, TierKnown)
}
