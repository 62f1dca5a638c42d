package spacedrep

import (
	"testing"
	"time"
)

func TestTierDefs_Values(t *testing.T) {
	expected := []struct {
		name     string
		interval time.Duration
	}{
		{"Missed", 60 * time.Second},
		{"Unasked", 0},
		{"Correctly Answered Once", 180 * time.Second},
		{"Correctly Answered Twice", 360 * time.Second},
		{"Known", Forever},
	}
	if len(TierDefs) != len(expected) {
		t.Fatalf("expected %d tiers, got %d", len(expected), len(TierDefs))
	}
	for i, want := range expected {
		if TierDefs[i].Name != want.name {
			t.Errorf("TierDefs[%d].Name = %q, want %q", i, TierDefs[i].Name, want.name)
		}
		if TierDefs[i].Interval != want.interval {
			t.Errorf("TierDefs[%d].Interval = %v, want %v", i, TierDefs[i].Interval, want.interval)
		}
	}
}

func TestConstants(t *testing.T) {
	if NumTiers != 5 {
		t.Errorf("NumTiers = %d, want 5", NumTiers)
	}
	if TierMissed != 0 || TierUnasked != 1 || TierOnce != 2 || TierTwice != 3 || TierKnown != 4 {
		t.Error("tier indexes out of order")
	}
}

func TestNextTier(t *testing.T) {
	tests := []struct {
		current int
		correct bool
		want    int
	}{
		{TierMissed, true, TierUnasked},
		{TierUnasked, true, TierOnce},
		{TierOnce, true, TierTwice},
		{TierTwice, true, TierKnown},
		{TierKnown, true, TierKnown},
		{TierMissed, false, TierMissed},
		{TierUnasked, false, TierMissed},
		{TierOnce, false, TierMissed},
		{TierTwice, false, TierMissed},
		{TierKnown, false, TierMissed},
	}
	for _, tt := range tests {
		got := nextTier(tt.current, tt.correct)
		if got != tt.want {
			t.Errorf("nextTier(%d, %v) = %d, want %d", tt.current, tt.correct, got, tt.want)
		}
	}
}
