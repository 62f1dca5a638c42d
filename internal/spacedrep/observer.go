package spacedrep

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// TierCount is one tier's population at a point in time.
type TierCount struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Size  int    `json:"size"`
}

// Observer receives the tier populations after every move.
type Observer interface {
	ObserveTiers(counts []TierCount)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(counts []TierCount)

func (f ObserverFunc) ObserveTiers(counts []TierCount) { f(counts) }

// LogObserver reports tier populations through a logger.
type LogObserver struct {
	log logrus.FieldLogger
}

// NewLogObserver creates an observer that logs every report at info level.
func NewLogObserver(log logrus.FieldLogger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) ObserveTiers(counts []TierCount) {
	o.log.WithField("pending", pending(counts)).Info(FormatCounts(counts))
}

// FormatCounts renders counts as "Missed: 0 questions, Unasked: 2 questions, ...".
func FormatCounts(counts []TierCount) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s: %d questions", c.Name, c.Size)
	}
	return strings.Join(parts, ", ")
}

func pending(counts []TierCount) int {
	n := 0
	for _, c := range counts {
		if c.Index != TierKnown {
			n += c.Size
		}
	}
	return n
}
