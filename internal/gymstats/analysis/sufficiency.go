package analysis

import (
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/sessions"
)

const (
	MinSessionsForPlateau = 10
	MinDistinctWeeks      = 8
)

type HistorySufficiency struct {
	SessionsInWindow int  `json:"sessionsInWindow"`
	DistinctWeeks    int  `json:"distinctWeeks"`
	Sufficient       bool `json:"sufficient"`
}

// CheckHistory reports whether the history is dense enough for plateau detection:
// at least 10 completed sessions in the analysis window, spread over 8 or more
// distinct week buckets.
func CheckHistory(now time.Time, history []sessions.WorkoutSession) HistorySufficiency {
	weeks := make(map[int]struct{})
	result := HistorySufficiency{}
	for _, s := range history {
		if !s.IsCompleted() || !inWindow(now, s.StartedAt) {
			continue
		}
		result.SessionsInWindow++
		weeks[WeeksAgo(now, s.StartedAt)] = struct{}{}
	}
	result.DistinctWeeks = len(weeks)
	result.Sufficient = result.SessionsInWindow >= MinSessionsForPlateau &&
		result.DistinctWeeks >= MinDistinctWeeks
	return result
}

func HasSufficientHistory(now time.Time, history []sessions.WorkoutSession) bool {
	return CheckHistory(now, history).Sufficient
}
