package suggestions

import (
	"sort"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/analysis"
	"github.com/2beens/gymcoach/internal/gymstats/catalog"
	"github.com/2beens/gymcoach/internal/gymstats/cycles"
	"github.com/2beens/gymcoach/internal/gymstats/events"
	"github.com/2beens/gymcoach/internal/gymstats/sessions"
	"github.com/2beens/gymcoach/pkg"
)

const (
	recentSetsLimit      = 10
	bodyWeightWindowDays = 60
	// body weight change (in the reported unit) that counts as a trend
	bodyWeightThreshold = 1.0
)

type RecentSet struct {
	SessionID int                 `json:"sessionId"`
	Date      time.Time           `json:"date"`
	Weight    float64             `json:"weight"`
	Reps      int                 `json:"reps"`
	Unit      sessions.WeightUnit `json:"unit"`
}

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

type BodyWeightTrend struct {
	Start     float64        `json:"start"`
	Latest    float64        `json:"latest"`
	Change    float64        `json:"change"`
	Direction TrendDirection `json:"direction"`
	Entries   int            `json:"entries"`
}

// ExerciseContext is everything known about one planned exercise.
type ExerciseContext struct {
	Exercise   catalog.Exercise
	TargetReps int
	RecentSets []RecentSet
	Analysis   *analysis.ExerciseAnalysis
}

// UserContext is shared by every exercise of one workout request.
type UserContext struct {
	UserID     string
	Goal       cycles.Goal
	Level      cycles.ExperienceLevel
	BodyWeight *BodyWeightTrend
	Guidance   string
	// PlateauDetection is false when the history is too sparse to trust plateau signals.
	PlateauDetection bool
}

func (e ExerciseContext) Status() analysis.ProgressStatus {
	if e.Analysis == nil {
		return analysis.StatusInsufficientData
	}
	return e.Analysis.Status
}

func (e ExerciseContext) HeaviestRecentWeight() float64 {
	heaviest := 0.0
	for _, s := range e.RecentSets {
		if s.Weight > heaviest {
			heaviest = s.Weight
		}
	}
	return heaviest
}

// LatestWorkingWeight is the top set of the most recent session with this exercise.
func (e ExerciseContext) LatestWorkingWeight() float64 {
	if e.Analysis != nil && len(e.Analysis.RecentSessions) > 0 {
		return e.Analysis.RecentSessions[0].MaxWeight
	}
	if len(e.RecentSets) == 0 {
		return 0
	}
	latest := e.RecentSets[0].SessionID
	top := 0.0
	for _, s := range e.RecentSets {
		if s.SessionID == latest && s.Weight > top {
			top = s.Weight
		}
	}
	return top
}

// RecentSets returns up to limit completed sets of the exercise, newest first.
func RecentSets(history []sessions.WorkoutSession, exerciseID string, limit int) []RecentSet {
	var result []RecentSet
	for _, s := range history {
		if !s.IsCompleted() {
			continue
		}
		for _, set := range s.SetsFor(exerciseID) {
			date := set.CompletedAt
			if date.IsZero() {
				date = s.StartedAt
			}
			result = append(result, RecentSet{
				SessionID: s.ID,
				Date:      date,
				Weight:    set.Weight,
				Reps:      set.Reps,
				Unit:      set.Unit,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// BodyWeightTrendFrom compares the oldest and the newest weight report of the
// last 60 days. Fewer than two reports yield nil.
func BodyWeightTrendFrom(now time.Time, reports []events.WeightReport) *BodyWeightTrend {
	cutoff := now.AddDate(0, 0, -bodyWeightWindowDays)
	var inWindow []events.WeightReport
	for _, r := range reports {
		if r.Timestamp.Before(cutoff) || r.Timestamp.After(now) {
			continue
		}
		inWindow = append(inWindow, r)
	}
	if len(inWindow) < 2 {
		return nil
	}

	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].Timestamp.Before(inWindow[j].Timestamp)
	})

	first := inWindow[0].Weight
	last := inWindow[len(inWindow)-1].Weight
	change := last - first

	direction := TrendStable
	switch {
	case change > bodyWeightThreshold:
		direction = TrendUp
	case change < -bodyWeightThreshold:
		direction = TrendDown
	}

	return &BodyWeightTrend{
		Start:     first,
		Latest:    last,
		Change:    pkg.Round2(change),
		Direction: direction,
		Entries:   len(inWindow),
	}
}
