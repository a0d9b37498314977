package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/sessions"
	"github.com/2beens/gymcoach/pkg"
)

const (
	WindowDays   = 70
	MaxWeeksAgo  = 10
	recentToKeep = 5

	plateauMinSessions  = 4
	plateauSampleSize   = 6
	repTargetSampleSize = 4

	sameWeightTolerance = 0.025
	stalledTolerance    = 0.03
	signalMinMatches    = 4
	failedRepMinMisses  = 2
)

type sessionStats struct {
	id        int
	startedAt time.Time
	weeksAgo  int
	sets      []sessions.CompletedSet
	maxWeight float64
	avgReps   float64
	oneRM     float64
}

// WeeksAgo buckets a session start by elapsed whole days, clamped to [0, MaxWeeksAgo].
func WeeksAgo(now, startedAt time.Time) int {
	days := int(now.Sub(startedAt).Hours() / 24)
	weeks := days / 7
	if weeks < 0 {
		return 0
	}
	if weeks > MaxWeeksAgo {
		return MaxWeeksAgo
	}
	return weeks
}

func inWindow(now, startedAt time.Time) bool {
	return now.Sub(startedAt) <= WindowDays*24*time.Hour
}

// Analyze computes the progress analysis of one exercise over the full session history.
// It never fails: too little data is reported as StatusInsufficientData.
func Analyze(now time.Time, history []sessions.WorkoutSession, params Params) *ExerciseAnalysis {
	var qualifying []sessionStats
	for _, s := range history {
		if !s.IsCompleted() || !inWindow(now, s.StartedAt) || !s.HasExercise(params.ExerciseID) {
			continue
		}
		qualifying = append(qualifying, newSessionStats(now, s, params.ExerciseID))
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].startedAt.After(qualifying[j].startedAt)
	})

	result := &ExerciseAnalysis{
		ExerciseID:     params.ExerciseID,
		ExerciseName:   params.ExerciseName,
		Weekly:         []WeeklyPerformance{},
		Status:         StatusInsufficientData,
		RecentSessions: recentSummaries(qualifying),
	}

	if len(qualifying) < 2 {
		return result
	}

	result.Weekly = weeklyPerformance(qualifying)
	trends := calcTrends(result.Weekly)

	if params.PlateauDetection && len(qualifying) >= plateauMinSessions {
		result.Signals = plateauSignals(qualifying, params.TargetReps)
	}

	result.Status = classify(len(qualifying), trends.OneRepMax, result.Signals)
	result.Trends = Trends{
		Weight:    pkg.Round2(trends.Weight),
		Reps:      pkg.Round2(trends.Reps),
		OneRepMax: pkg.Round2(trends.OneRepMax),
	}

	return result
}

func newSessionStats(now time.Time, s sessions.WorkoutSession, exerciseID string) sessionStats {
	sets := s.SetsFor(exerciseID)
	stats := sessionStats{
		id:        s.ID,
		startedAt: s.StartedAt,
		weeksAgo:  WeeksAgo(now, s.StartedAt),
		sets:      sets,
	}

	totalReps := 0
	for _, set := range sets {
		stats.maxWeight = math.Max(stats.maxWeight, set.Weight)
		totalReps += set.Reps
	}
	if len(sets) > 0 {
		stats.avgReps = float64(totalReps) / float64(len(sets))
	}
	stats.oneRM = EstimatedOneRepMax(stats.maxWeight, int(math.Round(stats.avgReps)))

	return stats
}

func recentSummaries(qualifying []sessionStats) []SessionSummary {
	summaries := make([]SessionSummary, 0, recentToKeep)
	for i, s := range qualifying {
		if i == recentToKeep {
			break
		}
		summaries = append(summaries, SessionSummary{
			SessionID:          s.id,
			Date:               s.startedAt,
			MaxWeight:          s.maxWeight,
			AvgReps:            pkg.Round2(s.avgReps),
			Sets:               len(s.sets),
			EstimatedOneRepMax: pkg.Round2(s.oneRM),
		})
	}
	return summaries
}

// weeklyPerformance aggregates per week bucket, newest week first.
// Sessions are bucketed as a whole, never split by set.
func weeklyPerformance(qualifying []sessionStats) []WeeklyPerformance {
	week2sessions := make(map[int][]sessionStats)
	for _, s := range qualifying {
		week2sessions[s.weeksAgo] = append(week2sessions[s.weeksAgo], s)
	}

	weekly := make([]WeeklyPerformance, 0, len(week2sessions))
	for week := 0; week <= MaxWeeksAgo; week++ {
		weekSessions, ok := week2sessions[week]
		if !ok {
			continue
		}

		wp := WeeklyPerformance{
			WeeksAgo:     week,
			SessionCount: len(weekSessions),
		}
		var totalWeight float64
		var totalReps int
		for _, s := range weekSessions {
			for _, set := range s.sets {
				totalWeight += set.Weight
				totalReps += set.Reps
				wp.MaxWeight = math.Max(wp.MaxWeight, set.Weight)
				wp.TotalSets++
			}
		}
		if wp.TotalSets > 0 {
			wp.AvgWeight = totalWeight / float64(wp.TotalSets)
			wp.AvgReps = float64(totalReps) / float64(wp.TotalSets)
		}
		wp.EstimatedOneRepMax = EstimatedOneRepMax(wp.MaxWeight, int(math.Round(wp.AvgReps)))

		weekly = append(weekly, wp)
	}

	return weekly
}

// calcTrends compares the newest populated week with the oldest one.
// Values are not rounded, classification works on the raw percentages.
func calcTrends(weekly []WeeklyPerformance) Trends {
	if len(weekly) == 0 {
		return Trends{}
	}
	newest := weekly[0]
	oldest := weekly[len(weekly)-1]
	return Trends{
		Weight:    percentChange(oldest.AvgWeight, newest.AvgWeight),
		Reps:      percentChange(oldest.AvgReps, newest.AvgReps),
		OneRepMax: percentChange(oldest.EstimatedOneRepMax, newest.EstimatedOneRepMax),
	}
}

func percentChange(base, current float64) float64 {
	if base == 0 {
		return 0
	}
	return (current - base) / base * 100
}

func plateauSignals(qualifying []sessionStats, targetReps int) PlateauSignals {
	sample := qualifying
	if len(sample) > plateauSampleSize {
		sample = sample[:plateauSampleSize]
	}
	latest := sample[0]

	var sameWeight, sameOneRM int
	for _, s := range sample {
		if withinTolerance(s.maxWeight, latest.maxWeight, sameWeightTolerance) {
			sameWeight++
		}
		if withinTolerance(s.oneRM, latest.oneRM, stalledTolerance) {
			sameOneRM++
		}
	}

	signals := PlateauSignals{
		SameWeightRepeated: sameWeight >= signalMinMatches,
		StalledOneRepMax:   sameOneRM >= signalMinMatches,
	}

	if targetReps > 0 {
		repSample := qualifying
		if len(repSample) > repTargetSampleSize {
			repSample = repSample[:repTargetSampleSize]
		}
		misses := 0
		for _, s := range repSample {
			// short of the target by at least one full rep
			if s.avgReps <= float64(targetReps-1) {
				misses++
			}
		}
		signals.FailedRepTarget = misses >= failedRepMinMisses
	}

	return signals
}

// withinTolerance compares relative to the reference. A zero load has no
// relative band, so bodyweight work never matches.
func withinTolerance(value, reference, tolerance float64) bool {
	if reference <= 0 {
		return false
	}
	return math.Abs(value-reference) <= reference*tolerance
}

// classify applies the rules in order, first match wins. Ties default to improving.
func classify(qualifyingSessions int, oneRMTrend float64, signals PlateauSignals) ProgressStatus {
	switch {
	case qualifyingSessions < 3:
		return StatusInsufficientData
	case oneRMTrend < -5:
		return StatusDeclining
	case oneRMTrend > 0:
		return StatusImproving
	case signals.Count() >= 2 && oneRMTrend <= 0:
		return StatusPlateau
	case signals.Count() == 1 && oneRMTrend < -2:
		return StatusPlateau
	default:
		return StatusImproving
	}
}
