package analysis

import "time"

type WeeklyPerformance struct {
	WeeksAgo           int     `json:"weeksAgo"`
	SessionCount       int     `json:"sessionCount"`
	AvgWeight          float64 `json:"avgWeight"`
	AvgReps            float64 `json:"avgReps"`
	MaxWeight          float64 `json:"maxWeight"`
	TotalSets          int     `json:"totalSets"`
	EstimatedOneRepMax float64 `json:"estimatedOneRepMax"`
}

// Trends are percent changes between the newest and the oldest populated week.
type Trends struct {
	Weight    float64 `json:"weight"`
	Reps      float64 `json:"reps"`
	OneRepMax float64 `json:"oneRepMax"`
}

type SessionSummary struct {
	SessionID          int       `json:"sessionId"`
	Date               time.Time `json:"date"`
	MaxWeight          float64   `json:"maxWeight"`
	AvgReps            float64   `json:"avgReps"`
	Sets               int       `json:"sets"`
	EstimatedOneRepMax float64   `json:"estimatedOneRepMax"`
}

type ExerciseAnalysis struct {
	ExerciseID     string              `json:"exerciseId"`
	ExerciseName   string              `json:"exerciseName"`
	Weekly         []WeeklyPerformance `json:"weekly"`
	Status         ProgressStatus      `json:"status"`
	Signals        PlateauSignals      `json:"signals"`
	Trends         Trends              `json:"trends"`
	RecentSessions []SessionSummary    `json:"recentSessions"`
}

// Params describe a single analysis request. TargetReps of 0 means no target,
// which disables the failed rep target signal.
type Params struct {
	ExerciseID       string
	ExerciseName     string
	TargetReps       int
	PlateauDetection bool
}
