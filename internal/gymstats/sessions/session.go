package sessions

import "time"

type WeightUnit string

const (
	UnitKilos  WeightUnit = "kg"
	UnitPounds WeightUnit = "lbs"
)

type CompletedSet struct {
	Weight      float64    `json:"weight"`
	Reps        int        `json:"reps"`
	Unit        WeightUnit `json:"unit"`
	CompletedAt time.Time  `json:"completedAt"`
}

type ExerciseEntry struct {
	ExerciseID string         `json:"exerciseId"`
	Sets       []CompletedSet `json:"sets"`
}

// WorkoutSession is one training session. A nil CompletedAt means the
// session is still in progress and is ignored by the analysis.
type WorkoutSession struct {
	ID          int             `json:"id"`
	UserID      string          `json:"userId"`
	StartedAt   time.Time       `json:"startedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	Entries     []ExerciseEntry `json:"entries"`
}

func (s WorkoutSession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// SetsFor returns all completed sets of the given exercise in this session.
func (s WorkoutSession) SetsFor(exerciseID string) []CompletedSet {
	var sets []CompletedSet
	for _, e := range s.Entries {
		if e.ExerciseID == exerciseID {
			sets = append(sets, e.Sets...)
		}
	}
	return sets
}

func (s WorkoutSession) HasExercise(exerciseID string) bool {
	for _, e := range s.Entries {
		if e.ExerciseID == exerciseID && len(e.Sets) > 0 {
			return true
		}
	}
	return false
}

// CountCompleted returns the number of completed sessions, regardless of exercise.
func CountCompleted(history []WorkoutSession) int {
	count := 0
	for _, s := range history {
		if s.IsCompleted() {
			count++
		}
	}
	return count
}
