package cycles

import (
	"errors"
	"time"
)

var (
	ErrUnknownCycle  = errors.New("unknown training cycle")
	ErrStateNotFound = errors.New("cycle state not found")
)

type CycleType string

const (
	CycleTypeStrength CycleType = "strength"
	CycleTypeCardio   CycleType = "cardio"
)

type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

type Goal string

const (
	GoalStrength    Goal = "strength"
	GoalHypertrophy Goal = "hypertrophy"
	GoalGeneral     Goal = "general"
	GoalEndurance   Goal = "endurance"
)

type PhaseType string

const (
	PhaseAccumulation PhaseType = "accumulation"
	PhaseHypertrophy  PhaseType = "hypertrophy"
	PhaseStrength     PhaseType = "strength"
	PhasePeaking      PhaseType = "peaking"
	PhaseDeload       PhaseType = "deload"
	PhaseAerobicBase  PhaseType = "aerobic_base"
	PhaseThreshold    PhaseType = "threshold"
	PhaseIntervals    PhaseType = "intervals"
)

type Phase struct {
	Type           PhaseType `yaml:"type" json:"type"`
	Name           string    `yaml:"name" json:"name"`
	DurationWeeks  int       `yaml:"duration_weeks" json:"durationWeeks"`
	RepRange       string    `yaml:"rep_range" json:"repRange,omitempty"`
	Intensity      string    `yaml:"intensity" json:"intensity"`
	WeightGuidance string    `yaml:"weight_guidance" json:"weightGuidance"`
}

// CycleConfig is an immutable, ordered sequence of phases.
type CycleConfig struct {
	ID               string            `yaml:"id" json:"id"`
	Name             string            `yaml:"name" json:"name"`
	Type             CycleType         `yaml:"type" json:"type"`
	Goals            []Goal            `yaml:"goals" json:"goals"`
	ExperienceLevels []ExperienceLevel `yaml:"experience_levels" json:"experienceLevels"`
	Phases           []Phase           `yaml:"phases" json:"phases"`
}

func (c CycleConfig) TotalWeeks() int {
	total := 0
	for _, p := range c.Phases {
		total += p.DurationWeeks
	}
	return total
}

// UserCycleState points at where a user currently is in a cycle.
// WeekInPhase is the 1-based week of the current phase. A PhaseIndex past
// the last phase means the cycle is complete.
type UserCycleState struct {
	UserID      string    `json:"userId"`
	CycleID     string    `json:"cycleId"`
	StartDate   time.Time `json:"startDate"`
	PhaseIndex  int       `json:"phaseIndex"`
	WeekInPhase int       `json:"weekInPhase"`
}

// CurrentPhase returns the phase the state points at, or false once the
// cycle is complete (or the index is otherwise out of range).
func CurrentPhase(cfg CycleConfig, state UserCycleState) (Phase, bool) {
	if state.PhaseIndex < 0 || state.PhaseIndex >= len(cfg.Phases) {
		return Phase{}, false
	}
	return cfg.Phases[state.PhaseIndex], true
}

func IsComplete(cfg CycleConfig, state UserCycleState) bool {
	return state.PhaseIndex >= len(cfg.Phases)
}

// TotalWeeksCompleted sums the durations of all phases before the current
// one and adds the week within the current phase.
func TotalWeeksCompleted(cfg CycleConfig, state UserCycleState) int {
	total := 0
	for i := 0; i < state.PhaseIndex && i < len(cfg.Phases); i++ {
		total += cfg.Phases[i].DurationWeeks
	}
	if state.PhaseIndex < len(cfg.Phases) {
		total += state.WeekInPhase
	}
	return total
}

// PositionAt derives phase index and week in phase from the number of whole
// weeks elapsed since start. It drives the state forward as weeks pass.
func PositionAt(cfg CycleConfig, start, now time.Time) (phaseIndex, weekInPhase int) {
	if now.Before(start) {
		return 0, 1
	}
	elapsedWeeks := int(now.Sub(start).Hours()/24) / 7
	for i, p := range cfg.Phases {
		if elapsedWeeks < p.DurationWeeks {
			return i, elapsedWeeks + 1
		}
		elapsedWeeks -= p.DurationWeeks
	}
	return len(cfg.Phases), 0
}
