package cycles

import (
	"fmt"
	"strings"
)

// Guidance renders phase aware coaching text handed to the suggestion generator.
// A complete (or missing) cycle yields generic retest guidance.
func Guidance(goal Goal, level ExperienceLevel, cfg CycleConfig, state UserCycleState) string {
	var sb strings.Builder

	phase, ok := CurrentPhase(cfg, state)
	if !ok {
		sb.WriteString("The training cycle is complete. Keep weights near recent working sets, ")
		sb.WriteString("consider testing new maxes and starting the next cycle.")
		writeLevelAndGoal(&sb, goal, level)
		return sb.String()
	}

	fmt.Fprintf(&sb, "Current phase: %s (week %d of %d, %s). ",
		phase.Name, state.WeekInPhase, phase.DurationWeeks, cfg.Name)
	if phase.RepRange != "" {
		fmt.Fprintf(&sb, "Target rep range: %s. ", phase.RepRange)
	}
	fmt.Fprintf(&sb, "Intensity: %s. ", phase.Intensity)
	sb.WriteString(phaseFocus(phase.Type))
	sb.WriteString(" ")
	sb.WriteString(phase.WeightGuidance)
	writeLevelAndGoal(&sb, goal, level)

	return sb.String()
}

func writeLevelAndGoal(sb *strings.Builder, goal Goal, level ExperienceLevel) {
	if s := levelAdvice(level); s != "" {
		sb.WriteString(" ")
		sb.WriteString(s)
	}
	if s := goalAdvice(goal); s != "" {
		sb.WriteString(" ")
		sb.WriteString(s)
	}
}

func phaseFocus(t PhaseType) string {
	switch t {
	case PhaseAccumulation:
		return "Focus on technique and building work capacity."
	case PhaseHypertrophy:
		return "Focus on volume and muscle growth."
	case PhaseStrength:
		return "Focus on progressive overload with moderate reps."
	case PhasePeaking:
		return "Focus on heavy low rep work, volume stays low."
	case PhaseDeload:
		return "This is a deload, reduce weight and volume, do not progress."
	case PhaseAerobicBase:
		return "Lifting supports the aerobic base, keep loads at maintenance."
	case PhaseThreshold:
		return "Conditioning is demanding this phase, keep lifting fatigue low."
	case PhaseIntervals:
		return "High intensity conditioning phase, lifting is maintenance only."
	default:
		return ""
	}
}

func levelAdvice(level ExperienceLevel) string {
	switch level {
	case LevelBeginner:
		return "Beginner: prefer small jumps and keep every rep clean."
	case LevelIntermediate:
		return "Intermediate: weekly progression is realistic, session to session may not be."
	case LevelAdvanced:
		return "Advanced: progress comes slowly, small load or rep increases are a win."
	default:
		return ""
	}
}

func goalAdvice(goal Goal) string {
	switch goal {
	case GoalStrength:
		return "Goal is strength, prioritize load on compound lifts."
	case GoalHypertrophy:
		return "Goal is hypertrophy, prioritize total quality reps."
	case GoalGeneral:
		return "Goal is general fitness, balance load and reps."
	case GoalEndurance:
		return "Goal is endurance, keep lifting fatigue manageable."
	default:
		return ""
	}
}
