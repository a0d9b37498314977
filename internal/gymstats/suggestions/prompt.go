package suggestions

import (
	"fmt"
	"strings"

	"github.com/2beens/gymcoach/internal/generation"
	"github.com/2beens/gymcoach/internal/gymstats/analysis"
)

const systemPrompt = `You are a strength coach. Suggest the working weight and reps for the next session of one exercise.
Answer with a single JSON object and nothing else.`

func buildPrompt(user UserContext, ex ExerciseContext) generation.Prompt {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Exercise: %s (%s)", ex.Exercise.Name, ex.Exercise.Type)
	if len(ex.Exercise.MuscleGroups) > 0 {
		fmt.Fprintf(&sb, ", muscles: %s", strings.Join(ex.Exercise.MuscleGroups, ", "))
	}
	sb.WriteString("\n")
	if ex.TargetReps > 0 {
		fmt.Fprintf(&sb, "Target reps: %d\n", ex.TargetReps)
	}
	fmt.Fprintf(&sb, "Goal: %s, experience: %s\n", user.Goal, user.Level)

	if user.Guidance != "" {
		fmt.Fprintf(&sb, "Training phase: %s\n", user.Guidance)
	}

	if bw := user.BodyWeight; bw != nil {
		fmt.Fprintf(&sb, "Body weight is %s: %.1f -> %.1f over %d reports\n", bw.Direction, bw.Start, bw.Latest, bw.Entries)
	}

	if len(ex.RecentSets) == 0 {
		sb.WriteString("No recent sets recorded for this exercise.\n")
	} else {
		sb.WriteString("Recent sets, newest first:\n")
		for _, s := range ex.RecentSets {
			fmt.Fprintf(&sb, "- %s: %.2f %s x %d\n", s.Date.Format("2006-01-02"), s.Weight, s.Unit, s.Reps)
		}
	}

	status := ex.Status()
	fmt.Fprintf(&sb, "Progress status: %s. %s\n", status, status.Describe())
	if a := ex.Analysis; a != nil && status != analysis.StatusInsufficientData {
		fmt.Fprintf(&sb, "Trends since the oldest tracked week: weight %+.2f%%, reps %+.2f%%, estimated 1RM %+.2f%%\n",
			a.Trends.Weight, a.Trends.Reps, a.Trends.OneRepMax)
	}

	sb.WriteString("\nRespond with JSON: ")
	sb.WriteString(`{"weight": number, "reps": integer, "confidence": "high"|"medium"|"low", "reasoning": string`)
	if status == analysis.StatusPlateau {
		sb.WriteString(`, "techniqueTip": string, "repRangeChange": {"from": string, "to": string, "reason": string}}`)
		sb.WriteString("\nThe lifter is on a plateau: a technique tip and a rep range change are required.")
	} else {
		sb.WriteString("}")
	}

	return generation.Prompt{
		System: systemPrompt,
		User:   sb.String(),
	}
}
