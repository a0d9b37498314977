package suggestions

import (
	"fmt"

	"github.com/2beens/gymcoach/internal/gymstats/analysis"
)

const defaultTargetReps = 8

// fallbackFor is the deterministic answer used when the generator gives nothing usable:
// repeat the latest working weight for the target reps, with low confidence.
func fallbackFor(exCtx ExerciseContext) generated {
	targetReps := exCtx.TargetReps
	if targetReps <= 0 {
		targetReps = defaultTargetReps
	}

	g := generated{
		Weight:     exCtx.LatestWorkingWeight(),
		Reps:       targetReps,
		Confidence: ConfidenceLow,
	}

	status := exCtx.Status()
	switch status {
	case analysis.StatusInsufficientData:
		g.Reasoning = "Not enough recent history, repeat your last working weight and focus on form."
	case analysis.StatusImproving:
		g.Reasoning = "Progress is on track, repeat your last working weight and add reps when all sets feel solid."
	case analysis.StatusDeclining:
		g.Reasoning = "Performance dropped recently, hold the weight steady and prioritize recovery."
	case analysis.StatusPlateau:
		lower := targetReps - 2
		if lower < 1 {
			lower = 1
		}
		g.Reasoning = "Progress has stalled, change the rep range for a few weeks before adding load."
		g.TechniqueTip = "Slow the eccentric to 3 seconds and pause briefly at the hardest point of the lift."
		g.RepRangeChange = &RepRangeChange{
			From:   fmt.Sprintf("%d", targetReps),
			To:     fmt.Sprintf("%d-%d", lower, targetReps+2),
			Reason: "A new rep range gives a fresh stimulus when the same weight keeps repeating.",
		}
	default:
		panic(fmt.Sprintf("unhandled progress status: %q", string(status)))
	}

	return g
}
