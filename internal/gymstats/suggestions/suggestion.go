package suggestions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymcoach/internal/gymstats/analysis"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	default:
		return false
	}
}

type RepRangeChange struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

type Suggestion struct {
	ExerciseID      string                  `json:"exerciseId"`
	ExerciseName    string                  `json:"exerciseName"`
	SuggestedWeight float64                 `json:"suggestedWeight"`
	SuggestedReps   int                     `json:"suggestedReps"`
	Confidence      Confidence              `json:"confidence"`
	Status          analysis.ProgressStatus `json:"status"`
	Reasoning       string                  `json:"reasoning,omitempty"`
	TechniqueTip    string                  `json:"techniqueTip,omitempty"`
	RepRangeChange  *RepRangeChange         `json:"repRangeChange,omitempty"`
}

// generated is the payload the generator is asked to return.
type generated struct {
	Weight         float64         `json:"weight"`
	Reps           int             `json:"reps"`
	Confidence     Confidence      `json:"confidence"`
	Reasoning      string          `json:"reasoning"`
	TechniqueTip   string          `json:"techniqueTip"`
	RepRangeChange *RepRangeChange `json:"repRangeChange"`
}

const (
	maxSuggestedReps = 50
	// a suggestion more than this factor above the heaviest recent set is rejected
	maxWeightJump = 1.25
)

var (
	ErrInvalidReps       = errors.New("invalid reps")
	ErrInvalidWeight     = errors.New("invalid weight")
	ErrInvalidConfidence = errors.New("invalid confidence")
	ErrMissingPlateauFix = errors.New("plateau requires a technique tip and a rep range change")
)

// validator checks generated output against what is known about the exercise.
func validator(exCtx ExerciseContext) func(generated) error {
	return func(g generated) error {
		if g.Reps <= 0 || g.Reps > maxSuggestedReps {
			return fmt.Errorf("%w: %d", ErrInvalidReps, g.Reps)
		}
		if g.Weight < 0 {
			return fmt.Errorf("%w: %.2f", ErrInvalidWeight, g.Weight)
		}
		if heaviest := exCtx.HeaviestRecentWeight(); heaviest > 0 && g.Weight > heaviest*maxWeightJump {
			return fmt.Errorf("%w: %.2f is too far above recent %.2f", ErrInvalidWeight, g.Weight, heaviest)
		}
		if !g.Confidence.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidConfidence, g.Confidence)
		}
		if exCtx.Status() == analysis.StatusPlateau {
			if strings.TrimSpace(g.TechniqueTip) == "" || g.RepRangeChange == nil ||
				g.RepRangeChange.From == "" || g.RepRangeChange.To == "" {
				return ErrMissingPlateauFix
			}
		}
		return nil
	}
}

func (g generated) toSuggestion(exCtx ExerciseContext) Suggestion {
	s := Suggestion{
		ExerciseID:      exCtx.Exercise.ID,
		ExerciseName:    exCtx.Exercise.Name,
		SuggestedWeight: g.Weight,
		SuggestedReps:   g.Reps,
		Confidence:      g.Confidence,
		Status:          exCtx.Status(),
		Reasoning:       g.Reasoning,
	}
	// tips and rep range changes are only part of a plateau answer
	if s.Status == analysis.StatusPlateau {
		s.TechniqueTip = g.TechniqueTip
		s.RepRangeChange = g.RepRangeChange
	}
	return s
}
