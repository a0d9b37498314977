package analysis

import "fmt"

// ProgressStatus is a closed set; every switch over it must handle all four values.
type ProgressStatus string

const (
	StatusImproving        ProgressStatus = "improving"
	StatusPlateau          ProgressStatus = "plateau"
	StatusDeclining        ProgressStatus = "declining"
	StatusInsufficientData ProgressStatus = "insufficient_data"
)

func (s ProgressStatus) String() string {
	return string(s)
}

func (s ProgressStatus) IsValid() bool {
	switch s {
	case StatusImproving,
		StatusPlateau,
		StatusDeclining,
		StatusInsufficientData:
		return true
	default:
		return false
	}
}

// Describe returns a short human readable explanation of the status,
// used both in prompts and in API responses.
func (s ProgressStatus) Describe() string {
	switch s {
	case StatusImproving:
		return "estimated 1RM is trending up"
	case StatusPlateau:
		return "performance has stalled over recent sessions"
	case StatusDeclining:
		return "estimated 1RM dropped by more than 5%"
	case StatusInsufficientData:
		return "not enough recent sessions to judge progress"
	default:
		panic(fmt.Sprintf("unhandled progress status: %q", string(s)))
	}
}

func ParseProgressStatus(s string) (ProgressStatus, error) {
	status := ProgressStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid progress status: %q", s)
	}
	return status, nil
}

// PlateauSignals are independent stagnation heuristics.
type PlateauSignals struct {
	SameWeightRepeated bool `json:"sameWeightRepeated"`
	FailedRepTarget    bool `json:"failedRepTarget"`
	StalledOneRepMax   bool `json:"stalledOneRepMax"`
}

func (p PlateauSignals) Count() int {
	count := 0
	for _, signal := range []bool{p.SameWeightRepeated, p.FailedRepTarget, p.StalledOneRepMax} {
		if signal {
			count++
		}
	}
	return count
}
