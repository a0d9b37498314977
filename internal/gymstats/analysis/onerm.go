package analysis

// EstimatedOneRepMax uses the Epley formula: weight * (1 + reps/30).
// A single rep is the 1RM itself; non-positive inputs give 0.
func EstimatedOneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return weight * (1 + float64(reps)/30)
}
