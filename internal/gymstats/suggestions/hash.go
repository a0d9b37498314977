package suggestions

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ContentHash fingerprints the inputs a suggestion was generated from. A cached
// suggestion is only reused while the hash of the current inputs still matches.
func ContentHash(user UserContext, ex ExerciseContext) uint64 {
	d := xxhash.New()
	write := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.WriteString("|")
	}

	write(ex.Exercise.ID)
	write(strconv.Itoa(ex.TargetReps))
	write(string(ex.Status()))
	write(string(user.Goal))
	write(string(user.Level))
	write(user.Guidance)
	for _, s := range ex.RecentSets {
		write(strconv.Itoa(s.SessionID))
		write(strconv.FormatFloat(s.Weight, 'f', -1, 64))
		write(strconv.Itoa(s.Reps))
		write(string(s.Unit))
	}

	return d.Sum64()
}
