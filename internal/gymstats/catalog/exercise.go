package catalog

type ExerciseType string

const (
	TypeCompound   ExerciseType = "compound"
	TypeIsolation  ExerciseType = "isolation"
	TypeBodyweight ExerciseType = "bodyweight"
	TypeCardio     ExerciseType = "cardio"
)

type Exercise struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         ExerciseType `json:"type"`
	MuscleGroups []string     `json:"muscleGroups,omitempty"`
	Custom       bool         `json:"custom"`
}

var builtin = []Exercise{
	{ID: "back_squat", Name: "Back Squat", Type: TypeCompound, MuscleGroups: []string{"legs", "glutes"}},
	{ID: "front_squat", Name: "Front Squat", Type: TypeCompound, MuscleGroups: []string{"legs", "core"}},
	{ID: "deadlift", Name: "Deadlift", Type: TypeCompound, MuscleGroups: []string{"back", "legs", "glutes"}},
	{ID: "romanian_deadlift", Name: "Romanian Deadlift", Type: TypeCompound, MuscleGroups: []string{"hamstrings", "glutes"}},
	{ID: "bench_press", Name: "Bench Press", Type: TypeCompound, MuscleGroups: []string{"chest", "triceps", "shoulders"}},
	{ID: "incline_bench_press", Name: "Incline Bench Press", Type: TypeCompound, MuscleGroups: []string{"chest", "shoulders"}},
	{ID: "overhead_press", Name: "Overhead Press", Type: TypeCompound, MuscleGroups: []string{"shoulders", "triceps"}},
	{ID: "barbell_row", Name: "Barbell Row", Type: TypeCompound, MuscleGroups: []string{"back", "biceps"}},
	{ID: "pull_up", Name: "Pull Up", Type: TypeBodyweight, MuscleGroups: []string{"back", "biceps"}},
	{ID: "dip", Name: "Dip", Type: TypeBodyweight, MuscleGroups: []string{"chest", "triceps"}},
	{ID: "lat_pulldown", Name: "Lat Pulldown", Type: TypeCompound, MuscleGroups: []string{"back"}},
	{ID: "leg_press", Name: "Leg Press", Type: TypeCompound, MuscleGroups: []string{"legs"}},
	{ID: "hip_thrust", Name: "Hip Thrust", Type: TypeCompound, MuscleGroups: []string{"glutes"}},
	{ID: "biceps_curl", Name: "Biceps Curl", Type: TypeIsolation, MuscleGroups: []string{"biceps"}},
	{ID: "triceps_pushdown", Name: "Triceps Pushdown", Type: TypeIsolation, MuscleGroups: []string{"triceps"}},
	{ID: "lateral_raise", Name: "Lateral Raise", Type: TypeIsolation, MuscleGroups: []string{"shoulders"}},
	{ID: "leg_curl", Name: "Leg Curl", Type: TypeIsolation, MuscleGroups: []string{"hamstrings"}},
	{ID: "leg_extension", Name: "Leg Extension", Type: TypeIsolation, MuscleGroups: []string{"quads"}},
	{ID: "calf_raise", Name: "Calf Raise", Type: TypeIsolation, MuscleGroups: []string{"calves"}},
	{ID: "plank", Name: "Plank", Type: TypeBodyweight, MuscleGroups: []string{"core"}},
	{ID: "rowing_machine", Name: "Rowing Machine", Type: TypeCardio},
	{ID: "treadmill_run", Name: "Treadmill Run", Type: TypeCardio},
}

// Builtin returns a copy of the built-in exercises.
func Builtin() []Exercise {
	result := make([]Exercise, len(builtin))
	copy(result, builtin)
	return result
}
