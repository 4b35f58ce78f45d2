package domain

// WorkoutExercise links an exercise into a workout together with the
// performance recorded for that occurrence (sets/reps/weight).
type WorkoutExercise struct {
	ID         int64   `json:"id"`
	WorkoutID  int64   `json:"workoutId"`
	ExerciseID int64   `json:"exerciseId"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight,omitempty"`   // Kilograms
	Duration   int     `json:"duration,omitempty"` // Seconds, for timed exercises
	Notes      string  `json:"notes,omitempty"`
}

// WorkoutExerciseUpdate carries a partial edit of a workout entry.
type WorkoutExerciseUpdate struct {
	WorkoutID  *int64
	ExerciseID *int64
	Sets       *int
	Reps       *int
	Weight     *float64
	Duration   *int
	Notes      *string
}

// WorkoutExerciseDetail is a WorkoutExercise enriched with its referenced
// exercise. Exercise is nil when the referenced catalog entry no longer
// exists.
type WorkoutExerciseDetail struct {
	WorkoutExercise
	Exercise *Exercise `json:"exercise,omitempty"`
}
