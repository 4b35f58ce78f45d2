package domain

// Exercise is a catalog entry. Exercises are not owned by any user; a fixed
// set is seeded at startup and more can be created freely.
type Exercise struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	MuscleGroups string `json:"muscleGroups,omitempty"` // Comma-separated labels, e.g. "Chest, Triceps"
	ImageURL     string `json:"imageUrl,omitempty"`
}

// ExerciseUpdate carries a partial exercise edit.
type ExerciseUpdate struct {
	Name         *string
	Description  *string
	MuscleGroups *string
	ImageURL     *string
}
