package domain

import "time"

// Workout is a single logged training session belonging to a user.
type Workout struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Name     string    `json:"name"`
	Type     string    `json:"type"` // Free-text category, e.g. "Strength", "Cardio"
	Date     time.Time `json:"date"`
	Duration int       `json:"duration,omitempty"` // Minutes
	Notes    string    `json:"notes,omitempty"`
}

// WorkoutUpdate carries a partial workout edit. The owning user is fixed at
// creation and cannot be moved.
type WorkoutUpdate struct {
	Name     *string
	Type     *string
	Date     *time.Time
	Duration *int
	Notes    *string
}
