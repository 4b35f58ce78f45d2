package domain

import "time"

// Goal is a user-defined progress target. CurrentValue is advanced by the
// client as progress is logged; the store does not clamp it to TargetValue.
type Goal struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	TargetValue  float64    `json:"targetValue"`
	CurrentValue float64    `json:"currentValue"`
	Unit         string     `json:"unit"` // e.g. kg, reps, km
	Deadline     *time.Time `json:"deadline,omitempty"`
	Completed    bool       `json:"completed"`
	Type         string     `json:"type"` // e.g. weight, workout, exercise
}

// GoalUpdate carries a partial goal edit.
type GoalUpdate struct {
	Title        *string
	Description  *string
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	Deadline     *time.Time
	Completed    *bool
	Type         *string
}
