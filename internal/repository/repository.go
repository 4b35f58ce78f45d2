package repository

import (
	"context"

	"fittrack/fitness-tracker/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByUsername does a case-sensitive exact match; it backs both login
	// and the duplicate-registration check.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserUpdate) (*domain.User, error)
}

// ExerciseRepository defines the interface for interacting with the
// exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, id int64, patch domain.ExerciseUpdate) (*domain.Exercise, error)
	Delete(ctx context.Context, id int64) error
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Workout, error)
	Update(ctx context.Context, id int64, patch domain.WorkoutUpdate) (*domain.Workout, error)
	Delete(ctx context.Context, id int64) error
}

// WorkoutExerciseRepository defines the interface for the workout/exercise
// join records.
type WorkoutExerciseRepository interface {
	Create(ctx context.Context, entry *domain.WorkoutExercise) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkoutExercise, error)
	GetByWorkoutID(ctx context.Context, workoutID int64) ([]domain.WorkoutExercise, error)
	Update(ctx context.Context, id int64, patch domain.WorkoutExerciseUpdate) (*domain.WorkoutExercise, error)
	Delete(ctx context.Context, id int64) error
}

// GoalRepository defines the interface for interacting with goal data.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Goal, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Goal, error)
	Update(ctx context.Context, id int64, patch domain.GoalUpdate) (*domain.Goal, error)
	Delete(ctx context.Context, id int64) error
}
