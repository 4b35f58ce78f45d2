package memory

import (
	"context"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
)

// workoutRepository implements repository.WorkoutRepository
type workoutRepository struct {
	store *store[domain.Workout]
}

// NewWorkoutRepository creates a new in-memory Workout repository.
func NewWorkoutRepository() repository.WorkoutRepository {
	return &workoutRepository{store: newStore[domain.Workout]()}
}

// Create stores a new workout and assigns its id.
func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) (int64, error) {
	id := r.store.insert(*workout, func(w *domain.Workout, id int64) { w.ID = id })
	workout.ID = id
	return id, nil
}

// GetByID retrieves a workout by its id.
func (r *workoutRepository) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	workout, ok := r.store.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &workout, nil
}

// GetByUserID returns all workouts logged by a user, ordered by ascending
// id. No matches yields an empty slice.
func (r *workoutRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Workout, error) {
	return r.store.filter(func(w domain.Workout) bool { return w.UserID == userID }), nil
}

// Update merges the provided fields onto the stored workout.
func (r *workoutRepository) Update(ctx context.Context, id int64, patch domain.WorkoutUpdate) (*domain.Workout, error) {
	workout, ok := r.store.update(id, func(w *domain.Workout) {
		if patch.Name != nil {
			w.Name = *patch.Name
		}
		if patch.Type != nil {
			w.Type = *patch.Type
		}
		if patch.Date != nil {
			w.Date = *patch.Date
		}
		if patch.Duration != nil {
			w.Duration = *patch.Duration
		}
		if patch.Notes != nil {
			w.Notes = *patch.Notes
		}
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &workout, nil
}

// Delete removes a workout. Deleting an unknown id yields ErrNotFound.
func (r *workoutRepository) Delete(ctx context.Context, id int64) error {
	if !r.store.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
