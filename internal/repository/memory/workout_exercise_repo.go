package memory

import (
	"context"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
)

// workoutExerciseRepository implements repository.WorkoutExerciseRepository
type workoutExerciseRepository struct {
	store *store[domain.WorkoutExercise]
}

// NewWorkoutExerciseRepository creates a new in-memory WorkoutExercise
// repository.
func NewWorkoutExerciseRepository() repository.WorkoutExerciseRepository {
	return &workoutExerciseRepository{store: newStore[domain.WorkoutExercise]()}
}

// Create stores a new workout entry and assigns its id.
func (r *workoutExerciseRepository) Create(ctx context.Context, entry *domain.WorkoutExercise) (int64, error) {
	id := r.store.insert(*entry, func(we *domain.WorkoutExercise, id int64) { we.ID = id })
	entry.ID = id
	return id, nil
}

// GetByID retrieves a workout entry by its id.
func (r *workoutExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.WorkoutExercise, error) {
	entry, ok := r.store.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &entry, nil
}

// GetByWorkoutID returns all entries belonging to a workout, ordered by
// ascending id. No matches yields an empty slice.
func (r *workoutExerciseRepository) GetByWorkoutID(ctx context.Context, workoutID int64) ([]domain.WorkoutExercise, error) {
	return r.store.filter(func(we domain.WorkoutExercise) bool { return we.WorkoutID == workoutID }), nil
}

// Update merges the provided fields onto the stored entry.
func (r *workoutExerciseRepository) Update(ctx context.Context, id int64, patch domain.WorkoutExerciseUpdate) (*domain.WorkoutExercise, error) {
	entry, ok := r.store.update(id, func(we *domain.WorkoutExercise) {
		if patch.WorkoutID != nil {
			we.WorkoutID = *patch.WorkoutID
		}
		if patch.ExerciseID != nil {
			we.ExerciseID = *patch.ExerciseID
		}
		if patch.Sets != nil {
			we.Sets = *patch.Sets
		}
		if patch.Reps != nil {
			we.Reps = *patch.Reps
		}
		if patch.Weight != nil {
			we.Weight = *patch.Weight
		}
		if patch.Duration != nil {
			we.Duration = *patch.Duration
		}
		if patch.Notes != nil {
			we.Notes = *patch.Notes
		}
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &entry, nil
}

// Delete removes a workout entry. Deleting an unknown id yields ErrNotFound.
func (r *workoutExerciseRepository) Delete(ctx context.Context, id int64) error {
	if !r.store.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
