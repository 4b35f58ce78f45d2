package memory

import (
	"context"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
)

// seedExercises is the fixed catalog installed on startup. Seeding goes
// through the normal Create path so the entries occupy ids 1-6.
var seedExercises = []domain.Exercise{
	{
		Name:         "Bench Press",
		Description:  "A compound exercise that primarily targets the chest muscles, but also engages the shoulders and triceps.",
		MuscleGroups: "Chest, Triceps, Shoulders",
		ImageURL:     "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?w=600&auto=format&fit=crop&q=80",
	},
	{
		Name:         "Deadlift",
		Description:  "A compound exercise that works the entire posterior chain, including the lower back, glutes, and hamstrings.",
		MuscleGroups: "Back, Hamstrings, Glutes",
		ImageURL:     "https://images.unsplash.com/photo-1600026453249-be3e4f44e7f0?w=600&auto=format&fit=crop&q=80",
	},
	{
		Name:         "Squat",
		Description:  "A fundamental compound exercise that primarily targets the quads, glutes, and core.",
		MuscleGroups: "Quads, Glutes, Core",
		ImageURL:     "https://images.unsplash.com/photo-1534258936925-c58bed479fcb?w=600&auto=format&fit=crop&q=80",
	},
	{
		Name:         "Dumbbell Rows",
		Description:  "An isolation exercise that targets the upper back and lats.",
		MuscleGroups: "Back, Biceps",
		ImageURL:     "https://images.unsplash.com/photo-1541534741688-6078c6bfb5c5?w=600&auto=format&fit=crop&q=80",
	},
	{
		Name:         "Overhead Press",
		Description:  "A compound exercise that primarily targets the shoulders but also engages the triceps and upper chest.",
		MuscleGroups: "Shoulders, Triceps",
		ImageURL:     "https://images.unsplash.com/photo-1598575285675-d0d3d0358e55?w=600&auto=format&fit=crop&q=80",
	},
	{
		Name:         "Pull-ups",
		Description:  "A compound bodyweight exercise that targets the back, biceps, and shoulders.",
		MuscleGroups: "Back, Biceps, Shoulders",
		ImageURL:     "https://images.unsplash.com/photo-1598971639058-efc302d5704b?w=600&auto=format&fit=crop&q=80",
	},
}

// exerciseRepository implements repository.ExerciseRepository
type exerciseRepository struct {
	store *store[domain.Exercise]
}

// NewExerciseRepository creates a new in-memory Exercise repository
// pre-populated with the seed catalog.
func NewExerciseRepository() repository.ExerciseRepository {
	r := &exerciseRepository{store: newStore[domain.Exercise]()}
	for _, ex := range seedExercises {
		r.Create(context.Background(), &ex)
	}
	return r
}

// Create stores a new exercise and assigns its id.
func (r *exerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (int64, error) {
	id := r.store.insert(*exercise, func(e *domain.Exercise, id int64) { e.ID = id })
	exercise.ID = id
	return id, nil
}

// GetByID retrieves an exercise by its id.
func (r *exerciseRepository) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	exercise, ok := r.store.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &exercise, nil
}

// GetAll returns the whole catalog ordered by ascending id.
func (r *exerciseRepository) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	return r.store.all(), nil
}

// Update merges the provided fields onto the stored exercise.
func (r *exerciseRepository) Update(ctx context.Context, id int64, patch domain.ExerciseUpdate) (*domain.Exercise, error) {
	exercise, ok := r.store.update(id, func(e *domain.Exercise) {
		if patch.Name != nil {
			e.Name = *patch.Name
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.MuscleGroups != nil {
			e.MuscleGroups = *patch.MuscleGroups
		}
		if patch.ImageURL != nil {
			e.ImageURL = *patch.ImageURL
		}
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &exercise, nil
}

// Delete removes an exercise. Deleting an unknown id yields ErrNotFound.
func (r *exerciseRepository) Delete(ctx context.Context, id int64) error {
	if !r.store.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
