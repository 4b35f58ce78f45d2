package memory

import (
	"context"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
)

// goalRepository implements repository.GoalRepository
type goalRepository struct {
	store *store[domain.Goal]
}

// NewGoalRepository creates a new in-memory Goal repository.
func NewGoalRepository() repository.GoalRepository {
	return &goalRepository{store: newStore[domain.Goal]()}
}

// Create stores a new goal and assigns its id.
func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) (int64, error) {
	id := r.store.insert(*goal, func(g *domain.Goal, id int64) { g.ID = id })
	goal.ID = id
	return id, nil
}

// GetByID retrieves a goal by its id.
func (r *goalRepository) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	goal, ok := r.store.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &goal, nil
}

// GetByUserID returns all goals set by a user, ordered by ascending id.
// No matches yields an empty slice.
func (r *goalRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Goal, error) {
	return r.store.filter(func(g domain.Goal) bool { return g.UserID == userID }), nil
}

// Update merges the provided fields onto the stored goal. CurrentValue is
// stored as given; clamping to TargetValue is a client convention.
func (r *goalRepository) Update(ctx context.Context, id int64, patch domain.GoalUpdate) (*domain.Goal, error) {
	goal, ok := r.store.update(id, func(g *domain.Goal) {
		if patch.Title != nil {
			g.Title = *patch.Title
		}
		if patch.Description != nil {
			g.Description = *patch.Description
		}
		if patch.TargetValue != nil {
			g.TargetValue = *patch.TargetValue
		}
		if patch.CurrentValue != nil {
			g.CurrentValue = *patch.CurrentValue
		}
		if patch.Unit != nil {
			g.Unit = *patch.Unit
		}
		if patch.Deadline != nil {
			g.Deadline = patch.Deadline
		}
		if patch.Completed != nil {
			g.Completed = *patch.Completed
		}
		if patch.Type != nil {
			g.Type = *patch.Type
		}
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &goal, nil
}

// Delete removes a goal. Deleting an unknown id yields ErrNotFound.
func (r *goalRepository) Delete(ctx context.Context, id int64) error {
	if !r.store.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
