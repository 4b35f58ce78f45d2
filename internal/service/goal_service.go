package service

import (
	"context"
	"errors"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrGoalNotFound = errors.New("goal not found")
)

// GoalService manages user progress goals.
type GoalService interface {
	CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	GetGoalByID(ctx context.Context, id int64) (*domain.Goal, error)
	GetGoalsByUser(ctx context.Context, userID int64) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, id int64, patch domain.GoalUpdate) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, id int64) error
}

// goalService implements the GoalService interface.
type goalService struct {
	goalRepo repository.GoalRepository
	userRepo repository.UserRepository
}

// NewGoalService creates a new instance of goalService.
func NewGoalService(goalRepo repository.GoalRepository, userRepo repository.UserRepository) GoalService {
	return &goalService{goalRepo: goalRepo, userRepo: userRepo}
}

// CreateGoal stores a new goal after checking the owning user exists.
func (s *goalService) CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if _, err := s.userRepo.GetByID(ctx, goal.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	if _, err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetGoalByID retrieves a single goal.
func (s *goalService) GetGoalByID(ctx context.Context, id int64) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// GetGoalsByUser returns all goals set by a user.
func (s *goalService) GetGoalsByUser(ctx context.Context, userID int64) ([]domain.Goal, error) {
	return s.goalRepo.GetByUserID(ctx, userID)
}

// UpdateGoal merges the provided fields onto an existing goal.
func (s *goalService) UpdateGoal(ctx context.Context, id int64, patch domain.GoalUpdate) (*domain.Goal, error) {
	goal, err := s.goalRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// DeleteGoal removes a goal.
func (s *goalService) DeleteGoal(ctx context.Context, id int64) error {
	if err := s.goalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	return nil
}
