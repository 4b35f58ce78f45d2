package service

import (
	"context"
	"errors"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

// ExerciseService manages the exercise catalog.
type ExerciseService interface {
	CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id int64) (*domain.Exercise, error)
	GetExercises(ctx context.Context) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, id int64, patch domain.ExerciseUpdate) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id int64) error
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

// CreateExercise stores a new catalog entry.
func (s *exerciseService) CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// GetExerciseByID retrieves a single exercise.
func (s *exerciseService) GetExerciseByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// GetExercises returns the whole catalog.
func (s *exerciseService) GetExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetAll(ctx)
}

// UpdateExercise merges the provided fields onto an existing exercise.
func (s *exerciseService) UpdateExercise(ctx context.Context, id int64, patch domain.ExerciseUpdate) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// DeleteExercise removes a catalog entry.
func (s *exerciseService) DeleteExercise(ctx context.Context, id int64) error {
	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
