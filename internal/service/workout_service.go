package service

import (
	"context"
	"errors"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound      = errors.New("workout not found")
	ErrWorkoutEntryNotFound = errors.New("workout exercise not found")

	// Referential errors: a create (or re-pointing update) named an id that
	// does not exist in the referenced store. Handlers surface these as
	// field validation failures.
	ErrUnknownUser     = errors.New("referenced user does not exist")
	ErrUnknownWorkout  = errors.New("referenced workout does not exist")
	ErrUnknownExercise = errors.New("referenced exercise does not exist")
)

// WorkoutService manages workouts and the exercise entries logged in them.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	GetWorkoutByID(ctx context.Context, id int64) (*domain.Workout, error)
	GetWorkoutsByUser(ctx context.Context, userID int64) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, id int64, patch domain.WorkoutUpdate) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) error

	AddWorkoutExercise(ctx context.Context, entry *domain.WorkoutExercise) (*domain.WorkoutExercise, error)
	GetWorkoutExercises(ctx context.Context, workoutID int64) ([]domain.WorkoutExerciseDetail, error)
	UpdateWorkoutExercise(ctx context.Context, id int64, patch domain.WorkoutExerciseUpdate) (*domain.WorkoutExercise, error)
	DeleteWorkoutExercise(ctx context.Context, id int64) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	entryRepo    repository.WorkoutExerciseRepository
	exerciseRepo repository.ExerciseRepository
	userRepo     repository.UserRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	entryRepo repository.WorkoutExerciseRepository,
	exerciseRepo repository.ExerciseRepository,
	userRepo repository.UserRepository,
) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		entryRepo:    entryRepo,
		exerciseRepo: exerciseRepo,
		userRepo:     userRepo,
	}
}

// CreateWorkout stores a new workout after checking the owning user exists.
func (s *workoutService) CreateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if _, err := s.userRepo.GetByID(ctx, workout.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// GetWorkoutByID retrieves a single workout.
func (s *workoutService) GetWorkoutByID(ctx context.Context, id int64) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// GetWorkoutsByUser returns all workouts logged by a user.
func (s *workoutService) GetWorkoutsByUser(ctx context.Context, userID int64) ([]domain.Workout, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

// UpdateWorkout merges the provided fields onto an existing workout.
func (s *workoutService) UpdateWorkout(ctx context.Context, id int64, patch domain.WorkoutUpdate) (*domain.Workout, error) {
	workout, err := s.workoutRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// DeleteWorkout removes a workout. Its entries are left in place; they
// simply no longer show up under any workout listing.
func (s *workoutService) DeleteWorkout(ctx context.Context, id int64) error {
	if err := s.workoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

// AddWorkoutExercise logs an exercise into a workout after checking both
// referenced records exist.
func (s *workoutService) AddWorkoutExercise(ctx context.Context, entry *domain.WorkoutExercise) (*domain.WorkoutExercise, error) {
	if err := s.checkEntryRefs(ctx, entry.WorkoutID, entry.ExerciseID); err != nil {
		return nil, err
	}
	if _, err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetWorkoutExercises lists a workout's entries, each enriched with its
// referenced exercise. A dangling exercise reference leaves the nested
// field empty rather than failing the listing.
func (s *workoutService) GetWorkoutExercises(ctx context.Context, workoutID int64) ([]domain.WorkoutExerciseDetail, error) {
	entries, err := s.entryRepo.GetByWorkoutID(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	details := make([]domain.WorkoutExerciseDetail, 0, len(entries))
	for _, entry := range entries {
		detail := domain.WorkoutExerciseDetail{WorkoutExercise: entry}
		if exercise, err := s.exerciseRepo.GetByID(ctx, entry.ExerciseID); err == nil {
			detail.Exercise = exercise
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// UpdateWorkoutExercise merges the provided fields onto an existing entry.
// Foreign keys are re-checked when the patch re-points them.
func (s *workoutService) UpdateWorkoutExercise(ctx context.Context, id int64, patch domain.WorkoutExerciseUpdate) (*domain.WorkoutExercise, error) {
	if patch.WorkoutID != nil {
		if _, err := s.workoutRepo.GetByID(ctx, *patch.WorkoutID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUnknownWorkout
			}
			return nil, err
		}
	}
	if patch.ExerciseID != nil {
		if _, err := s.exerciseRepo.GetByID(ctx, *patch.ExerciseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUnknownExercise
			}
			return nil, err
		}
	}

	entry, err := s.entryRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// DeleteWorkoutExercise removes a workout entry.
func (s *workoutService) DeleteWorkoutExercise(ctx context.Context, id int64) error {
	if err := s.entryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutEntryNotFound
		}
		return err
	}
	return nil
}

func (s *workoutService) checkEntryRefs(ctx context.Context, workoutID, exerciseID int64) error {
	if _, err := s.workoutRepo.GetByID(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownWorkout
		}
		return err
	}
	if _, err := s.exerciseRepo.GetByID(ctx, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownExercise
		}
		return err
	}
	return nil
}
