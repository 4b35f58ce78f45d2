package service

import (
	"context"
	"testing"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
	"fittrack/fitness-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workoutFixture struct {
	svc          WorkoutService
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

func newWorkoutFixture() (workoutFixture, context.Context) {
	userRepo := memory.NewUserRepository()
	exerciseRepo := memory.NewExerciseRepository()
	svc := NewWorkoutService(memory.NewWorkoutRepository(), memory.NewWorkoutExerciseRepository(), exerciseRepo, userRepo)
	return workoutFixture{svc: svc, userRepo: userRepo, exerciseRepo: exerciseRepo}, context.Background()
}

func (f workoutFixture) createUser(ctx context.Context, t *testing.T) int64 {
	t.Helper()
	id, err := f.userRepo.Create(ctx, &domain.User{Username: "u1", PasswordHash: "h", Name: "U One"})
	require.NoError(t, err)
	return id
}

func TestCreateWorkoutChecksUserExists(t *testing.T) {
	f, ctx := newWorkoutFixture()

	_, err := f.svc.CreateWorkout(ctx, &domain.Workout{UserID: 99, Name: "Leg Day", Type: "Strength", Date: time.Now()})
	assert.ErrorIs(t, err, ErrUnknownUser)

	userID := f.createUser(ctx, t)
	workout, err := f.svc.CreateWorkout(ctx, &domain.Workout{UserID: userID, Name: "Leg Day", Type: "Strength", Date: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), workout.ID)
}

func TestAddWorkoutExerciseChecksReferences(t *testing.T) {
	f, ctx := newWorkoutFixture()
	userID := f.createUser(ctx, t)

	workout, err := f.svc.CreateWorkout(ctx, &domain.Workout{UserID: userID, Name: "Leg Day", Type: "Strength", Date: time.Now()})
	require.NoError(t, err)

	_, err = f.svc.AddWorkoutExercise(ctx, &domain.WorkoutExercise{WorkoutID: 99, ExerciseID: 3, Sets: 4, Reps: 8})
	assert.ErrorIs(t, err, ErrUnknownWorkout)

	_, err = f.svc.AddWorkoutExercise(ctx, &domain.WorkoutExercise{WorkoutID: workout.ID, ExerciseID: 99, Sets: 4, Reps: 8})
	assert.ErrorIs(t, err, ErrUnknownExercise)

	entry, err := f.svc.AddWorkoutExercise(ctx, &domain.WorkoutExercise{WorkoutID: workout.ID, ExerciseID: 3, Sets: 4, Reps: 8, Weight: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
}

func TestGetWorkoutExercisesEnrichesWithExercise(t *testing.T) {
	f, ctx := newWorkoutFixture()
	userID := f.createUser(ctx, t)

	workout, err := f.svc.CreateWorkout(ctx, &domain.Workout{UserID: userID, Name: "Leg Day", Type: "Strength", Date: time.Now()})
	require.NoError(t, err)

	_, err = f.svc.AddWorkoutExercise(ctx, &domain.WorkoutExercise{WorkoutID: workout.ID, ExerciseID: 3, Sets: 4, Reps: 8})
	require.NoError(t, err)

	details, err := f.svc.GetWorkoutExercises(ctx, workout.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.NotNil(t, details[0].Exercise)
	assert.Equal(t, "Squat", details[0].Exercise.Name)
}

func TestGetWorkoutExercisesToleratesDanglingExercise(t *testing.T) {
	f, ctx := newWorkoutFixture()
	userID := f.createUser(ctx, t)

	workout, err := f.svc.CreateWorkout(ctx, &domain.Workout{UserID: userID, Name: "Leg Day", Type: "Strength", Date: time.Now()})
	require.NoError(t, err)

	_, err = f.svc.AddWorkoutExercise(ctx, &domain.WorkoutExercise{WorkoutID: workout.ID, ExerciseID: 3, Sets: 4, Reps: 8})
	require.NoError(t, err)

	// Delete the referenced exercise out from under the entry.
	require.NoError(t, f.exerciseRepo.Delete(ctx, 3))

	details, err := f.svc.GetWorkoutExercises(ctx, workout.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Nil(t, details[0].Exercise)
}

func TestUpdateWorkoutExerciseRechecksRepointedRefs(t *testing.T) {
	f, ctx := newWorkoutFixture()
	userID := f.createUser(ctx, t)

	workout, err := f.svc.CreateWorkout(ctx, &domain.Workout{UserID: userID, Name: "Leg Day", Type: "Strength", Date: time.Now()})
	require.NoError(t, err)

	entry, err := f.svc.AddWorkoutExercise(ctx, &domain.WorkoutExercise{WorkoutID: workout.ID, ExerciseID: 3, Sets: 4, Reps: 8})
	require.NoError(t, err)

	badExercise := int64(99)
	_, err = f.svc.UpdateWorkoutExercise(ctx, entry.ID, domain.WorkoutExerciseUpdate{ExerciseID: &badExercise})
	assert.ErrorIs(t, err, ErrUnknownExercise)

	sets := 5
	updated, err := f.svc.UpdateWorkoutExercise(ctx, entry.ID, domain.WorkoutExerciseUpdate{Sets: &sets})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Sets)
	assert.Equal(t, 8, updated.Reps)
}
