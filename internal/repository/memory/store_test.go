package memory

import (
	"context"
	"testing"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	repo := NewExerciseRepository()

	exercises, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, exercises, 6)

	wantNames := []string{"Bench Press", "Deadlift", "Squat", "Dumbbell Rows", "Overhead Press", "Pull-ups"}
	for i, ex := range exercises {
		assert.Equal(t, int64(i+1), ex.ID)
		assert.Equal(t, wantNames[i], ex.Name)
		assert.NotEmpty(t, ex.Description)
		assert.NotEmpty(t, ex.MuscleGroups)
		assert.NotEmpty(t, ex.ImageURL)
	}
}

func TestIDsAreMonotonicAndNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkoutRepository()

	for i := 1; i <= 3; i++ {
		w := &domain.Workout{UserID: 1, Name: "W", Type: "Strength", Date: time.Now()}
		id, err := repo.Create(ctx, w)
		require.NoError(t, err)
		assert.Equal(t, int64(i), id)
		assert.Equal(t, int64(i), w.ID)
	}

	// Deleting the latest record must not free its id for reuse.
	require.NoError(t, repo.Delete(ctx, 3))

	id, err := repo.Create(ctx, &domain.Workout{UserID: 1, Name: "W4", Type: "Cardio", Date: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestCreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	created := &domain.User{
		Username:     "alex",
		PasswordHash: "hash",
		Name:         "Alex",
		Email:        "alex@example.com",
	}
	id, err := repo.Create(ctx, created)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateIsAMergeNotAReplace(t *testing.T) {
	ctx := context.Background()
	repo := NewExerciseRepository()

	name := "Incline Bench Press"
	updated, err := repo.Update(ctx, 1, domain.ExerciseUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Incline Bench Press", updated.Name)
	// Untouched fields keep their seeded values.
	assert.Equal(t, "Chest, Triceps, Shoulders", updated.MuscleGroups)
	assert.NotEmpty(t, updated.Description)
	assert.NotEmpty(t, updated.ImageURL)
}

func TestUpdateMissNeverCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository()

	title := "ghost"
	_, err := repo.Update(ctx, 42, domain.GoalUpdate{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteIsIdempotentInEffect(t *testing.T) {
	ctx := context.Background()
	repo := NewExerciseRepository()

	assert.ErrorIs(t, repo.Delete(ctx, 99), repository.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, 2))
	assert.ErrorIs(t, repo.Delete(ctx, 2), repository.ErrNotFound)
}

func TestWorkoutsScopedByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkoutRepository()

	for _, userID := range []int64{7, 8, 7} {
		_, err := repo.Create(ctx, &domain.Workout{UserID: userID, Name: "W", Type: "Strength", Date: time.Now()})
		require.NoError(t, err)
	}

	mine, err := repo.GetByUserID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(1), mine[0].ID)
	assert.Equal(t, int64(3), mine[1].ID)

	none, err := repo.GetByUserID(ctx, 9)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestWorkoutExercisesScopedByWorkout(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkoutExerciseRepository()

	for _, workoutID := range []int64{1, 2, 1} {
		_, err := repo.Create(ctx, &domain.WorkoutExercise{WorkoutID: workoutID, ExerciseID: 3, Sets: 4, Reps: 8})
		require.NoError(t, err)
	}

	entries, err := repo.GetByWorkoutID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, int64(3), entries[1].ID)
}

func TestGoalsScopedByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository()

	_, err := repo.Create(ctx, &domain.Goal{UserID: 1, Title: "Bench 100kg", TargetValue: 100, Unit: "kg", Type: "weight"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Goal{UserID: 2, Title: "Run 10k", TargetValue: 10, Unit: "km", Type: "distance"})
	require.NoError(t, err)

	goals, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Bench 100kg", goals[0].Title)
}

func TestGetByUsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Create(ctx, &domain.User{Username: "alex", PasswordHash: "h", Name: "Alex"})
	require.NoError(t, err)

	found, err := repo.GetByUsername(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, "Alex", found.Name)

	_, err = repo.GetByUsername(ctx, "Alex")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
