package api

import (
	"errors"
	"net/http"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency. It covers both
// workouts and the exercise entries logged in them.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type CreateWorkoutRequest struct {
	UserID   int64     `json:"userId" binding:"required"`
	Name     string    `json:"name" binding:"required"`
	Type     string    `json:"type" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Duration int       `json:"duration" binding:"omitempty,gt=0"`
	Notes    string    `json:"notes" binding:"omitempty"`
}

type UpdateWorkoutRequest struct {
	Name     *string    `json:"name" binding:"omitempty"`
	Type     *string    `json:"type" binding:"omitempty"`
	Date     *time.Time `json:"date" binding:"omitempty"`
	Duration *int       `json:"duration" binding:"omitempty,gt=0"`
	Notes    *string    `json:"notes" binding:"omitempty"`
}

type CreateWorkoutExerciseRequest struct {
	WorkoutID  int64   `json:"workoutId" binding:"required"`
	ExerciseID int64   `json:"exerciseId" binding:"required"`
	Sets       int     `json:"sets" binding:"required,gt=0"`
	Reps       int     `json:"reps" binding:"required,gt=0"`
	Weight     float64 `json:"weight" binding:"omitempty,gt=0"`
	Duration   int     `json:"duration" binding:"omitempty,gt=0"`
	Notes      string  `json:"notes" binding:"omitempty"`
}

type UpdateWorkoutExerciseRequest struct {
	WorkoutID  *int64   `json:"workoutId" binding:"omitempty,gt=0"`
	ExerciseID *int64   `json:"exerciseId" binding:"omitempty,gt=0"`
	Sets       *int     `json:"sets" binding:"omitempty,gt=0"`
	Reps       *int     `json:"reps" binding:"omitempty,gt=0"`
	Weight     *float64 `json:"weight" binding:"omitempty,gt=0"`
	Duration   *int     `json:"duration" binding:"omitempty,gt=0"`
	Notes      *string  `json:"notes" binding:"omitempty"`
}

// abortWithReferenceError maps a dangling-reference service error onto the
// field that carried the bad id.
func abortWithReferenceError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrUnknownUser):
		abortWithFieldErrors(c, map[string]string{"userId": err.Error()})
	case errors.Is(err, service.ErrUnknownWorkout):
		abortWithFieldErrors(c, map[string]string{"workoutId": err.Error()})
	case errors.Is(err, service.ErrUnknownExercise):
		abortWithFieldErrors(c, map[string]string{"exerciseId": err.Error()})
	default:
		return false
	}
	return true
}

// --- Workout Handler Methods ---

// GetUserWorkouts lists all workouts logged by a user.
func (h *WorkoutHandler) GetUserWorkouts(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	workouts, err := h.workoutService.GetWorkoutsByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns a single workout.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	workout, err := h.workoutService.GetWorkoutByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout logs a new workout for a user.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), &domain.Workout{
		UserID:   req.UserID,
		Name:     req.Name,
		Type:     req.Type,
		Date:     req.Date,
		Duration: req.Duration,
		Notes:    req.Notes,
	})
	if err != nil {
		if !abortWithReferenceError(c, err) {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout")
		}
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout applies a partial edit to a workout.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), id, domain.WorkoutUpdate{
		Name:     req.Name,
		Type:     req.Type,
		Date:     req.Date,
		Duration: req.Duration,
		Notes:    req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes a workout.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// --- WorkoutExercise Handler Methods ---

// GetWorkoutExercises lists the entries of a workout, each enriched with
// its referenced exercise.
func (h *WorkoutHandler) GetWorkoutExercises(c *gin.Context) {
	workoutID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.workoutService.GetWorkoutExercises(c.Request.Context(), workoutID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout exercises")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateWorkoutExercise logs an exercise into a workout.
func (h *WorkoutHandler) CreateWorkoutExercise(c *gin.Context) {
	var req CreateWorkoutExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	entry, err := h.workoutService.AddWorkoutExercise(c.Request.Context(), &domain.WorkoutExercise{
		WorkoutID:  req.WorkoutID,
		ExerciseID: req.ExerciseID,
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
		Duration:   req.Duration,
		Notes:      req.Notes,
	})
	if err != nil {
		if !abortWithReferenceError(c, err) {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout exercise")
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateWorkoutExercise applies a partial edit to a workout entry.
func (h *WorkoutHandler) UpdateWorkoutExercise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateWorkoutExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	entry, err := h.workoutService.UpdateWorkoutExercise(c.Request.Context(), id, domain.WorkoutExerciseUpdate{
		WorkoutID:  req.WorkoutID,
		ExerciseID: req.ExerciseID,
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
		Duration:   req.Duration,
		Notes:      req.Notes,
	})
	if err != nil {
		if abortWithReferenceError(c, err) {
			return
		}
		if errors.Is(err, service.ErrWorkoutEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout exercise")
		}
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteWorkoutExercise removes a workout entry.
func (h *WorkoutHandler) DeleteWorkoutExercise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkoutExercise(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrWorkoutEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout exercise")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
