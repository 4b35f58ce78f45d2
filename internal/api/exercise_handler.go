package api

import (
	"errors"
	"net/http"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description" binding:"omitempty"`
	MuscleGroups string `json:"muscleGroups" binding:"omitempty"`
	ImageURL     string `json:"imageUrl" binding:"omitempty,url"`
}

// UpdateExerciseRequest is the partial variant: any subset of fields. The
// url rule is applied in the handler so an explicit "" can clear the image.
type UpdateExerciseRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	MuscleGroups *string `json:"muscleGroups"`
	ImageURL     *string `json:"imageUrl"`
}

// --- Handler Methods ---

// GetExercises returns the whole catalog.
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	exercises, err := h.exerciseService.GetExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise returns a single catalog entry.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise")
		}
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// CreateExercise adds a catalog entry.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), &domain.Exercise{
		Name:         req.Name,
		Description:  req.Description,
		MuscleGroups: req.MuscleGroups,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create exercise")
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// UpdateExercise applies a partial edit to a catalog entry.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	fields := make(map[string]string)
	checkOptionalFormat(fields, "imageUrl", req.ImageURL, "url")
	if len(fields) > 0 {
		abortWithFieldErrors(c, fields)
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), id, domain.ExerciseUpdate{
		Name:         req.Name,
		Description:  req.Description,
		MuscleGroups: req.MuscleGroups,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise")
		}
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise removes a catalog entry.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
