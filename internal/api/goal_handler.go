package api

import (
	"errors"
	"net/http"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler holds the goal service dependency.
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// --- DTOs ---

type CreateGoalRequest struct {
	UserID       int64      `json:"userId" binding:"required"`
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description" binding:"omitempty"`
	TargetValue  float64    `json:"targetValue" binding:"required,gt=0"`
	CurrentValue float64    `json:"currentValue" binding:"omitempty"` // Defaults to 0
	Unit         string     `json:"unit" binding:"required"`
	Deadline     *time.Time `json:"deadline" binding:"omitempty"`
	Completed    bool       `json:"completed"` // Defaults to false
	Type         string     `json:"type" binding:"required"`
}

type UpdateGoalRequest struct {
	Title        *string    `json:"title" binding:"omitempty"`
	Description  *string    `json:"description" binding:"omitempty"`
	TargetValue  *float64   `json:"targetValue" binding:"omitempty,gt=0"`
	CurrentValue *float64   `json:"currentValue" binding:"omitempty"`
	Unit         *string    `json:"unit" binding:"omitempty"`
	Deadline     *time.Time `json:"deadline" binding:"omitempty"`
	Completed    *bool      `json:"completed" binding:"omitempty"`
	Type         *string    `json:"type" binding:"omitempty"`
}

// --- Handler Methods ---

// GetUserGoals lists all goals set by a user.
func (h *GoalHandler) GetUserGoals(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	goals, err := h.goalService.GetGoalsByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve goals")
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GetGoal returns a single goal.
func (h *GoalHandler) GetGoal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	goal, err := h.goalService.GetGoalByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve goal")
		}
		return
	}
	c.JSON(http.StatusOK, goal)
}

// CreateGoal sets a new goal for a user.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), &domain.Goal{
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Deadline:     req.Deadline,
		Completed:    req.Completed,
		Type:         req.Type,
	})
	if err != nil {
		if !abortWithReferenceError(c, err) {
			abortWithError(c, http.StatusInternalServerError, "Failed to create goal")
		}
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// UpdateGoal applies a partial edit to a goal, typically advancing
// currentValue or flipping completed.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), id, domain.GoalUpdate{
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Deadline:     req.Deadline,
		Completed:    req.Completed,
		Type:         req.Type,
	})
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update goal")
		}
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteGoal removes a goal.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete goal")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
