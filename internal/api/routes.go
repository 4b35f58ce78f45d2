package api

import (
	"net/http"

	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler onto the engine.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
	goalService service.GoalService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)
	goalHandler := NewGoalHandler(goalService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authMiddleware, authHandler.Me)
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("/:userId", authHandler.GetUser)
			userGroup.PUT("/:userId", authHandler.UpdateUser)
			userGroup.GET("/:userId/workouts", workoutHandler.GetUserWorkouts)
			userGroup.GET("/:userId/goals", goalHandler.GetUserGoals)
		}

		exerciseGroup := apiGroup.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.GetExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		workoutGroup := apiGroup.Group("/workouts")
		{
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.GET("/:id/exercises", workoutHandler.GetWorkoutExercises)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		entryGroup := apiGroup.Group("/workout-exercises")
		{
			entryGroup.POST("", workoutHandler.CreateWorkoutExercise)
			entryGroup.PUT("/:id", workoutHandler.UpdateWorkoutExercise)
			entryGroup.DELETE("/:id", workoutHandler.DeleteWorkoutExercise)
		}

		goalGroup := apiGroup.Group("/goals")
		{
			goalGroup.GET("/:id", goalHandler.GetGoal)
			goalGroup.POST("", goalHandler.CreateGoal)
			goalGroup.PUT("/:id", goalHandler.UpdateGoal)
			goalGroup.DELETE("/:id", goalHandler.DeleteGoal)
		}
	}
}
