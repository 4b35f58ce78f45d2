package api

import (
	"errors"
	"net/http"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	ProfilePicture string `json:"profilePicture" binding:"omitempty,url"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse excludes sensitive info: no password ever leaves the system.
type UserResponse struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest is a partial profile edit; absent fields keep their
// stored value. Format rules live in the handler: an explicit "" is a
// clear, and tag-level omitempty would reject it on a non-nil pointer.
type UpdateUserRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	ProfilePicture *string `json:"profilePicture"`
}

// MapUserToResponse converts a domain User to a UserResponse DTO. This is
// the single redaction point for every route that returns users.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Name:           user.Name,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
	}
}

// --- Handler Methods ---

// Register creates a new account. Duplicate usernames are a conflict,
// distinct from validation failure.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	user := &domain.User{
		Username:       req.Username,
		Name:           req.Name,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	}
	user, err := h.authService.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// Login authenticates a user and returns a token plus the user details.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// Me returns the account behind the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch user")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// GetUser fetches a single user by id.
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch user")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateUser applies a partial profile edit. Username and password stay as
// registered.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	fields := make(map[string]string)
	checkOptionalFormat(fields, "email", req.Email, "email")
	checkOptionalFormat(fields, "profilePicture", req.ProfilePicture, "url")
	if len(fields) > 0 {
		abortWithFieldErrors(c, fields)
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), id, domain.UserUpdate{
		Name:           req.Name,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}
