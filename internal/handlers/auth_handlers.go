package handlers

import (
	"errors"
	"log"
	"net/http"

	"talenthub/internal/common"
	"talenthub/internal/repositories"
	"talenthub/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles authentication-related HTTP requests
type AuthHandlers struct {
	authService services.AuthService
	userRepo    repositories.UserRepository
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService services.AuthService, userRepo repositories.UserRepository) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		userRepo:    userRepo,
	}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) validate() []common.FieldError {
	var errs []common.FieldError
	if !common.RequiredString(r.Name) {
		errs = append(errs, common.FieldError{Field: "name", Message: "Name is required"})
	}
	if !common.ValidEmail(r.Email) {
		errs = append(errs, common.FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, common.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	return errs
}

// Register handles user registration
func (h *AuthHandlers) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if errs := req.validate(); len(errs) > 0 {
		return common.SendValidationErrors(c, errs)
	}

	user, token, err := h.authService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return common.SendClientError(c, "User with this email already exists")
		}
		log.Printf("Register error: %v", err)
		return common.SendServerError(c, "Error registering user")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"status": "success",
		"data": echo.Map{
			"user":  user,
			"token": token,
		},
	})
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login with email and password. Unknown email and wrong
// password produce the same response.
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if req.Email == "" || req.Password == "" {
		return common.SendClientError(c, "Email and password are required")
	}

	user, token, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return common.SendUnauthorizedError(c, "Invalid email or password")
		}
		log.Printf("Login error: %v", err)
		return common.SendServerError(c, "Error logging in")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"data": echo.Map{
			"user":  user,
			"token": token,
		},
	})
}

// Me handles getting the current user's profile
func (h *AuthHandlers) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return common.SendNotFoundError(c, "User not found")
		}
		log.Printf("Get current user error: %v", err)
		return common.SendServerError(c, "Error fetching user")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"data": echo.Map{
			"user": user,
		},
	})
}
