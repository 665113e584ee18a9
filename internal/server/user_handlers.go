package server

import (
	"healthforum/internal/middleware"
	"healthforum/internal/models"
	"healthforum/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	if req.Email == "" || req.Password == "" || req.Username == "" {
		return fail(c, models.NewValidationError("Email, password, and username are required"))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return fail(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return fail(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return fail(c, models.NewValidationError(err.Error()))
	}

	user, err := s.userService.Register(c.UserContext(), req.Email, req.Password, req.Username)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /api/users/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, models.NewValidationError("Email and password are required"))
	}

	token, err := s.userService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}

// GetUser handles GET /api/users/:id (self-only)
func (s *Server) GetUser(c *fiber.Ctx) error {
	callerID := middleware.UserID(c)
	id := c.Params("id")

	user, err := s.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if authzErr := authorizeSelf(id, user != nil, callerID); authzErr != nil {
		return fail(c, authzErr)
	}

	return c.JSON(user)
}

// authorizeSelf applies the same not-found-before-ownership ordering as
// service.AuthorizeOwner, for the self-only user lookup.
func authorizeSelf(id string, found bool, callerID string) error {
	if !found {
		return models.NewNotFoundError("user", id)
	}
	if id != callerID {
		return models.NewForbiddenError("you can only access your own user data")
	}
	return nil
}
