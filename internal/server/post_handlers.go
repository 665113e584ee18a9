package server

import (
	"healthforum/internal/middleware"
	"healthforum/internal/models"
	"healthforum/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts (protected)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req struct {
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}
	if req.Title == "" {
		return fail(c, models.NewValidationError("Title is required"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		AuthorID: userID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts?tag= (public)
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext(), c.Query("tag"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id (public)
func (s *Server) GetPost(c *fiber.Ctx) error {
	id := c.Params("id")

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if post == nil {
		return fail(c, models.NewNotFoundError("post", id))
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id (protected, owner only).
// Absent body fields leave the stored value unchanged; present-but-empty
// fields overwrite.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id := c.Params("id")

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	existing, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	ownerID := ""
	if existing != nil {
		ownerID = existing.AuthorID
	}
	if authzErr := service.AuthorizeOwner("post", id, existing != nil, ownerID, userID); authzErr != nil {
		return fail(c, authzErr)
	}

	updated, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		PostID:   id,
		AuthorID: userID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return fail(c, err)
	}
	if updated == nil {
		return fail(c, models.NewNotFoundError("post", id))
	}
	return c.JSON(updated)
}

// DeletePost handles DELETE /api/posts/:id (protected, owner only)
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id := c.Params("id")

	existing, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	ownerID := ""
	if existing != nil {
		ownerID = existing.AuthorID
	}
	if authzErr := service.AuthorizeOwner("post", id, existing != nil, ownerID, userID); authzErr != nil {
		return fail(c, authzErr)
	}

	if err := s.postService.DeletePost(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LikePost handles POST /api/posts/:id/like (protected)
func (s *Server) LikePost(c *fiber.Ctx) error {
	return s.react(c, models.ReactionLike)
}

// DislikePost handles POST /api/posts/:id/dislike (protected)
func (s *Server) DislikePost(c *fiber.Ctx) error {
	return s.react(c, models.ReactionDislike)
}

func (s *Server) react(c *fiber.Ctx, kind models.ReactionKind) error {
	userID := middleware.UserID(c)
	id := c.Params("id")

	if err := s.postService.UpdateReaction(c.UserContext(), id, userID, kind); err != nil {
		return fail(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if post == nil {
		return fail(c, models.NewNotFoundError("post", id))
	}
	return c.JSON(post)
}
