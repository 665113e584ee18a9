package server

import (
	"healthforum/internal/middleware"
	"healthforum/internal/models"
	"healthforum/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/:postId/comments (protected)
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	postID := c.Params("postId")

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}
	if req.Content == "" {
		return fail(c, models.NewValidationError("Content is required"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		PostID:   postID,
		AuthorID: userID,
		Content:  req.Content,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/posts/:postId/comments (public)
func (s *Server) GetComments(c *fiber.Ctx) error {
	comments, err := s.commentService.ListComments(c.UserContext(), c.Params("postId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(comments)
}

// DeleteComment handles DELETE /api/posts/:postId/comments/:commentId
// (protected, owner only). A comment under a different post than the one in
// the path is treated as not found.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	postID := c.Params("postId")
	commentID := c.Params("commentId")

	comment, err := s.commentService.GetComment(c.UserContext(), commentID)
	if err != nil {
		return fail(c, err)
	}
	found := comment != nil && comment.PostID == postID
	ownerID := ""
	if found {
		ownerID = comment.AuthorID
	}
	if authzErr := service.AuthorizeOwner("comment", commentID, found, ownerID, userID); authzErr != nil {
		return fail(c, authzErr)
	}

	if err := s.commentService.DeleteComment(c.UserContext(), postID, commentID); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
