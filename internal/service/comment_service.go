package service

import (
	"context"
	"log/slog"
	"time"

	"healthforum/internal/models"
	"healthforum/internal/observability"
	"healthforum/internal/repository"

	"github.com/google/uuid"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

type CreateCommentInput struct {
	PostID   string
	AuthorID string
	Content  string
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment persists a new comment keyed by (postId, id). PostID and
// AuthorID are trusted as already derived from the authenticated session and
// path by the caller.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    in.PostID,
		ID:        uuid.NewString(),
		AuthorID:  in.AuthorID,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commentRepo.Save(ctx, comment); err != nil {
		return nil, err
	}

	observability.GlobalLogger.InfoContext(ctx, "comment created",
		slog.String("comment_id", comment.ID), slog.String("post_id", in.PostID))
	return comment, nil
}

// ListComments returns every comment under the given post. An empty slice is
// a valid, non-error result.
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// GetComment returns the comment, or (nil, nil) when it does not exist.
func (s *CommentService) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// DeleteComment deletes the comment only when the loaded record's postId
// matches the supplied one; on absence or mismatch it silently no-ops. A
// storage fault from the attempted delete propagates unfiltered.
func (s *CommentService) DeleteComment(ctx context.Context, postID, id string) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil || comment.PostID != postID {
		observability.GlobalLogger.WarnContext(ctx, "comment not found for deletion",
			slog.String("comment_id", id), slog.String("post_id", postID))
		return nil
	}
	return s.commentRepo.Delete(ctx, postID, id)
}
