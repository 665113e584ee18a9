// Package service implements the forum's service layer: input validation,
// entity invariants, and translation of operations into repository calls.
// Ownership decisions are made by callers through AuthorizeOwner before the
// mutating operations here are invoked.
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

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	AuthorID string
	Title    string
	Content  string
	Tags     []string
}

// UpdatePostInput carries partial-update fields. A nil pointer leaves the
// field unchanged; a non-nil pointer overwrites, even when it points at an
// empty string.
type UpdatePostInput struct {
	PostID   string
	AuthorID string
	Title    *string
	Content  *string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost persists a new post with a fresh opaque id, UTC creation time,
// zeroed reaction counters and a never-nil tag list.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		AuthorID:  in.AuthorID,
		CreatedAt: time.Now().UTC(),
		Tags:      tags,
		Likes:     0,
		Dislikes:  0,
	}
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	observability.GlobalLogger.InfoContext(ctx, "post created",
		slog.String("post_id", post.ID), slog.String("author_id", in.AuthorID))
	return post, nil
}

// GetPost returns the post, or (nil, nil) when it does not exist.
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts returns all posts, or only those tagged with tag when it is
// non-empty. Matching is exact and case-sensitive; order is store-native.
func (s *PostService) ListPosts(ctx context.Context, tag string) ([]*models.Post, error) {
	return s.postRepo.List(ctx, tag)
}

// UpdatePost overwrites title and/or content of an existing post. Returns
// (nil, nil) when the post does not exist. The caller is responsible for
// verifying ownership before invoking this.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if in.PostID == "" {
		return nil, models.NewValidationError("Post ID is required")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		observability.GlobalLogger.WarnContext(ctx, "post not found for update",
			slog.String("post_id", in.PostID))
		return nil, nil
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post if it exists and silently no-ops otherwise.
// Ownership is the caller's responsibility, same contract as UpdatePost.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		observability.GlobalLogger.WarnContext(ctx, "post not found for deletion",
			slog.String("post_id", id))
		return nil
	}
	return s.postRepo.Delete(ctx, id)
}

// UpdateReaction applies the aggregate reaction toggle to a post's counters.
// There is no per-user reaction record: every call transitions relative to
// the current counter values. A missing post is a no-op. After any
// transition at most one of likes/dislikes is positive.
func (s *PostService) UpdateReaction(ctx context.Context, id, userID string, kind models.ReactionKind) error {
	if !kind.Valid() {
		return models.NewValidationError("Reaction must be 'like' or 'dislike'")
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		observability.GlobalLogger.WarnContext(ctx, "post not found for reaction",
			slog.String("post_id", id), slog.String("user_id", userID))
		return nil
	}

	switch kind {
	case models.ReactionLike:
		switch {
		case post.Likes > 0 && post.Dislikes == 0:
			post.Likes-- // un-like
		case post.Dislikes > 0:
			post.Dislikes--
			post.Likes++ // switch reaction
		default:
			post.Likes++
		}
	case models.ReactionDislike:
		switch {
		case post.Dislikes > 0 && post.Likes == 0:
			post.Dislikes--
		case post.Likes > 0:
			post.Likes--
			post.Dislikes++
		default:
			post.Dislikes++
		}
	}

	return s.postRepo.Save(ctx, post)
}
