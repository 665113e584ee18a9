package service

import (
	"context"
	"testing"

	"healthforum/internal/models"
	"healthforum/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreatePostDefaults(t *testing.T) {
	repo := testutil.NewPostRepoStub()
	svc := NewPostService(repo)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		AuthorID: "author-1",
		Title:    "Sleep hygiene basics",
		Content:  "Keep a consistent schedule.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "author-1", post.AuthorID)
	assert.NotNil(t, post.Tags, "tags must never be nil")
	assert.Empty(t, post.Tags)
	assert.Zero(t, post.Likes)
	assert.Zero(t, post.Dislikes)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.CreatedAt.UTC())

	stored, err := svc.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, post.ID, stored.ID)
}

func TestGetPostAbsent(t *testing.T) {
	svc := NewPostService(testutil.NewPostRepoStub())

	post, err := svc.GetPost(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, post, "absent is a valid outcome, not an error")
}

func TestListPostsTagFilter(t *testing.T) {
	repo := testutil.NewPostRepoStub()
	svc := NewPostService(repo)
	ctx := context.Background()

	tagged := testutil.RandomPost("author-a", "fitness", "sleep")
	require.NoError(t, repo.Save(ctx, tagged))
	require.NoError(t, repo.Save(ctx, testutil.RandomPost("author-a", "nutrition")))
	require.NoError(t, repo.Save(ctx, testutil.RandomPost("author-b")))

	all, err := svc.ListPosts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	fitness, err := svc.ListPosts(ctx, "fitness")
	require.NoError(t, err)
	require.Len(t, fitness, 1)
	assert.Equal(t, tagged.ID, fitness[0].ID)

	// Exact, case-sensitive matching.
	upper, err := svc.ListPosts(ctx, "Fitness")
	require.NoError(t, err)
	assert.Empty(t, upper)
}

func TestUpdatePostPartialFields(t *testing.T) {
	repo := testutil.NewPostRepoStub()
	svc := NewPostService(repo)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: "a", Title: "original title", Content: "original content"})
	require.NoError(t, err)

	updated, err := svc.UpdatePost(ctx, UpdatePostInput{
		PostID:   post.ID,
		AuthorID: "a",
		Title:    strPtr("new title"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "original content", updated.Content, "absent content must stay untouched")

	// A provided-but-empty value still overwrites.
	updated, err = svc.UpdatePost(ctx, UpdatePostInput{
		PostID:   post.ID,
		AuthorID: "a",
		Content:  strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "new title", updated.Title)
	assert.Empty(t, updated.Content)
}

func TestUpdatePostMissingID(t *testing.T) {
	svc := NewPostService(testutil.NewPostRepoStub())

	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{AuthorID: "a"})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestUpdatePostAbsent(t *testing.T) {
	svc := NewPostService(testutil.NewPostRepoStub())

	updated, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		PostID:   "missing",
		AuthorID: "a",
		Title:    strPtr("x"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeletePostIdempotent(t *testing.T) {
	repo := testutil.NewPostRepoStub()
	svc := NewPostService(repo)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: "a", Title: "t"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, post.ID))
	assert.Zero(t, repo.Len())

	// Deleting again never raises and never mutates storage.
	saves := repo.Saves
	require.NoError(t, svc.DeletePost(ctx, post.ID))
	require.NoError(t, svc.DeletePost(ctx, "never-existed"))
	assert.Equal(t, saves, repo.Saves)
	assert.Zero(t, repo.Len())
}

func TestUpdateReactionToggleSequence(t *testing.T) {
	repo := testutil.NewPostRepoStub()
	svc := NewPostService(repo)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: "a", Title: "t"})
	require.NoError(t, err)

	steps := []struct {
		kind         models.ReactionKind
		wantLikes    int
		wantDislikes int
	}{
		{models.ReactionLike, 1, 0},
		{models.ReactionLike, 0, 0}, // un-like
		{models.ReactionDislike, 0, 1},
		{models.ReactionLike, 1, 0}, // switch reaction
	}
	for i, step := range steps {
		require.NoError(t, svc.UpdateReaction(ctx, post.ID, "u", step.kind))
		current, err := svc.GetPost(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, step.wantLikes, current.Likes, "step %d likes", i)
		assert.Equal(t, step.wantDislikes, current.Dislikes, "step %d dislikes", i)
	}
}

func TestUpdateReactionInvariant(t *testing.T) {
	repo := testutil.NewPostRepoStub()
	svc := NewPostService(repo)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: "a", Title: "t"})
	require.NoError(t, err)

	sequence := []models.ReactionKind{
		models.ReactionDislike, models.ReactionDislike, models.ReactionLike,
		models.ReactionLike, models.ReactionDislike, models.ReactionLike,
		models.ReactionLike, models.ReactionDislike, models.ReactionDislike,
	}
	for i, kind := range sequence {
		require.NoError(t, svc.UpdateReaction(ctx, post.ID, "u", kind))
		current, err := svc.GetPost(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.True(t, current.Likes == 0 || current.Dislikes == 0,
			"after call %d: likes=%d dislikes=%d", i, current.Likes, current.Dislikes)
		assert.GreaterOrEqual(t, current.Likes, 0)
		assert.GreaterOrEqual(t, current.Dislikes, 0)
	}
}

func TestUpdateReactionMissingPost(t *testing.T) {
	repo := testutil.NewPostRepoStub()
	svc := NewPostService(repo)

	err := svc.UpdateReaction(context.Background(), "missing", "u", models.ReactionLike)
	require.NoError(t, err, "reaction on a missing post is a no-op")
	assert.Zero(t, repo.Saves)
}

func TestUpdateReactionInvalidKind(t *testing.T) {
	svc := NewPostService(testutil.NewPostRepoStub())

	err := svc.UpdateReaction(context.Background(), "id", "u", models.ReactionKind("love"))
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestPostStorageFaultPropagates(t *testing.T) {
	repo := testutil.NewPostRepoStub()
	repo.Err = models.NewStorageError(assert.AnError)
	svc := NewPostService(repo)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{AuthorID: "a", Title: "t"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeStorage, appErr.Code)
}
