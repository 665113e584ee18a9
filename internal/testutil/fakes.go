// Package testutil provides shared test doubles and fixtures.
package testutil

import (
	"context"
	"sync"

	"healthforum/internal/models"
)

// PostRepoStub is an in-memory post repository implementation for tests.
// Setting Err makes every operation fail with it.
type PostRepoStub struct {
	mu    sync.Mutex
	items map[string]models.Post
	Err   error
	Saves int
}

// NewPostRepoStub creates an in-memory post repository stub for tests.
func NewPostRepoStub() *PostRepoStub {
	return &PostRepoStub{items: make(map[string]models.Post)}
}

func (s *PostRepoStub) Save(_ context.Context, post *models.Post) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[post.ID] = *post
	s.Saves++
	return nil
}

func (s *PostRepoStub) GetByID(_ context.Context, id string) (*models.Post, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (s *PostRepoStub) List(_ context.Context, tag string) ([]*models.Post, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := []*models.Post{}
	for _, post := range s.items {
		if tag != "" && !containsTag(post.Tags, tag) {
			continue
		}
		p := post
		posts = append(posts, &p)
	}
	return posts, nil
}

func (s *PostRepoStub) Delete(_ context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// Len returns the number of stored posts.
func (s *PostRepoStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

type commentKey struct {
	postID string
	id     string
}

// CommentRepoStub is an in-memory comment repository keyed like the real
// table: postId partitions, id ranges.
type CommentRepoStub struct {
	mu    sync.Mutex
	items map[commentKey]models.Comment
	Err   error
}

// NewCommentRepoStub creates an in-memory comment repository stub for tests.
func NewCommentRepoStub() *CommentRepoStub {
	return &CommentRepoStub{items: make(map[commentKey]models.Comment)}
}

func (s *CommentRepoStub) Save(_ context.Context, comment *models.Comment) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[commentKey{comment.PostID, comment.ID}] = *comment
	return nil
}

func (s *CommentRepoStub) GetByID(_ context.Context, id string) (*models.Comment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, comment := range s.items {
		if key.id == id {
			c := comment
			return &c, nil
		}
	}
	return nil, nil
}

func (s *CommentRepoStub) ListByPost(_ context.Context, postID string) ([]*models.Comment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	comments := []*models.Comment{}
	for key, comment := range s.items {
		if key.postID == postID {
			c := comment
			comments = append(comments, &c)
		}
	}
	return comments, nil
}

func (s *CommentRepoStub) Delete(_ context.Context, postID, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, commentKey{postID, id})
	return nil
}

// Len returns the number of stored comments.
func (s *CommentRepoStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// UserRepoStub is an in-memory user repository implementation for tests.
type UserRepoStub struct {
	mu    sync.Mutex
	items map[string]models.User
	Err   error
}

// NewUserRepoStub creates an in-memory user repository stub for tests.
func NewUserRepoStub() *UserRepoStub {
	return &UserRepoStub{items: make(map[string]models.User)}
}

func (s *UserRepoStub) Save(_ context.Context, user *models.User) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[user.ID] = *user
	return nil
}

func (s *UserRepoStub) GetByID(_ context.Context, id string) (*models.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *UserRepoStub) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.items {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// Len returns the number of stored users.
func (s *UserRepoStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
