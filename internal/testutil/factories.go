package testutil

import (
	"time"

	"healthforum/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// RandomUser builds a user record with generated fields.
func RandomUser() *models.User {
	return &models.User{
		ID:           uuid.NewString(),
		Email:        gofakeit.Email(),
		Username:     gofakeit.Username(),
		PasswordHash: gofakeit.UUID(),
		Bio:          gofakeit.Sentence(8),
	}
}

// RandomPost builds a post record owned by the given author.
func RandomPost(authorID string, tags ...string) *models.Post {
	if tags == nil {
		tags = []string{}
	}
	return &models.Post{
		ID:        uuid.NewString(),
		Title:     gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(1, 2, 10, " "),
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
		Tags:      tags,
	}
}

// RandomComment builds a comment under the given post and author.
func RandomComment(postID, authorID string) *models.Comment {
	return &models.Comment{
		PostID:    postID,
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   gofakeit.Sentence(10),
		CreatedAt: time.Now().UTC(),
	}
}
