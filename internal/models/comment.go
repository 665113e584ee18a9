package models

import "time"

// Comment belongs to exactly one post. Storage partitions comments by PostID
// with ID as the range key; ID is still globally unique, and PostID never
// changes after creation.
type Comment struct {
	PostID    string    `json:"postId" dynamodbav:"postId"`
	ID        string    `json:"id" dynamodbav:"id"`
	AuthorID  string    `json:"authorId" dynamodbav:"authorId"`
	Content   string    `json:"content" dynamodbav:"content"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
}
