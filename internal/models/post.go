package models

import "time"

// ReactionKind identifies which aggregate counter a reaction targets.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Valid reports whether the kind is one of the two supported reactions.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Post is a forum post. Likes and Dislikes are aggregate counters with no
// per-user record; the reaction toggle keeps at most one of them positive.
type Post struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Title     string    `json:"title" dynamodbav:"title"`
	Content   string    `json:"content" dynamodbav:"content"`
	AuthorID  string    `json:"authorId" dynamodbav:"authorId"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	Tags      []string  `json:"tags" dynamodbav:"tags"`
	Likes     int       `json:"likes" dynamodbav:"likes"`
	Dislikes  int       `json:"dislikes" dynamodbav:"dislikes"`
}
