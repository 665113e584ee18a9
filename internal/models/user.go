package models

// User is a registered account. Email is unique across all users, enforced by
// an existence check against the EmailIndex secondary index before insert.
// PasswordHash is set once at registration and never serialized to clients.
type User struct {
	ID           string `json:"id" dynamodbav:"id"`
	Email        string `json:"email" dynamodbav:"email"`
	Username     string `json:"username" dynamodbav:"username"`
	PasswordHash string `json:"-" dynamodbav:"passwordHash"`
	Bio          string `json:"bio" dynamodbav:"bio"`
}
