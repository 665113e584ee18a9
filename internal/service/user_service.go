package service

import (
	"context"
	"log/slog"

	"healthforum/internal/auth"
	"healthforum/internal/models"
	"healthforum/internal/observability"
	"healthforum/internal/repository"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenIssuer
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenIssuer) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

// Register creates a new user after checking that no user with the same
// email exists. The check-then-insert is not atomic against the store;
// concurrent registrations with the same email can race.
func (s *UserService) Register(ctx context.Context, email, password, username string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		observability.GlobalLogger.WarnContext(ctx, "registration rejected: duplicate email",
			slog.String("email", email))
		return nil, models.NewDuplicateEmailError(email)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Bio:          "",
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	observability.GlobalLogger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues a signed session token. The unknown-
// email and wrong-password cases return the identical error so callers cannot
// tell which one failed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		observability.GlobalLogger.WarnContext(ctx, "login failed",
			slog.String("email", email))
		return "", models.NewInvalidCredentialsError()
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		observability.GlobalLogger.WarnContext(ctx, "login failed",
			slog.String("email", email))
		return "", models.NewInvalidCredentialsError()
	}

	token, err := s.tokens.IssueToken(user.ID, user.Email)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	observability.GlobalLogger.InfoContext(ctx, "login successful",
		slog.String("user_id", user.ID))
	return token, nil
}

// GetUserByID returns the user, or (nil, nil) when no such user exists.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
