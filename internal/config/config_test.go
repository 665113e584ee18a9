package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:          "8080",
		JWTSecret:     "a-development-secret-that-is-long-enough",
		JWTIssuer:     "healthforum",
		JWTAudience:   "healthforum-clients",
		PostsTable:    "Posts",
		CommentsTable: "Comments",
		UsersTable:    "Users",
		Env:           "development",
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := validConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.JWTIssuer = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.CommentsTable = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionHardening(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	cfg.JWTSecret = "your-secret-key-change-in-production"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Env = "production"
	cfg.JWTSecret = "too-short"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Env = "production"
	assert.NoError(t, cfg.Validate())
}
