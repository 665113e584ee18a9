// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"time"

	"healthforum/internal/auth"
	"healthforum/internal/config"
	"healthforum/internal/middleware"
	"healthforum/internal/repository"
	"healthforum/internal/service"
	"healthforum/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	tokens         *auth.TokenIssuer
	promMiddleware *fiberprometheus.FiberPrometheus
	postService    *service.PostService
	commentService *service.CommentService
	userService    *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	client, err := store.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	srv := NewServerWithDeps(cfg,
		repository.NewPostRepository(client),
		repository.NewCommentRepository(client),
		repository.NewUserRepository(client),
	)
	srv.promMiddleware = fiberprometheus.New("healthforum-api")
	return srv, nil
}

// NewServerWithDeps creates a Server using already-initialized repositories.
// Use this in tests or when a bootstrap layer establishes the store. Metrics
// stay disabled here; the collectors register globally and would collide
// across instances.
func NewServerWithDeps(
	cfg *config.Config,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) *Server {
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, auth.DefaultTokenTTL)

	return &Server{
		config:         cfg,
		tokens:         tokens,
		postService:    service.NewPostService(postRepo),
		commentService: service.NewCommentService(commentRepo),
		userService:    service.NewUserService(userRepo, tokens),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID to the logger
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	app.Get("/health", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	authRequired := middleware.AuthRequired(s.tokens)

	// User routes
	users := api.Group("/users")
	users.Post("/register", s.Register)
	users.Post("/login", s.Login)
	users.Get("/:id", authRequired, s.GetUser)

	// Post routes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", authRequired, s.CreatePost)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	posts.Post("/:id/like", authRequired, s.LikePost)
	posts.Post("/:id/dislike", authRequired, s.DislikePost)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", authRequired, s.UpdatePost)
	posts.Delete("/:id", authRequired, s.DeletePost)

	// Comment routes, nested under their parent post
	comments := api.Group("/posts/:postId/comments")
	comments.Get("/", s.GetComments)
	comments.Post("/", authRequired, s.CreateComment)
	comments.Delete("/:commentId", authRequired, s.DeleteComment)
}

// HealthCheck reports process liveness.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
