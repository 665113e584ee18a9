// Command seed fills the forum tables with generated development data:
// a handful of users, tagged posts, and comments, all written through the
// services so entity invariants hold.
package main

import (
	"context"
	"flag"
	"log"

	"healthforum/internal/config"
	"healthforum/internal/models"
	"healthforum/internal/repository"
	"healthforum/internal/service"
	"healthforum/internal/store"

	"github.com/brianvoe/gofakeit/v6"
)

var topicTags = []string{"nutrition", "fitness", "sleep", "mental-health", "recovery"}

func main() {
	users := flag.Int("users", 5, "number of users to create")
	postsPerUser := flag.Int("posts", 3, "number of posts per user")
	commentsPerPost := flag.Int("comments", 2, "number of comments per post")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	client, err := store.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create DynamoDB client: %v", err)
	}

	userRepo := repository.NewUserRepository(client)
	postRepo := repository.NewPostRepository(client)
	commentRepo := repository.NewCommentRepository(client)

	userService := service.NewUserService(userRepo, nil)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo)

	var seeded []*models.User
	for i := 0; i < *users; i++ {
		user, err := userService.Register(ctx, gofakeit.Email(), gofakeit.Password(true, true, true, false, false, 12), gofakeit.Username())
		if err != nil {
			log.Fatalf("Failed to seed user: %v", err)
		}
		seeded = append(seeded, user)
	}
	log.Printf("Seeded %d users", len(seeded))

	var postCount, commentCount int
	for _, user := range seeded {
		for i := 0; i < *postsPerUser; i++ {
			tags := []string{topicTags[gofakeit.Number(0, len(topicTags)-1)]}
			post, err := postService.CreatePost(ctx, service.CreatePostInput{
				AuthorID: user.ID,
				Title:    gofakeit.Sentence(6),
				Content:  gofakeit.Paragraph(1, 3, 12, " "),
				Tags:     tags,
			})
			if err != nil {
				log.Fatalf("Failed to seed post: %v", err)
			}
			postCount++

			for j := 0; j < *commentsPerPost; j++ {
				commenter := seeded[gofakeit.Number(0, len(seeded)-1)]
				if _, err := commentService.CreateComment(ctx, service.CreateCommentInput{
					PostID:   post.ID,
					AuthorID: commenter.ID,
					Content:  gofakeit.Sentence(10),
				}); err != nil {
					log.Fatalf("Failed to seed comment: %v", err)
				}
				commentCount++
			}
		}
	}

	log.Printf("Seeded %d posts and %d comments", postCount, commentCount)
}
