// Package store provides the DynamoDB client shared by all repositories.
package store

import (
	"context"
	"fmt"
	"os"

	"healthforum/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Tables holds the table names for the three persisted collections.
type Tables struct {
	Posts    string
	Comments string
	Users    string
}

// Client wraps a DynamoDB client together with the table names it operates on.
type Client struct {
	DB     *dynamodb.Client
	Tables Tables
}

// New builds a DynamoDB client from application configuration. Static
// credentials from the environment take precedence when present; otherwise
// the default AWS credential chain applies. DYNAMO_ENDPOINT overrides the
// endpoint for DynamoDB Local.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}

	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	db := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	})

	return &Client{
		DB: db,
		Tables: Tables{
			Posts:    cfg.PostsTable,
			Comments: cfg.CommentsTable,
			Users:    cfg.UsersTable,
		},
	}, nil
}
