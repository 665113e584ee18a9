// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"healthforum/internal/models"
	"healthforum/internal/observability"
	"healthforum/internal/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PostRepository defines the interface for post data operations. Absent
// records are returned as (nil, nil); store faults surface as StorageError.
type PostRepository interface {
	Save(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, tag string) ([]*models.Post, error)
	Delete(ctx context.Context, id string) error
}

// postRepository implements PostRepository against DynamoDB.
type postRepository struct {
	client *store.Client
	log    *observability.RepoLogger
}

// NewPostRepository creates a new post repository
func NewPostRepository(client *store.Client) PostRepository {
	return &postRepository{
		client: client,
		log:    observability.NewRepoLogger(client.Tables.Posts),
	}
}

func (r *postRepository) Save(ctx context.Context, post *models.Post) error {
	item, err := attributevalue.MarshalMap(post)
	if err != nil {
		return models.NewStorageError(err)
	}
	_, err = r.client.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.client.Tables.Posts),
		Item:      item,
	})
	if err != nil {
		r.log.LogError(ctx, err, "save")
		return models.NewStorageError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	resp, err := r.client.DB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.client.Tables.Posts),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		r.log.LogError(ctx, err, "get")
		return nil, models.NewStorageError(err)
	}
	if len(resp.Item) == 0 {
		return nil, nil
	}
	var post models.Post
	if err := attributevalue.UnmarshalMap(resp.Item, &post); err != nil {
		return nil, models.NewStorageError(err)
	}
	return &post, nil
}

// List scans the Posts table, optionally restricted to posts whose tag list
// contains the given tag (exact, case-sensitive match). Scan pages are
// followed internally; order is store-native.
func (r *postRepository) List(ctx context.Context, tag string) ([]*models.Post, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.client.Tables.Posts),
	}
	if tag != "" {
		input.FilterExpression = aws.String("contains(tags, :tag)")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":tag": &types.AttributeValueMemberS{Value: tag},
		}
	}

	posts := []*models.Post{}
	for {
		resp, err := r.client.DB.Scan(ctx, input)
		if err != nil {
			r.log.LogError(ctx, err, "scan")
			return nil, models.NewStorageError(err)
		}
		var page []*models.Post
		if err := attributevalue.UnmarshalListOfMaps(resp.Items, &page); err != nil {
			return nil, models.NewStorageError(err)
		}
		posts = append(posts, page...)

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = resp.LastEvaluatedKey
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DB.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.client.Tables.Posts),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewStorageError(err)
	}
	return nil
}
