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

// CommentRepository defines the interface for comment data operations.
// Comments are stored under a composite key: postId partitions, id ranges.
type CommentRepository interface {
	Save(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	Delete(ctx context.Context, postID, id string) error
}

// commentRepository implements CommentRepository against DynamoDB.
type commentRepository struct {
	client *store.Client
	log    *observability.RepoLogger
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(client *store.Client) CommentRepository {
	return &commentRepository{
		client: client,
		log:    observability.NewRepoLogger(client.Tables.Comments),
	}
}

func (r *commentRepository) Save(ctx context.Context, comment *models.Comment) error {
	item, err := attributevalue.MarshalMap(comment)
	if err != nil {
		return models.NewStorageError(err)
	}
	_, err = r.client.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.client.Tables.Comments),
		Item:      item,
	})
	if err != nil {
		r.log.LogError(ctx, err, "save")
		return models.NewStorageError(err)
	}
	return nil
}

// GetByID looks a comment up by its id alone. Comment ids are globally unique
// even though the table partitions by postId, so a filtered scan yields at
// most one record.
func (r *commentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.client.Tables.Comments),
		FilterExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
	}
	for {
		resp, err := r.client.DB.Scan(ctx, input)
		if err != nil {
			r.log.LogError(ctx, err, "scan")
			return nil, models.NewStorageError(err)
		}
		if len(resp.Items) > 0 {
			var comment models.Comment
			if err := attributevalue.UnmarshalMap(resp.Items[0], &comment); err != nil {
				return nil, models.NewStorageError(err)
			}
			return &comment, nil
		}
		if len(resp.LastEvaluatedKey) == 0 {
			return nil, nil
		}
		input.ExclusiveStartKey = resp.LastEvaluatedKey
	}
}

// ListByPost queries the postId partition directly.
func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.client.Tables.Comments),
		KeyConditionExpression: aws.String("postId = :postId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":postId": &types.AttributeValueMemberS{Value: postID},
		},
	}

	comments := []*models.Comment{}
	for {
		resp, err := r.client.DB.Query(ctx, input)
		if err != nil {
			r.log.LogError(ctx, err, "query")
			return nil, models.NewStorageError(err)
		}
		var page []*models.Comment
		if err := attributevalue.UnmarshalListOfMaps(resp.Items, &page); err != nil {
			return nil, models.NewStorageError(err)
		}
		comments = append(comments, page...)

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = resp.LastEvaluatedKey
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, postID, id string) error {
	_, err := r.client.DB.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.client.Tables.Comments),
		Key: map[string]types.AttributeValue{
			"postId": &types.AttributeValueMemberS{Value: postID},
			"id":     &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewStorageError(err)
	}
	return nil
}
