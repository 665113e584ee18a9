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

// EmailIndexName is the secondary index used for email uniqueness checks and login.
const EmailIndexName = "EmailIndex"

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Save(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// userRepository implements UserRepository against DynamoDB.
type userRepository struct {
	client *store.Client
	log    *observability.RepoLogger
}

// NewUserRepository creates a new user repository
func NewUserRepository(client *store.Client) UserRepository {
	return &userRepository{
		client: client,
		log:    observability.NewRepoLogger(client.Tables.Users),
	}
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return models.NewStorageError(err)
	}
	_, err = r.client.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.client.Tables.Users),
		Item:      item,
	})
	if err != nil {
		r.log.LogError(ctx, err, "save")
		return models.NewStorageError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	resp, err := r.client.DB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.client.Tables.Users),
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
	var user models.User
	if err := attributevalue.UnmarshalMap(resp.Item, &user); err != nil {
		return nil, models.NewStorageError(err)
	}
	return &user, nil
}

// GetByEmail point-queries the EmailIndex secondary index.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	resp, err := r.client.DB.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.client.Tables.Users),
		IndexName:              aws.String(EmailIndexName),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		r.log.LogError(ctx, err, "query")
		return nil, models.NewStorageError(err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}
	var user models.User
	if err := attributevalue.UnmarshalMap(resp.Items[0], &user); err != nil {
		return nil, models.NewStorageError(err)
	}
	return &user, nil
}
