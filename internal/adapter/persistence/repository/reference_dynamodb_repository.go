package repository

import (
	"context"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultGuidesTableName  = "guides"
	defaultClientsTableName = "clients"
)

type guideItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Role      string `dynamodbav:"role"`
	DailyRate string `dynamodbav:"daily_rate"`
	Active    bool   `dynamodbav:"active"`
}

type clientItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Phone string `dynamodbav:"phone,omitempty"`
	Email string `dynamodbav:"email,omitempty"`
}

// GuideDynamoRepository reads guides maintained by the back office.
type GuideDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IGuideRepository = (*GuideDynamoRepository)(nil)

func NewGuideDynamoRepository(ddb DynamoAPI) *GuideDynamoRepository {
	return &GuideDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GUIDES_TABLE", defaultGuidesTableName),
	}
}

func (r *GuideDynamoRepository) GetByID(ctx context.Context, id string) (entities.Guide, error) {
	var it guideItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Guide{}, err
	}
	return entities.Guide{
		ID:        it.ID,
		Name:      it.Name,
		Role:      it.Role,
		DailyRate: parseDecimal(it.DailyRate),
		Active:    it.Active,
	}, nil
}

// ClientDynamoRepository reads clients maintained by the back office.
type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return entities.Client{ID: it.ID, Name: it.Name, Phone: it.Phone, Email: it.Email}, nil
}

func getItemByID(ctx context.Context, ddb DynamoAPI, table, id string, dst interface{}) (bool, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, dst); err != nil {
		return false, err
	}
	return true, nil
}
