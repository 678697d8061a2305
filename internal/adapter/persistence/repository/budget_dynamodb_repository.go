package repository

import (
	"context"
	"errors"
	"sort"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"
	budgetsClientIDIndex    = "client_id-index"
	budgetsNumberIndex      = "number-index"
)

type budgetLineItem struct {
	ID       string `dynamodbav:"id"`
	TourName string `dynamodbav:"tour_name"`
	Date     string `dynamodbav:"date"`
	Time     string `dynamodbav:"time,omitempty"`
	PaxAdult int    `dynamodbav:"pax_adult"`
	PaxChild int    `dynamodbav:"pax_child"`
	PaxFree  int    `dynamodbav:"pax_free"`
	Price    string `dynamodbav:"price"`
	Note     string `dynamodbav:"note,omitempty"`
}

type budgetItem struct {
	ID                  string           `dynamodbav:"id"`
	Number              string           `dynamodbav:"number"`
	ClientID            string           `dynamodbav:"client_id"`
	ClientName          string           `dynamodbav:"client_name"`
	Items               []budgetLineItem `dynamodbav:"items"`
	Status              string           `dynamodbav:"status"`
	Total               string           `dynamodbav:"total"`
	Note                string           `dynamodbav:"note,omitempty"`
	ValidUntil          string           `dynamodbav:"valid_until,omitempty"`
	PromotedOrderNumber string           `dynamodbav:"promoted_order_number,omitempty"`
	CreatedAt           string           `dynamodbav:"created_at"`
	UpdatedAt           string           `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists budgets in DynamoDB with their items nested
// in the same record.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: number-index (PK: number)
type BudgetDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoAPI) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsNumberIndex),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: number},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Items) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})

	budgets := make([]entities.Budget, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []budgetItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			budgets = append(budgets, fromBudgetItem(it))
		}
	}
	sort.Slice(budgets, func(i, j int) bool { return budgets[i].Number < budgets[j].Number })
	return budgets, nil
}

// Update overwrites the whole record. A missing id yields a zero Budget.
func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *BudgetDynamoRepository) Count(ctx context.Context) (int, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	items := make([]budgetLineItem, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, budgetLineItem{
			ID:       it.ID,
			TourName: it.TourName,
			Date:     it.Date,
			Time:     it.Time,
			PaxAdult: it.Pax.Adult,
			PaxChild: it.Pax.Child,
			PaxFree:  it.Pax.Free,
			Price:    decimalToString(it.Price),
			Note:     it.Note,
		})
	}
	return budgetItem{
		ID:                  b.ID,
		Number:              b.Number,
		ClientID:            b.ClientID,
		ClientName:          b.ClientName,
		Items:               items,
		Status:              string(b.Status),
		Total:               decimalToString(b.Total),
		Note:                b.Note,
		ValidUntil:          b.ValidUntil,
		PromotedOrderNumber: b.PromotedOrderNumber.String(),
		CreatedAt:           formatTimestamp(b.CreatedAt),
		UpdatedAt:           formatTimestamp(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	items := make([]entities.BudgetItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.BudgetItem{
			ID:       li.ID,
			TourName: li.TourName,
			Date:     li.Date,
			Time:     li.Time,
			Pax:      entities.Pax{Adult: li.PaxAdult, Child: li.PaxChild, Free: li.PaxFree},
			Price:    parseDecimal(li.Price),
			Note:     li.Note,
		})
	}
	return entities.Budget{
		ID:                  it.ID,
		Number:              it.Number,
		ClientID:            it.ClientID,
		ClientName:          it.ClientName,
		Items:               items,
		Status:              entities.BudgetStatus(it.Status),
		Total:               parseDecimal(it.Total),
		Note:                it.Note,
		ValidUntil:          it.ValidUntil,
		PromotedOrderNumber: entities.OrderNumber(it.PromotedOrderNumber),
		CreatedAt:           parseTimestamp(it.CreatedAt),
		UpdatedAt:           parseTimestamp(it.UpdatedAt),
	}
}
