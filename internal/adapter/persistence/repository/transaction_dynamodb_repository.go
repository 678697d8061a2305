package repository

import (
	"context"
	"sort"
	"strings"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransactionsTableName = "transactions"

type ledgerEntryItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category"`
	Amount      string `dynamodbav:"amount"`
	Direction   string `dynamodbav:"direction"`
	Status      string `dynamodbav:"status"`
	Date        string `dynamodbav:"date"`
	Originator  string `dynamodbav:"originator"`
	OrderNumber string `dynamodbav:"order_number,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// TransactionDynamoRepository persists ledger entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type TransactionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb DynamoAPI) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, e entities.LedgerEntry) (entities.LedgerEntry, error) {
	av, err := attributevalue.MarshalMap(toLedgerEntryItem(e))
	if err != nil {
		return entities.LedgerEntry{}, err
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
		return entities.LedgerEntry{}, err
	}
	return e, nil
}

// List scans the table filtering on the civil date, both bounds inclusive.
func (r *TransactionDynamoRepository) List(ctx context.Context, from, to string) ([]entities.LedgerEntry, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var conds []string
	values := map[string]types.AttributeValue{}
	if from != "" {
		conds = append(conds, "#date >= :from")
		values[":from"] = &types.AttributeValueMemberS{Value: from}
	}
	if to != "" {
		conds = append(conds, "#date <= :to")
		values[":to"] = &types.AttributeValueMemberS{Value: to}
	}
	if len(conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
		in.ExpressionAttributeNames = map[string]string{"#date": "date"}
		in.ExpressionAttributeValues = values
	}

	p := dynamodb.NewScanPaginator(r.ddb, in)
	entries := make([]entities.LedgerEntry, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []ledgerEntryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			entries = append(entries, fromLedgerEntryItem(it))
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func toLedgerEntryItem(e entities.LedgerEntry) ledgerEntryItem {
	return ledgerEntryItem{
		ID:          e.ID,
		Description: e.Description,
		Category:    e.Category,
		Amount:      decimalToString(e.Amount),
		Direction:   string(e.Direction),
		Status:      string(e.Status),
		Date:        e.Date,
		Originator:  e.Originator,
		OrderNumber: e.OrderNumber.String(),
		CreatedAt:   formatTimestamp(e.CreatedAt),
	}
}

func fromLedgerEntryItem(it ledgerEntryItem) entities.LedgerEntry {
	return entities.LedgerEntry{
		ID:          it.ID,
		Description: it.Description,
		Category:    it.Category,
		Amount:      parseDecimal(it.Amount),
		Direction:   entities.LedgerDirection(it.Direction),
		Status:      entities.LedgerStatus(it.Status),
		Date:        it.Date,
		Originator:  it.Originator,
		OrderNumber: entities.OrderNumber(it.OrderNumber),
		CreatedAt:   parseTimestamp(it.CreatedAt),
	}
}
