package repository

import (
	"context"
	"fmt"
	"strconv"

	"turismo_agenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// CounterDynamoRepository issues monotonic counters with an atomic ADD.
//
// Table requirements:
//   - PK: name (string)
type CounterDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb DynamoAPI) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CounterDynamoRepository) Next(ctx context.Context, name string) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %q: missing value attribute", name)
	}
	return strconv.Atoi(n.Value)
}
