package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table in-memory DynamoAPI keyed by "id" (or "name"
// for counters). Query understands "attr = :value" conditions and ignores the
// index name.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	err   error
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func keyOf(m map[string]types.AttributeValue) string {
	for _, k := range []string{"id", "name"} {
		if s, ok := m[k].(*types.AttributeValueMemberS); ok {
			return s.Value
		}
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := keyOf(in.Item)
	if in.ConditionExpression != nil {
		_, exists := f.items[k]
		switch *in.ConditionExpression {
		case "attribute_not_exists(#id)":
			if exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		case "attribute_exists(#id)":
			if !exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// UpdateItem only understands the counter's "ADD #value :one".
func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := keyOf(in.Key)
	item, ok := f.items[k]
	if !ok {
		item = map[string]types.AttributeValue{"name": in.Key["name"]}
	}
	current := 0
	if n, ok := item["value"].(*types.AttributeValueMemberN); ok {
		current, _ = strconv.Atoi(n.Value)
	}
	step, _ := strconv.Atoi(in.ExpressionAttributeValues[":one"].(*types.AttributeValueMemberN).Value)
	item["value"] = &types.AttributeValueMemberN{Value: strconv.Itoa(current + step)}
	f.items[k] = item
	return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{"value": item["value"]}}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if in.KeyConditionExpression == nil {
		return nil, errors.New("fake: missing key condition")
	}
	parts := strings.SplitN(*in.KeyConditionExpression, " = ", 2)
	if len(parts) != 2 {
		return nil, errors.New("fake: unsupported key condition")
	}
	attr := parts[0]
	if strings.HasPrefix(attr, "#") {
		attr = in.ExpressionAttributeNames[attr]
	}
	want, ok := in.ExpressionAttributeValues[parts[1]].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("fake: unsupported key value")
	}
	out := &dynamodb.QueryOutput{}
	for _, item := range f.items {
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && s.Value == want.Value {
			out.Items = append(out.Items, item)
		}
	}
	out.Count = int32(len(out.Items))
	return out, nil
}

// Scan understands the "#date >= :from AND #date <= :to" filter used by the
// ledger listing.
func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := &dynamodb.ScanOutput{}
	for _, item := range f.items {
		if in.FilterExpression != nil && !matchDateFilter(item, in.ExpressionAttributeValues) {
			continue
		}
		out.Count++
		if in.Select != types.SelectCount {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

func matchDateFilter(item, values map[string]types.AttributeValue) bool {
	date, _ := item["date"].(*types.AttributeValueMemberS)
	if date == nil {
		return false
	}
	if from, ok := values[":from"].(*types.AttributeValueMemberS); ok && date.Value < from.Value {
		return false
	}
	if to, ok := values[":to"].(*types.AttributeValueMemberS); ok && date.Value > to.Value {
		return false
	}
	return true
}
