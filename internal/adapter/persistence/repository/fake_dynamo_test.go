package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory single table keyed by one string attribute.
// It understands only the expressions the repositories send.
type fakeDynamo struct {
	mu    sync.Mutex
	pk    string
	items map[string]map[string]types.AttributeValue

	batchCalls    int
	unprocessOnce int
	scanErr       error
	lastGetInput  *dynamodb.GetItemInput
	lastScanInput *dynamodb.ScanInput
}

func newFakeDynamo(pk string) *fakeDynamo {
	return &fakeDynamo{pk: pk, items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) keyOf(m map[string]types.AttributeValue) string {
	if s, ok := m[f.pk].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastGetInput = in
	return &dynamodb.GetItemOutput{Item: f.items[f.keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := f.keyOf(in.Item)
	if in.ConditionExpression != nil {
		if _, exists := f.items[key]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: strPtr("exists")}
		}
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

// UpdateItem supports the status transition expression only.
func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := f.keyOf(in.Key)
	item, ok := f.items[key]
	from := in.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS).Value
	if !ok || attrString(item["status"]) != from {
		return nil, &types.ConditionalCheckFailedException{Message: strPtr("condition")}
	}
	updated := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		updated[k] = v
	}
	updated["status"] = in.ExpressionAttributeValues[":to"]
	updated["updated_at"] = in.ExpressionAttributeValues[":now"]
	f.items[key] = updated
	return &dynamodb.UpdateItemOutput{Attributes: updated}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastScanInput = in
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	out := make([]map[string]types.AttributeValue, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return &dynamodb.ScanOutput{Items: out, Count: int32(len(out))}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls++
	var table string
	var reqs []types.WriteRequest
	for t, r := range in.RequestItems {
		table, reqs = t, r
	}
	if len(reqs) > batchWriteLimit {
		return nil, errors.New("too many items in batch")
	}

	var unprocessed []types.WriteRequest
	if f.unprocessOnce > 0 {
		n := min(f.unprocessOnce, len(reqs))
		unprocessed = reqs[len(reqs)-n:]
		reqs = reqs[:len(reqs)-n]
		f.unprocessOnce = 0
	}
	for _, r := range reqs {
		switch {
		case r.PutRequest != nil:
			f.items[f.keyOf(r.PutRequest.Item)] = r.PutRequest.Item
		case r.DeleteRequest != nil:
			delete(f.items, f.keyOf(r.DeleteRequest.Key))
		}
	}
	out := &dynamodb.BatchWriteItemOutput{}
	if len(unprocessed) > 0 {
		out.UnprocessedItems = map[string][]types.WriteRequest{table: unprocessed}
	}
	return out, nil
}

func attrString(v types.AttributeValue) string {
	if s, ok := v.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func strPtr(s string) *string { return &s }
