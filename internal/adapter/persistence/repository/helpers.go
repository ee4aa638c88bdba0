package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	// BatchWriteItem accepts at most 25 requests per call.
	batchWriteLimit   = 25
	batchWriteRetries = 3
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func tableOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// batchWrite sends requests in chunks and resubmits unprocessed items a few times.
// Chunks already written stay written when a later chunk fails.
func batchWrite(ctx context.Context, ddb DynamoAPI, table string, reqs []types.WriteRequest) (int, error) {
	written := 0
	for start := 0; start < len(reqs); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(reqs))
		pending := map[string][]types.WriteRequest{table: reqs[start:end]}

		for attempt := 0; ; attempt++ {
			out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return written, err
			}
			left := out.UnprocessedItems[table]
			written += len(pending[table]) - len(left)
			if len(left) == 0 {
				break
			}
			if attempt >= batchWriteRetries {
				return written, fmt.Errorf("batch write: %d items unprocessed", len(left))
			}
			select {
			case <-ctx.Done():
				return written, ctx.Err()
			case <-time.After(time.Duration(attempt+1) * 50 * time.Millisecond):
			}
			pending = map[string][]types.WriteRequest{table: left}
		}
	}
	return written, nil
}

// scanAll reads every item of a table page by page.
func scanAll(ctx context.Context, ddb DynamoAPI, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

