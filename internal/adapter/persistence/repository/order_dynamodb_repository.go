package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"topup_store/internal/domain/entities"
	"topup_store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransactionsTableName = "transactions"

type orderItem struct {
	RefID       string `dynamodbav:"ref_id"`
	MerchantRef string `dynamodbav:"merchant_ref"`
	SKU         string `dynamodbav:"sku"`
	Game        string `dynamodbav:"game,omitempty"`
	ProductName string `dynamodbav:"product_name"`
	Nickname    string `dynamodbav:"nickname,omitempty"`
	UserID      string `dynamodbav:"user_id"`
	Amount      int64  `dynamodbav:"amount"`
	Method      string `dynamodbav:"method"`
	Status      string `dynamodbav:"status"`
	QRURL       string `dynamodbav:"qr_url,omitempty"`
	PayCode     string `dynamodbav:"pay_code,omitempty"`
	CheckoutURL string `dynamodbav:"checkout_url,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists orders.
//
// Table requirements:
//   - PK: ref_id (string)
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultTransactionsTableName),
		now:       time.Now,
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ref_id)"),
		ExpressionAttributeNames: map[string]string{
			"#ref_id": "ref_id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByRefID(ctx context.Context, refID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("ref_id", refID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// UpdateStatus moves an order from one status to another.
// It returns a zero Order and nil error when the stored status is no longer `from`.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, refID string, from, to entities.OrderStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("ref_id", refID),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#ref_id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#ref_id":     "ref_id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":now":  &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// ListRecent scans the table and returns the newest orders first.
func (r *OrderDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Order, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(raw))
	for _, m := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		RefID:       o.RefID,
		MerchantRef: o.MerchantRef,
		SKU:         o.SKU,
		Game:        o.Game,
		ProductName: o.ProductName,
		Nickname:    o.Nickname,
		UserID:      o.UserID,
		Amount:      o.Amount,
		Method:      o.Method,
		Status:      string(o.Status),
		QRURL:       o.QRURL,
		PayCode:     o.PayCode,
		CheckoutURL: o.CheckoutURL,
		CreatedAt:   formatTime(o.CreatedAt),
		UpdatedAt:   formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		RefID:       it.RefID,
		MerchantRef: it.MerchantRef,
		SKU:         it.SKU,
		Game:        it.Game,
		ProductName: it.ProductName,
		Nickname:    it.Nickname,
		UserID:      it.UserID,
		Amount:      it.Amount,
		Method:      it.Method,
		Status:      entities.OrderStatus(it.Status),
		QRURL:       it.QRURL,
		PayCode:     it.PayCode,
		CheckoutURL: it.CheckoutURL,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
