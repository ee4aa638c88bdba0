package repository

import (
	"context"

	"topup_store/internal/domain/entities"
	"topup_store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	SKU        string `dynamodbav:"sku"`
	Name       string `dynamodbav:"name"`
	Brand      string `dynamodbav:"brand"`
	Category   string `dynamodbav:"category"`
	PriceModal int64  `dynamodbav:"price_modal"`
	Markup     int64  `dynamodbav:"markup"`
	PriceSell  int64  `dynamodbav:"price_sell"`
	Image      string `dynamodbav:"image,omitempty"`
	IsActive   bool   `dynamodbav:"is_active"`
	IsPromo    bool   `dynamodbav:"is_promo"`
	UpdatedAt  string `dynamodbav:"updated_at,omitempty"`
}

// ProductDynamoRepository persists the catalog.
//
// Table requirements:
//   - PK: sku (string)
type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tableName string) *ProductDynamoRepository {
	return &ProductDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultProductsTableName)}
}

func (r *ProductDynamoRepository) GetBySKU(ctx context.Context, sku string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("sku", sku),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) ListAll(ctx context.Context) ([]entities.Product, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	products := make([]entities.Product, 0, len(raw))
	for _, m := range raw {
		var it productItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		products = append(products, fromProductItem(it))
	}
	return products, nil
}

// SaveAll overwrites products by SKU with batched puts.
func (r *ProductDynamoRepository) SaveAll(ctx context.Context, products []entities.Product) error {
	reqs := make([]types.WriteRequest, 0, len(products))
	for _, p := range products {
		av, err := attributevalue.MarshalMap(toProductItem(p))
		if err != nil {
			return err
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	_, err := batchWrite(ctx, r.ddb, r.tableName, reqs)
	return err
}

func (r *ProductDynamoRepository) DeleteAll(ctx context.Context) (int, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#sku"),
		ExpressionAttributeNames: map[string]string{"#sku": "sku"},
	})
	if err != nil {
		return 0, err
	}
	reqs := make([]types.WriteRequest, 0, len(raw))
	for _, m := range raw {
		sku, ok := m["sku"]
		if !ok {
			continue
		}
		reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{
			Key: map[string]types.AttributeValue{"sku": sku},
		}})
	}
	return batchWrite(ctx, r.ddb, r.tableName, reqs)
}

func toProductItem(p entities.Product) productItem {
	p = p.WithDerivedPrice()
	return productItem{
		SKU:        p.SKU,
		Name:       p.Name,
		Brand:      p.Brand,
		Category:   p.Category,
		PriceModal: p.PriceModal,
		Markup:     p.Markup,
		PriceSell:  p.PriceSell,
		Image:      p.Image,
		IsActive:   p.IsActive,
		IsPromo:    p.IsPromo,
		UpdatedAt:  formatTime(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		SKU:        it.SKU,
		Name:       it.Name,
		Brand:      it.Brand,
		Category:   it.Category,
		PriceModal: it.PriceModal,
		Markup:     it.Markup,
		PriceSell:  it.PriceSell,
		Image:      it.Image,
		IsActive:   it.IsActive,
		IsPromo:    it.IsPromo,
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
