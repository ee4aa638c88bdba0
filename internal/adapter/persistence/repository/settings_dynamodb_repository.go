package repository

import (
	"context"

	"topup_store/internal/domain/entities"
	"topup_store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultSettingsTableName = "settings"

type generalSettingsItem struct {
	ID                 string `dynamodbav:"id"`
	TripayAPIKey       string `dynamodbav:"tripay_api_key"`
	TripayPrivateKey   string `dynamodbav:"tripay_private_key"`
	TripayMerchantCode string `dynamodbav:"tripay_merchant_code"`
	TripayMode         string `dynamodbav:"tripay_mode"`
	DigiflazzUsername  string `dynamodbav:"digiflazz_username"`
	DigiflazzAPIKey    string `dynamodbav:"digiflazz_api_key"`
	AdminPassword      string `dynamodbav:"admin_password"`
}

type assetsItem struct {
	ID      string            `dynamodbav:"id"`
	Sliders []string          `dynamodbav:"sliders"`
	Banners map[string]string `dynamodbav:"banners"`
}

// SettingsDynamoRepository stores the two singleton settings documents.
//
// Table requirements:
//   - PK: id (string), items "general" and "assets"
type SettingsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoAPI, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultSettingsTableName)}
}

// GetGeneral returns empty settings when the document was never saved.
func (r *SettingsDynamoRepository) GetGeneral(ctx context.Context) (entities.GeneralSettings, error) {
	var it generalSettingsItem
	found, err := r.get(ctx, entities.SettingsGeneralID, &it)
	if err != nil || !found {
		return entities.GeneralSettings{}, err
	}
	return entities.GeneralSettings{
		TripayAPIKey:       it.TripayAPIKey,
		TripayPrivateKey:   it.TripayPrivateKey,
		TripayMerchantCode: it.TripayMerchantCode,
		TripayMode:         it.TripayMode,
		DigiflazzUsername:  it.DigiflazzUsername,
		DigiflazzAPIKey:    it.DigiflazzAPIKey,
		AdminPassword:      it.AdminPassword,
	}, nil
}

func (r *SettingsDynamoRepository) SaveGeneral(ctx context.Context, s entities.GeneralSettings) error {
	return r.put(ctx, generalSettingsItem{
		ID:                 entities.SettingsGeneralID,
		TripayAPIKey:       s.TripayAPIKey,
		TripayPrivateKey:   s.TripayPrivateKey,
		TripayMerchantCode: s.TripayMerchantCode,
		TripayMode:         s.TripayMode,
		DigiflazzUsername:  s.DigiflazzUsername,
		DigiflazzAPIKey:    s.DigiflazzAPIKey,
		AdminPassword:      s.AdminPassword,
	})
}

func (r *SettingsDynamoRepository) GetAssets(ctx context.Context) (entities.Assets, error) {
	var it assetsItem
	found, err := r.get(ctx, entities.SettingsAssetsID, &it)
	if err != nil || !found {
		return entities.Assets{}, err
	}
	return entities.Assets{Sliders: it.Sliders, Banners: it.Banners}, nil
}

func (r *SettingsDynamoRepository) SaveAssets(ctx context.Context, a entities.Assets) error {
	sliders := a.Sliders
	if sliders == nil {
		sliders = []string{}
	}
	banners := a.Banners
	if banners == nil {
		banners = map[string]string{}
	}
	return r.put(ctx, assetsItem{ID: entities.SettingsAssetsID, Sliders: sliders, Banners: banners})
}

func (r *SettingsDynamoRepository) get(ctx context.Context, id string, into any) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(out.Item, into)
}

func (r *SettingsDynamoRepository) put(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
