package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"topup_store/internal/domain/entities"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase/interfaces"
)

var (
	ErrInvalidNicknameRequest = errors.New("game and id are required")
	ErrNicknameNotFound       = errors.New("nickname not found")
	ErrNicknameLookupFailed   = errors.New("nickname lookup failed")
)

// InitData is everything the storefront needs on first paint.
type InitData struct {
	Sliders  []string
	Banners  map[string]string
	Products []entities.Product
}

type IStorefrontUseCase interface {
	InitData(ctx context.Context) (InitData, error)
	CheckNickname(ctx context.Context, game, userID, zoneID string) (string, error)
	Channels(ctx context.Context) (json.RawMessage, error)
}

type StorefrontUseCase struct {
	products interfaces.IProductRepository
	settings interfaces.ISettingsRepository
	gateway  interfaces.IPaymentGateway
	nickname interfaces.INicknameClient
	cache    interfaces.IChannelCache
}

var _ IStorefrontUseCase = (*StorefrontUseCase)(nil)

func NewStorefrontUseCase(
	products interfaces.IProductRepository,
	settings interfaces.ISettingsRepository,
	gateway interfaces.IPaymentGateway,
	nickname interfaces.INicknameClient,
	cache interfaces.IChannelCache,
) *StorefrontUseCase {
	return &StorefrontUseCase{products: products, settings: settings, gateway: gateway, nickname: nickname, cache: cache}
}

func (u *StorefrontUseCase) InitData(ctx context.Context) (InitData, error) {
	assets, err := u.settings.GetAssets(ctx)
	if err != nil {
		return InitData{}, err
	}
	all, err := u.products.ListAll(ctx)
	if err != nil {
		return InitData{}, err
	}
	assets = normalizeAssets(assets)
	return InitData{Sliders: assets.Sliders, Banners: assets.Banners, Products: activeProducts(all)}, nil
}

func (u *StorefrontUseCase) CheckNickname(ctx context.Context, game, userID, zoneID string) (string, error) {
	game, userID, zoneID = strings.TrimSpace(game), strings.TrimSpace(userID), strings.TrimSpace(zoneID)
	if game == "" || userID == "" {
		return "", ErrInvalidNicknameRequest
	}
	if u.nickname == nil {
		return "", ErrNicknameLookupFailed
	}
	name, err := u.nickname.Lookup(ctx, game, userID, zoneID)
	if err != nil {
		logger.L().Warnf("[storefront][nickname] lookup failed game=%s id=%s err=%v", game, userID, err)
		return "", fmt.Errorf("%w: %w", ErrNicknameLookupFailed, err)
	}
	if strings.TrimSpace(name) == "" {
		return "", ErrNicknameNotFound
	}
	return name, nil
}

// Channels returns the gateway channel list as received, cached per merchant.
func (u *StorefrontUseCase) Channels(ctx context.Context) (json.RawMessage, error) {
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	general, err := u.settings.GetGeneral(ctx)
	if err != nil {
		return nil, err
	}
	creds := general.GatewayCredentials()
	if creds.APIKey == "" {
		return nil, ErrGatewayNotConfigured
	}

	key := channelCacheKey(creds)
	if u.cache != nil {
		if cached, ok := u.cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	channels, err := u.gateway.ListChannels(ctx, creds)
	if err != nil {
		logger.L().Errorf("[storefront][channels] gateway failed err=%v", err)
		return nil, fmt.Errorf("%w: %w", ErrGatewayRequestFailed, err)
	}
	if u.cache != nil {
		u.cache.Set(ctx, key, channels)
	}
	return channels, nil
}

func channelCacheKey(creds entities.GatewayCredentials) string {
	mode := creds.Mode
	if mode == "" {
		mode = entities.GatewayModeSandbox
	}
	return "channels:" + mode + ":" + creds.MerchantCode
}
