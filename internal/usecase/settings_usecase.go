package usecase

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"topup_store/internal/domain/entities"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordRequired   = errors.New("password required")
	ErrInvalidPassword    = errors.New("invalid admin password")
	ErrInvalidGatewayMode = errors.New("invalid gateway mode")
	ErrInvalidImage       = errors.New("file is not an image")
	ErrImageTooLarge      = errors.New("image too large")
	ErrEmptyImage         = errors.New("empty image")
)

const defaultUploadMaxBytes int64 = 2 << 20

// AdminConfig is what the admin panel loads on start.
type AdminConfig struct {
	General entities.GeneralSettings
	Assets  entities.Assets
}

// ISettingsUseCase manages the singleton settings documents and admin access.
type ISettingsUseCase interface {
	Authenticate(ctx context.Context, password string) error
	GetConfig(ctx context.Context) (AdminConfig, error)
	SaveGeneral(ctx context.Context, s entities.GeneralSettings) error
	SaveAssets(ctx context.Context, a entities.Assets) error
	EncodeImage(ctx context.Context, r io.Reader) (string, error)
}

type SettingsOptions struct {
	// BootstrapPassword is accepted while settings/general has no admin password.
	BootstrapPassword string
	UploadMaxBytes    int64
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
	opts SettingsOptions
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository, opts SettingsOptions) *SettingsUseCase {
	if opts.UploadMaxBytes <= 0 {
		opts.UploadMaxBytes = defaultUploadMaxBytes
	}
	return &SettingsUseCase{repo: repo, opts: opts}
}

func (u *SettingsUseCase) Authenticate(ctx context.Context, password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	general, err := u.repo.GetGeneral(ctx)
	if err != nil {
		return err
	}
	if !passwordMatches(general.AdminPassword, u.opts.BootstrapPassword, password) {
		return ErrInvalidPassword
	}
	return nil
}

// passwordMatches checks the stored password, falling back to the bootstrap one
// while nothing is stored. Stored values are bcrypt hashes; plain values written
// by hand into the settings document are still accepted.
func passwordMatches(stored, bootstrap, given string) bool {
	switch {
	case isBcryptHash(stored):
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	case stored != "":
		return subtle.ConstantTimeCompare([]byte(given), []byte(stored)) == 1
	case bootstrap != "":
		return subtle.ConstantTimeCompare([]byte(given), []byte(bootstrap)) == 1
	}
	return false
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}

func (u *SettingsUseCase) GetConfig(ctx context.Context) (AdminConfig, error) {
	general, err := u.repo.GetGeneral(ctx)
	if err != nil {
		return AdminConfig{}, err
	}
	assets, err := u.repo.GetAssets(ctx)
	if err != nil {
		return AdminConfig{}, err
	}
	return AdminConfig{General: general, Assets: normalizeAssets(assets)}, nil
}

// SaveGeneral overwrites settings/general. An empty admin password keeps the current one.
func (u *SettingsUseCase) SaveGeneral(ctx context.Context, s entities.GeneralSettings) error {
	s.TripayAPIKey = strings.TrimSpace(s.TripayAPIKey)
	s.TripayPrivateKey = strings.TrimSpace(s.TripayPrivateKey)
	s.TripayMerchantCode = strings.TrimSpace(s.TripayMerchantCode)
	s.DigiflazzUsername = strings.TrimSpace(s.DigiflazzUsername)
	s.DigiflazzAPIKey = strings.TrimSpace(s.DigiflazzAPIKey)

	switch mode := strings.ToLower(strings.TrimSpace(s.TripayMode)); mode {
	case "":
		s.TripayMode = entities.GatewayModeSandbox
	case entities.GatewayModeSandbox, entities.GatewayModeProduction:
		s.TripayMode = mode
	default:
		return ErrInvalidGatewayMode
	}

	if s.AdminPassword == "" {
		current, err := u.repo.GetGeneral(ctx)
		if err != nil {
			return err
		}
		s.AdminPassword = current.AdminPassword
	} else if !isBcryptHash(s.AdminPassword) {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		s.AdminPassword = string(hash)
	}

	if err := u.repo.SaveGeneral(ctx, s); err != nil {
		logger.L().Errorf("[settings][usecase] save general failed err=%v", err)
		return err
	}
	logger.L().Infof("[settings][usecase] general settings saved mode=%s merchant=%s", s.TripayMode, s.TripayMerchantCode)
	return nil
}

func (u *SettingsUseCase) SaveAssets(ctx context.Context, a entities.Assets) error {
	a = normalizeAssets(a)
	if err := u.repo.SaveAssets(ctx, a); err != nil {
		logger.L().Errorf("[settings][usecase] save assets failed err=%v", err)
		return err
	}
	logger.L().Infof("[settings][usecase] assets saved sliders=%d banners=%d", len(a.Sliders), len(a.Banners))
	return nil
}

// EncodeImage turns an uploaded image into a data URI stored inline in documents.
func (u *SettingsUseCase) EncodeImage(_ context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, u.opts.UploadMaxBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if int64(len(data)) > u.opts.UploadMaxBytes {
		return "", ErrImageTooLarge
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", ErrInvalidImage
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func normalizeAssets(a entities.Assets) entities.Assets {
	sliders := make([]string, 0, len(a.Sliders))
	for _, s := range a.Sliders {
		if s = strings.TrimSpace(s); s != "" {
			sliders = append(sliders, s)
		}
	}
	banners := make(map[string]string, len(a.Banners))
	for brand, uri := range a.Banners {
		brand, uri = strings.TrimSpace(brand), strings.TrimSpace(uri)
		if brand != "" && uri != "" {
			banners[brand] = uri
		}
	}
	return entities.Assets{Sliders: sliders, Banners: banners}
}
