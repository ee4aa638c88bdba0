package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"topup_store/internal/domain/entities"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase/interfaces"
)

var (
	ErrInvalidProductSKU     = errors.New("invalid product sku")
	ErrInvalidProductPrice   = errors.New("invalid product price")
	ErrSupplierNotConfigured = errors.New("supplier not configured")
	ErrSupplierRequestFailed = errors.New("supplier request failed")
)

// gameCategory is the supplier category synced into the catalog.
const gameCategory = "games"

// ICatalogUseCase manages products.
//
// Field ownership on sync:
//   - supplier owns name, brand, category and price_modal
//   - the operator owns markup, image, is_active and is_promo
type ICatalogUseCase interface {
	ListActive(ctx context.Context) ([]entities.Product, error)
	ListAll(ctx context.Context) ([]entities.Product, error)
	SaveProducts(ctx context.Context, products []entities.Product) (int, error)
	SyncFromSupplier(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) (int, error)
}

type CatalogOptions struct {
	DefaultMarkup    int64
	PlaceholderImage string
}

type CatalogUseCase struct {
	repo     interfaces.IProductRepository
	settings interfaces.ISettingsRepository
	supplier interfaces.ISupplierClient
	opts     CatalogOptions
	now      func() time.Time
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IProductRepository, settings interfaces.ISettingsRepository, supplier interfaces.ISupplierClient, opts CatalogOptions) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, settings: settings, supplier: supplier, opts: opts, now: time.Now}
}

func (u *CatalogUseCase) ListActive(ctx context.Context) ([]entities.Product, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return activeProducts(all), nil
}

func (u *CatalogUseCase) ListAll(ctx context.Context) ([]entities.Product, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortProducts(all)
	return all, nil
}

// SaveProducts overwrites the given products by SKU. PriceSell is always recomputed.
func (u *CatalogUseCase) SaveProducts(ctx context.Context, products []entities.Product) (int, error) {
	now := u.now().UTC()
	bySKU := make(map[string]int, len(products))
	out := make([]entities.Product, 0, len(products))
	for _, p := range products {
		p.SKU = strings.TrimSpace(p.SKU)
		if p.SKU == "" {
			return 0, ErrInvalidProductSKU
		}
		p = p.WithDerivedPrice()
		if p.PriceModal < 0 || p.PriceSell < 0 {
			return 0, fmt.Errorf("%w: sku=%s", ErrInvalidProductPrice, p.SKU)
		}
		p.UpdatedAt = now
		if i, ok := bySKU[p.SKU]; ok {
			out[i] = p
			continue
		}
		bySKU[p.SKU] = len(out)
		out = append(out, p)
	}
	if len(out) == 0 {
		return 0, nil
	}
	if err := u.repo.SaveAll(ctx, out); err != nil {
		logger.L().Errorf("[catalog][usecase] save products failed count=%d err=%v", len(out), err)
		return 0, err
	}
	logger.L().Infof("[catalog][usecase] saved products count=%d", len(out))
	return len(out), nil
}

// SyncFromSupplier pulls the supplier price list and merges it into the catalog.
// The write is a batch, not a transaction.
func (u *CatalogUseCase) SyncFromSupplier(ctx context.Context) (int, error) {
	log := logger.L()
	if u.supplier == nil {
		return 0, ErrSupplierNotConfigured
	}
	general, err := u.settings.GetGeneral(ctx)
	if err != nil {
		return 0, err
	}
	creds := general.SupplierCredentials()
	if !creds.Configured() {
		log.Warnf("[catalog][sync] supplier credentials missing")
		return 0, ErrSupplierNotConfigured
	}

	log.Infof("[catalog][sync] pulling price list username=%s", creds.Username)
	items, err := u.supplier.PriceList(ctx, creds)
	if err != nil {
		log.Errorf("[catalog][sync] price list failed err=%v", err)
		return 0, fmt.Errorf("%w: %w", ErrSupplierRequestFailed, err)
	}

	existing, err := u.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	bySKU := make(map[string]entities.Product, len(existing))
	for _, p := range existing {
		bySKU[p.SKU] = p
	}

	merged := MergeSupplierItems(bySKU, items, u.opts, u.now().UTC())
	if len(merged) == 0 {
		log.Infof("[catalog][sync] no game products in price list total=%d", len(items))
		return 0, nil
	}
	if err := u.repo.SaveAll(ctx, merged); err != nil {
		log.Errorf("[catalog][sync] batch write failed count=%d err=%v", len(merged), err)
		return 0, err
	}
	log.Infof("[catalog][sync] done synced=%d supplier_total=%d", len(merged), len(items))
	return len(merged), nil
}

// MergeSupplierItems applies supplier prices to the catalog, keeping operator fields.
// Items outside the game category are skipped; new SKUs start inactive.
func MergeSupplierItems(existing map[string]entities.Product, items []entities.SupplierItem, opts CatalogOptions, now time.Time) []entities.Product {
	out := make([]entities.Product, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		sku := strings.TrimSpace(it.SKU)
		if sku == "" || seen[sku] || !strings.EqualFold(strings.TrimSpace(it.Category), gameCategory) {
			continue
		}
		seen[sku] = true

		p, ok := existing[sku]
		if !ok {
			p = entities.Product{
				SKU:      sku,
				Markup:   opts.DefaultMarkup,
				Image:    opts.PlaceholderImage,
				IsActive: false,
				IsPromo:  false,
			}
		}
		p.Name = it.Name
		p.Brand = it.Brand
		p.Category = it.Category
		p.PriceModal = it.Price
		p.UpdatedAt = now
		out = append(out, p.WithDerivedPrice())
	}
	return out
}

func (u *CatalogUseCase) DeleteAll(ctx context.Context) (int, error) {
	n, err := u.repo.DeleteAll(ctx)
	if err != nil {
		logger.L().Errorf("[catalog][usecase] delete all failed deleted=%d err=%v", n, err)
		return n, err
	}
	logger.L().Warnf("[catalog][usecase] deleted all products count=%d", n)
	return n, nil
}

func activeProducts(all []entities.Product) []entities.Product {
	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sortProducts(out)
	return out
}

func sortProducts(ps []entities.Product) {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].Brand != ps[j].Brand {
			return ps[i].Brand < ps[j].Brand
		}
		if ps[i].PriceSell != ps[j].PriceSell {
			return ps[i].PriceSell < ps[j].PriceSell
		}
		return ps[i].SKU < ps[j].SKU
	})
}
