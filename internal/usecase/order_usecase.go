package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"topup_store/internal/domain/entities"
	"topup_store/internal/domain/signature"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidRefID         = errors.New("invalid ref_id")
	ErrInvalidSKU           = errors.New("invalid sku")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidCustomerNo    = errors.New("invalid customer_no")
	ErrInvalidMethod        = errors.New("invalid payment method")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrGatewayRequestFailed = errors.New("payment gateway request failed")
)

const defaultListLimit = 50

// CreateOrderInput is the checkout request coming from the storefront.
type CreateOrderInput struct {
	SKU        string
	Amount     int64
	CustomerNo string
	Method     string
	Nickname   string
	Game       string
}

// IOrderUseCase is the order ledger.
//
//   - Create opens one gateway transaction and persists one UNPAID order. It is not idempotent.
//   - GetStatus reconciles an UNPAID order against the gateway on every poll.
type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetStatus(ctx context.Context, refID string) (entities.Order, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Order, error)
}

// OrderOptions carries the customer contact defaults sent to the gateway.
type OrderOptions struct {
	CustomerEmail string
	CustomerPhone string
	ReturnURL     string
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	products interfaces.IProductRepository
	settings interfaces.ISettingsRepository
	gateway  interfaces.IPaymentGateway
	events   interfaces.IOrderEventPublisher
	opts     OrderOptions

	now            func() time.Time
	newMerchantRef func(now time.Time) string
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	products interfaces.IProductRepository,
	settings interfaces.ISettingsRepository,
	gateway interfaces.IPaymentGateway,
	events interfaces.IOrderEventPublisher,
	opts OrderOptions,
) *OrderUseCase {
	return &OrderUseCase{
		repo:           repo,
		products:       products,
		settings:       settings,
		gateway:        gateway,
		events:         events,
		opts:           opts,
		now:            time.Now,
		newMerchantRef: newMerchantRef,
	}
}

// newMerchantRef builds INV-<unix>-<128 bit random hex>.
func newMerchantRef(now time.Time) string {
	return "INV-" + strconv.FormatInt(now.Unix(), 10) + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.CustomerNo = strings.TrimSpace(in.CustomerNo)
	in.Method = strings.TrimSpace(in.Method)
	in.Game = strings.TrimSpace(in.Game)
	in.Nickname = strings.TrimSpace(in.Nickname)
	log := logger.L()
	log.Infof("[order][usecase] create start sku=%q amount=%d method=%q", in.SKU, in.Amount, in.Method)

	switch {
	case in.SKU == "":
		return entities.Order{}, ErrInvalidSKU
	case in.Amount <= 0:
		return entities.Order{}, ErrInvalidAmount
	case in.CustomerNo == "":
		return entities.Order{}, ErrInvalidCustomerNo
	case in.Method == "":
		return entities.Order{}, ErrInvalidMethod
	}
	if u.gateway == nil {
		log.Errorf("[order][usecase] gateway client not wired sku=%s", in.SKU)
		return entities.Order{}, ErrGatewayNotConfigured
	}

	general, err := u.settings.GetGeneral(ctx)
	if err != nil {
		log.Errorf("[order][usecase] failed loading settings err=%v", err)
		return entities.Order{}, err
	}
	creds := general.GatewayCredentials()
	if !creds.Configured() {
		log.Warnf("[order][usecase] gateway credentials missing sku=%s", in.SKU)
		return entities.Order{}, ErrGatewayNotConfigured
	}

	productName := u.resolveProductName(ctx, in.SKU, in.Game)

	now := u.now().UTC()
	merchantRef := u.newMerchantRef(now)
	customerName := in.Nickname
	if customerName == "" {
		customerName = in.CustomerNo
	}

	req := entities.CreateTransactionRequest{
		Method:        in.Method,
		MerchantRef:   merchantRef,
		Amount:        in.Amount,
		CustomerName:  customerName,
		CustomerEmail: u.opts.CustomerEmail,
		CustomerPhone: u.opts.CustomerPhone,
		ItemSKU:       in.SKU,
		ItemName:      productName,
		ReturnURL:     u.opts.ReturnURL,
		ExpiresAt:     now.Add(entities.OrderValidity),
		Signature:     signature.Transaction(creds.PrivateKey, creds.MerchantCode, merchantRef, in.Amount),
	}

	log.Infof("[order][usecase] calling payment gateway merchant_ref=%s", merchantRef)
	created, err := u.gateway.CreateTransaction(ctx, creds, req)
	if err != nil {
		log.Errorf("[order][usecase] payment gateway failed merchant_ref=%s err=%v", merchantRef, err)
		return entities.Order{}, fmt.Errorf("%w: %w", ErrGatewayRequestFailed, err)
	}
	if strings.TrimSpace(created.Reference) == "" {
		log.Errorf("[order][usecase] payment gateway returned no reference merchant_ref=%s", merchantRef)
		return entities.Order{}, ErrGatewayRequestFailed
	}

	o := entities.Order{
		RefID:       created.Reference,
		MerchantRef: merchantRef,
		SKU:         in.SKU,
		Game:        in.Game,
		ProductName: productName,
		Nickname:    in.Nickname,
		UserID:      in.CustomerNo,
		Amount:      in.Amount,
		Method:      in.Method,
		Status:      entities.OrderStatusUnpaid,
		QRURL:       created.QRURL,
		PayCode:     created.PayCode,
		CheckoutURL: created.CheckoutURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Errorf("[order][usecase] order repository create failed ref_id=%s err=%v", o.RefID, err)
		return entities.Order{}, err
	}
	u.publish(ctx, interfaces.EventOrderCreated, saved)
	log.Infof("[order][usecase] create success ref_id=%s merchant_ref=%s", saved.RefID, saved.MerchantRef)
	return saved, nil
}

// resolveProductName never fails the checkout: the catalog is only used for display.
func (u *OrderUseCase) resolveProductName(ctx context.Context, sku, game string) string {
	fallback := "Top Up"
	if game != "" {
		fallback = "Top Up " + game
	}
	if u.products == nil {
		return fallback
	}
	p, err := u.products.GetBySKU(ctx, sku)
	if err != nil {
		logger.L().Warnf("[order][usecase] catalog lookup failed sku=%s err=%v", sku, err)
		return fallback
	}
	if p.SKU == "" || strings.TrimSpace(p.Name) == "" {
		return fallback
	}
	return p.Name
}

func (u *OrderUseCase) GetStatus(ctx context.Context, refID string) (entities.Order, error) {
	refID = strings.TrimSpace(refID)
	if refID == "" {
		return entities.Order{}, ErrInvalidRefID
	}
	log := logger.L()

	o, err := u.repo.GetByRefID(ctx, refID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.RefID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if o.Status.IsTerminal() {
		return o, nil
	}

	// From here on every failure serves the stored record.
	if u.gateway == nil {
		return o, nil
	}
	general, err := u.settings.GetGeneral(ctx)
	if err != nil {
		log.Warnf("[order][reconcile] settings unavailable ref_id=%s err=%v", refID, err)
		return o, nil
	}
	creds := general.GatewayCredentials()
	if !creds.Configured() {
		return o, nil
	}

	detail, err := u.gateway.GetDetail(ctx, creds, refID)
	if err != nil {
		log.Warnf("[order][reconcile] gateway detail failed ref_id=%s err=%v", refID, err)
		return o, nil
	}

	remote := entities.OrderStatus(strings.ToUpper(strings.TrimSpace(detail.Status)))
	if remote == o.Status || !entities.CanTransition(o.Status, remote) {
		return o, nil
	}

	log.Infof("[order][reconcile] status change ref_id=%s from=%s to=%s", refID, o.Status, remote)
	updated, err := u.repo.UpdateStatus(ctx, refID, o.Status, remote)
	if err != nil {
		log.Errorf("[order][reconcile] status update failed ref_id=%s err=%v", refID, err)
		return o, nil
	}
	if updated.RefID == "" {
		// Another poll won the conditional write; serve whatever it stored.
		current, err := u.repo.GetByRefID(ctx, refID)
		if err != nil || current.RefID == "" {
			return o, nil
		}
		return current, nil
	}

	u.onTransition(ctx, updated)
	return updated, nil
}

// onTransition runs once per applied transition.
// PAID is where supplier fulfillment belongs; for now it is only announced.
func (u *OrderUseCase) onTransition(ctx context.Context, o entities.Order) {
	switch o.Status {
	case entities.OrderStatusPaid:
		u.publish(ctx, interfaces.EventOrderPaid, o)
	case entities.OrderStatusExpired:
		u.publish(ctx, interfaces.EventOrderExpired, o)
	case entities.OrderStatusFailed:
		u.publish(ctx, interfaces.EventOrderFailed, o)
	}
}

func (u *OrderUseCase) publish(ctx context.Context, eventType string, o entities.Order) {
	if u.events == nil {
		return
	}
	u.events.Publish(ctx, eventType, o)
}

func (u *OrderUseCase) ListRecent(ctx context.Context, limit int) ([]entities.Order, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultListLimit
	}
	return u.repo.ListRecent(ctx, limit)
}
