package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"topup_store/internal/domain/entities"
	"topup_store/internal/domain/signature"
	mock_interfaces "topup_store/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	testNow      = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	testSettings = entities.GeneralSettings{
		TripayAPIKey:       "api-key",
		TripayPrivateKey:   "private-key",
		TripayMerchantCode: "T0001",
		TripayMode:         entities.GatewayModeSandbox,
	}
)

func fixedOrderUseCase(uc *OrderUseCase) *OrderUseCase {
	uc.now = func() time.Time { return testNow }
	uc.newMerchantRef = func(time.Time) string { return "INV-1-abc" }
	return uc
}

// memOrderRepo mimics the conditional status write of the DynamoDB repository.
type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]entities.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]entities.Order{}}
}

func (r *memOrderRepo) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.RefID]; ok {
		return entities.Order{}, errors.New("conditional check failed")
	}
	r.orders[o.RefID] = o
	return o, nil
}

func (r *memOrderRepo) GetByRefID(_ context.Context, refID string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orders[refID], nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, refID string, from, to entities.OrderStatus) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[refID]
	if !ok || o.Status != from {
		return entities.Order{}, nil
	}
	o.Status = to
	r.orders[refID] = o
	return o, nil
}

func (r *memOrderRepo) ListRecent(_ context.Context, _ int) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

// fakeGateway reports a configurable remote status.
type fakeGateway struct {
	mu          sync.Mutex
	status      string
	detailCalls int
	createErr   error
}

func (g *fakeGateway) ListChannels(context.Context, entities.GatewayCredentials) (json.RawMessage, error) {
	return json.RawMessage(`{"success":true,"data":[]}`), nil
}

func (g *fakeGateway) CreateTransaction(_ context.Context, _ entities.GatewayCredentials, req entities.CreateTransactionRequest) (entities.CreatedTransaction, error) {
	if g.createErr != nil {
		return entities.CreatedTransaction{}, g.createErr
	}
	return entities.CreatedTransaction{
		Reference:   "DEV-T0001" + req.MerchantRef,
		MerchantRef: req.MerchantRef,
		Amount:      req.Amount,
		Status:      "UNPAID",
		QRURL:       "https://tripay.test/qr/" + req.MerchantRef,
		CheckoutURL: "https://tripay.test/checkout/" + req.MerchantRef,
	}, nil
}

func (g *fakeGateway) GetDetail(_ context.Context, _ entities.GatewayCredentials, reference string) (entities.TransactionDetail, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.detailCalls++
	return entities.TransactionDetail{Reference: reference, Status: g.status}, nil
}

func (g *fakeGateway) setStatus(s string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = s
}

func TestOrderUseCase_Create_Validations(t *testing.T) {
	valid := CreateOrderInput{SKU: "ML100", Amount: 17000, CustomerNo: "12345(678)", Method: "QRIS"}
	cases := []struct {
		name   string
		mutate func(in *CreateOrderInput)
		want   error
	}{
		{name: "empty sku", mutate: func(in *CreateOrderInput) { in.SKU = "  " }, want: ErrInvalidSKU},
		{name: "zero amount", mutate: func(in *CreateOrderInput) { in.Amount = 0 }, want: ErrInvalidAmount},
		{name: "negative amount", mutate: func(in *CreateOrderInput) { in.Amount = -5 }, want: ErrInvalidAmount},
		{name: "empty customer", mutate: func(in *CreateOrderInput) { in.CustomerNo = "" }, want: ErrInvalidCustomerNo},
		{name: "empty method", mutate: func(in *CreateOrderInput) { in.Method = " " }, want: ErrInvalidMethod},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewOrderUseCase(nil, nil, nil, nil, nil, OrderOptions{})
			in := valid
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("gateway not wired", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, nil, OrderOptions{})
		_, err := uc.Create(context.Background(), valid)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})
}

func TestOrderUseCase_Create_Settings(t *testing.T) {
	in := CreateOrderInput{SKU: "ML100", Amount: 17000, CustomerNo: "123", Method: "QRIS"}

	t.Run("settings error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(nil, nil, settings, gateway, nil, OrderOptions{})

		settings.EXPECT().GetGeneral(gomock.Any()).Return(entities.GeneralSettings{}, errors.New("db"))

		_, err := uc.Create(context.Background(), in)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("credentials missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(nil, nil, settings, gateway, nil, OrderOptions{})

		settings.EXPECT().GetGeneral(gomock.Any()).Return(entities.GeneralSettings{TripayAPIKey: "only-key"}, nil)

		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})
}

func TestOrderUseCase_Create_GatewayFailurePersistsNothing(t *testing.T) {
	cases := []struct {
		name    string
		created entities.CreatedTransaction
		err     error
	}{
		{name: "transport error", err: errors.New("dial tcp: timeout")},
		{name: "signature rejected", err: errors.New(`tripay: Invalid signature`)},
		{name: "empty reference", created: entities.CreatedTransaction{Status: "UNPAID"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			products := mock_interfaces.NewMockIProductRepository(ctrl)
			settings := mock_interfaces.NewMockISettingsRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			events := mock_interfaces.NewMockIOrderEventPublisher(ctrl)
			uc := fixedOrderUseCase(NewOrderUseCase(repo, products, settings, gateway, events, OrderOptions{}))

			settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil)
			products.EXPECT().GetBySKU(gomock.Any(), "ML100").Return(entities.Product{SKU: "ML100", Name: "86 Diamonds"}, nil)
			gateway.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.created, tc.err)
			// repo.Create and events.Publish must not be called.

			_, err := uc.Create(context.Background(), CreateOrderInput{SKU: "ML100", Amount: 17000, CustomerNo: "123", Method: "QRIS"})
			if !errors.Is(err, ErrGatewayRequestFailed) {
				t.Fatalf("expected ErrGatewayRequestFailed, got %v", err)
			}
		})
	}
}

func TestOrderUseCase_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	settings := mock_interfaces.NewMockISettingsRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	events := mock_interfaces.NewMockIOrderEventPublisher(ctrl)
	opts := OrderOptions{CustomerEmail: "buyer@topup.test", CustomerPhone: "0800", ReturnURL: "https://shop.test/invoice"}
	uc := fixedOrderUseCase(NewOrderUseCase(repo, products, settings, gateway, events, opts))

	settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil)
	products.EXPECT().GetBySKU(gomock.Any(), "ML100").Return(entities.Product{SKU: "ML100", Name: "86 Diamonds"}, nil)
	gateway.EXPECT().CreateTransaction(gomock.Any(), testSettings.GatewayCredentials(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.GatewayCredentials, req entities.CreateTransactionRequest) (entities.CreatedTransaction, error) {
			if req.MerchantRef != "INV-1-abc" || req.Amount != 17000 || req.Method != "QRIS" {
				t.Fatalf("unexpected request: %+v", req)
			}
			if req.Signature != signature.Transaction("private-key", "T0001", "INV-1-abc", 17000) {
				t.Fatalf("unexpected signature %s", req.Signature)
			}
			if !req.ExpiresAt.Equal(testNow.Add(24 * time.Hour)) {
				t.Fatalf("expiry must be 24h from now, got %s", req.ExpiresAt)
			}
			if req.CustomerName != "Budi" || req.CustomerEmail != "buyer@topup.test" || req.ItemName != "86 Diamonds" || req.ReturnURL != opts.ReturnURL {
				t.Fatalf("unexpected customer/item fields: %+v", req)
			}
			return entities.CreatedTransaction{Reference: "DEV-T0001123", QRURL: "https://qr", CheckoutURL: "https://checkout"}, nil
		},
	)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			if o.RefID != "DEV-T0001123" || o.Status != entities.OrderStatusUnpaid || o.ProductName != "86 Diamonds" {
				t.Fatalf("unexpected order: %+v", o)
			}
			if o.UserID != "123" || o.Nickname != "Budi" || o.Game != "Mobile Legends" || !o.CreatedAt.Equal(testNow) {
				t.Fatalf("unexpected order fields: %+v", o)
			}
			return o, nil
		},
	)
	events.EXPECT().Publish(gomock.Any(), "OrderCreated", gomock.Any())

	o, err := uc.Create(context.Background(), CreateOrderInput{
		SKU: " ML100 ", Amount: 17000, CustomerNo: "123", Method: "QRIS", Nickname: "Budi", Game: "Mobile Legends",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.QRURL != "https://qr" || o.CheckoutURL != "https://checkout" {
		t.Fatalf("unexpected artifacts: %+v", o)
	}
	if !o.ExpiresAt().Equal(testNow.Add(entities.OrderValidity)) {
		t.Fatalf("unexpected expiry %s", o.ExpiresAt())
	}
}

func TestOrderUseCase_Create_CatalogLookupIsNonFatal(t *testing.T) {
	cases := []struct {
		name    string
		product entities.Product
		err     error
		game    string
		want    string
	}{
		{name: "lookup error", err: errors.New("db"), game: "Free Fire", want: "Top Up Free Fire"},
		{name: "missing product", product: entities.Product{}, want: "Top Up"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			products := mock_interfaces.NewMockIProductRepository(ctrl)
			settings := mock_interfaces.NewMockISettingsRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := fixedOrderUseCase(NewOrderUseCase(repo, products, settings, gateway, nil, OrderOptions{}))

			settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil)
			products.EXPECT().GetBySKU(gomock.Any(), "FF50").Return(tc.product, tc.err)
			gateway.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CreatedTransaction{Reference: "R1"}, nil)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				return o, nil
			})

			o, err := uc.Create(context.Background(), CreateOrderInput{SKU: "FF50", Amount: 8000, CustomerNo: "9", Method: "BRIVA", Game: tc.game})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if o.ProductName != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, o.ProductName)
			}
		})
	}
}

func TestOrderUseCase_Create_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	settings := mock_interfaces.NewMockISettingsRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := fixedOrderUseCase(NewOrderUseCase(repo, nil, settings, gateway, nil, OrderOptions{}))

	settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil)
	gateway.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CreatedTransaction{Reference: "R1"}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db-create"))

	_, err := uc.Create(context.Background(), CreateOrderInput{SKU: "ML100", Amount: 1, CustomerNo: "1", Method: "QRIS"})
	if err == nil || err.Error() != "db-create" {
		t.Fatalf("expected db-create, got %v", err)
	}
}

func TestOrderUseCase_Create_NotIdempotent(t *testing.T) {
	repo := newMemOrderRepo()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	settings := mock_interfaces.NewMockISettingsRepository(ctrl)
	settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil).Times(2)
	uc := NewOrderUseCase(repo, nil, settings, &fakeGateway{}, nil, OrderOptions{})

	in := CreateOrderInput{SKU: "ML100", Amount: 17000, CustomerNo: "1", Method: "QRIS"}
	a, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.MerchantRef == b.MerchantRef || a.RefID == b.RefID {
		t.Fatalf("expected two distinct orders, got %s and %s", a.RefID, b.RefID)
	}
	if len(repo.orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(repo.orders))
	}
}

func TestOrderUseCase_GetStatus(t *testing.T) {
	unpaid := entities.Order{RefID: "R1", Status: entities.OrderStatusUnpaid}

	t.Run("empty ref", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, nil, OrderOptions{})
		_, err := uc.GetStatus(context.Background(), " ")
		if !errors.Is(err, ErrInvalidRefID) {
			t.Fatalf("expected ErrInvalidRefID, got %v", err)
		}
	})

	t.Run("unknown ref is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, nil, OrderOptions{})
		repo.EXPECT().GetByRefID(gomock.Any(), "nope").Return(entities.Order{}, nil)

		_, err := uc.GetStatus(context.Background(), "nope")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, nil, OrderOptions{})
		repo.EXPECT().GetByRefID(gomock.Any(), "R1").Return(entities.Order{}, errors.New("db"))

		_, err := uc.GetStatus(context.Background(), "R1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	for _, terminal := range []entities.OrderStatus{entities.OrderStatusPaid, entities.OrderStatusExpired, entities.OrderStatusFailed} {
		t.Run("terminal "+string(terminal)+" skips gateway", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			settings := mock_interfaces.NewMockISettingsRepository(ctrl)
			uc := NewOrderUseCase(repo, nil, settings, gateway, nil, OrderOptions{})
			repo.EXPECT().GetByRefID(gomock.Any(), "R1").Return(entities.Order{RefID: "R1", Status: terminal}, nil)

			o, err := uc.GetStatus(context.Background(), "R1")
			if err != nil || o.Status != terminal {
				t.Fatalf("unexpected result err=%v order=%+v", err, o)
			}
		})
	}

	t.Run("remote failure serves stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, settings, gateway, nil, OrderOptions{})

		repo.EXPECT().GetByRefID(gomock.Any(), "R1").Return(unpaid, nil)
		settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil)
		gateway.EXPECT().GetDetail(gomock.Any(), gomock.Any(), "R1").Return(entities.TransactionDetail{}, errors.New("502 bad gateway"))

		o, err := uc.GetStatus(context.Background(), "R1")
		if err != nil || o.Status != entities.OrderStatusUnpaid {
			t.Fatalf("unexpected result err=%v order=%+v", err, o)
		}
	})

	t.Run("settings failure serves stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, settings, gateway, nil, OrderOptions{})

		repo.EXPECT().GetByRefID(gomock.Any(), "R1").Return(unpaid, nil)
		settings.EXPECT().GetGeneral(gomock.Any()).Return(entities.GeneralSettings{}, errors.New("db"))

		o, err := uc.GetStatus(context.Background(), "R1")
		if err != nil || o.Status != entities.OrderStatusUnpaid {
			t.Fatalf("unexpected result err=%v order=%+v", err, o)
		}
	})

	for _, remote := range []string{"UNPAID", "REFUND", "something-new", ""} {
		t.Run("remote "+remote+" is not a transition", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			settings := mock_interfaces.NewMockISettingsRepository(ctrl)
			uc := NewOrderUseCase(repo, nil, settings, gateway, nil, OrderOptions{})

			repo.EXPECT().GetByRefID(gomock.Any(), "R1").Return(unpaid, nil)
			settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil)
			gateway.EXPECT().GetDetail(gomock.Any(), gomock.Any(), "R1").Return(entities.TransactionDetail{Status: remote}, nil)

			o, err := uc.GetStatus(context.Background(), "R1")
			if err != nil || o.Status != entities.OrderStatusUnpaid {
				t.Fatalf("unexpected result err=%v order=%+v", err, o)
			}
		})
	}

	t.Run("paid transition publishes event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		events := mock_interfaces.NewMockIOrderEventPublisher(ctrl)
		uc := NewOrderUseCase(repo, nil, settings, gateway, events, OrderOptions{})

		repo.EXPECT().GetByRefID(gomock.Any(), "R1").Return(unpaid, nil)
		settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil)
		gateway.EXPECT().GetDetail(gomock.Any(), gomock.Any(), "R1").Return(entities.TransactionDetail{Status: "paid"}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "R1", entities.OrderStatusUnpaid, entities.OrderStatusPaid).
			Return(entities.Order{RefID: "R1", Status: entities.OrderStatusPaid}, nil)
		events.EXPECT().Publish(gomock.Any(), "OrderPaid", gomock.Any())

		o, err := uc.GetStatus(context.Background(), "R1")
		if err != nil || o.Status != entities.OrderStatusPaid {
			t.Fatalf("unexpected result err=%v order=%+v", err, o)
		}
	})

	t.Run("lost race re-reads stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, settings, gateway, nil, OrderOptions{})

		gomock.InOrder(
			repo.EXPECT().GetByRefID(gomock.Any(), "R1").Return(unpaid, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), "R1", entities.OrderStatusUnpaid, entities.OrderStatusExpired).Return(entities.Order{}, nil),
			repo.EXPECT().GetByRefID(gomock.Any(), "R1").Return(entities.Order{RefID: "R1", Status: entities.OrderStatusExpired}, nil),
		)
		settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil)
		gateway.EXPECT().GetDetail(gomock.Any(), gomock.Any(), "R1").Return(entities.TransactionDetail{Status: "EXPIRED"}, nil)

		o, err := uc.GetStatus(context.Background(), "R1")
		if err != nil || o.Status != entities.OrderStatusExpired {
			t.Fatalf("unexpected result err=%v order=%+v", err, o)
		}
	})

	t.Run("update error serves stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, settings, gateway, nil, OrderOptions{})

		repo.EXPECT().GetByRefID(gomock.Any(), "R1").Return(unpaid, nil)
		settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil)
		gateway.EXPECT().GetDetail(gomock.Any(), gomock.Any(), "R1").Return(entities.TransactionDetail{Status: "FAILED"}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "R1", entities.OrderStatusUnpaid, entities.OrderStatusFailed).Return(entities.Order{}, errors.New("throttled"))

		o, err := uc.GetStatus(context.Background(), "R1")
		if err != nil || o.Status != entities.OrderStatusUnpaid {
			t.Fatalf("unexpected result err=%v order=%+v", err, o)
		}
	})
}

func TestOrderUseCase_Scenario_PaidNeverReverts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	settings := mock_interfaces.NewMockISettingsRepository(ctrl)
	settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil).AnyTimes()
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	products.EXPECT().GetBySKU(gomock.Any(), "ML100").
		Return(entities.Product{SKU: "ML100", Name: "ML 100", PriceModal: 15000, Markup: 2000}.WithDerivedPrice(), nil)

	repo := newMemOrderRepo()
	gateway := &fakeGateway{status: "UNPAID"}
	uc := NewOrderUseCase(repo, products, settings, gateway, nil, OrderOptions{})
	ctx := context.Background()

	o, err := uc.Create(ctx, CreateOrderInput{SKU: "ML100", Amount: 17000, CustomerNo: "1", Method: "QRIS"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != entities.OrderStatusUnpaid || o.RefID == "" {
		t.Fatalf("unexpected order: %+v", o)
	}

	got, err := uc.GetStatus(ctx, o.RefID)
	if err != nil || got.Status != entities.OrderStatusUnpaid {
		t.Fatalf("expected UNPAID, got %+v err=%v", got, err)
	}

	gateway.setStatus("PAID")
	got, err = uc.GetStatus(ctx, o.RefID)
	if err != nil || got.Status != entities.OrderStatusPaid {
		t.Fatalf("expected PAID, got %+v err=%v", got, err)
	}
	if stored, _ := repo.GetByRefID(ctx, o.RefID); stored.Status != entities.OrderStatusPaid {
		t.Fatalf("stored status not updated: %s", stored.Status)
	}

	gateway.setStatus("UNPAID")
	calls := gateway.detailCalls
	for i := 0; i < 3; i++ {
		got, err = uc.GetStatus(ctx, o.RefID)
		if err != nil || got.Status != entities.OrderStatusPaid {
			t.Fatalf("expected PAID to stick, got %+v err=%v", got, err)
		}
	}
	if gateway.detailCalls != calls {
		t.Fatalf("terminal orders must not hit the gateway")
	}
}

func TestOrderUseCase_Scenario_ConcurrentPollsConverge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	settings := mock_interfaces.NewMockISettingsRepository(ctrl)
	settings.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil).AnyTimes()
	events := mock_interfaces.NewMockIOrderEventPublisher(ctrl)
	events.EXPECT().Publish(gomock.Any(), "OrderPaid", gomock.Any()).Times(1)

	repo := newMemOrderRepo()
	_, _ = repo.Create(context.Background(), entities.Order{RefID: "R1", Status: entities.OrderStatusUnpaid})
	uc := NewOrderUseCase(repo, nil, settings, &fakeGateway{status: "PAID"}, events, OrderOptions{})

	var wg sync.WaitGroup
	results := make([]entities.OrderStatus, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o, err := uc.GetStatus(context.Background(), "R1")
			if err == nil {
				results[i] = o.Status
			}
		}(i)
	}
	wg.Wait()

	for i, s := range results {
		if s != entities.OrderStatusPaid {
			t.Fatalf("poll %d returned %q", i, s)
		}
	}
}

func TestOrderUseCase_ListRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, nil, nil, nil, OrderOptions{})

	repo.EXPECT().ListRecent(gomock.Any(), 50).Return([]entities.Order{{RefID: "R1"}}, nil)
	repo.EXPECT().ListRecent(gomock.Any(), 10).Return(nil, nil)

	res, err := uc.ListRecent(context.Background(), 0)
	if err != nil || len(res) != 1 {
		t.Fatalf("unexpected result err=%v res=%+v", err, res)
	}
	if _, err := uc.ListRecent(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewMerchantRef(t *testing.T) {
	a := newMerchantRef(testNow)
	b := newMerchantRef(testNow)
	if a == b {
		t.Fatalf("merchant refs must differ within the same second")
	}
	if len(a) != len("INV-")+10+1+32 {
		t.Fatalf("unexpected merchant ref %q", a)
	}
}
