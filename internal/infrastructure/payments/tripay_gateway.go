package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"topup_store/internal/domain/entities"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase/interfaces"
)

const (
	SandboxBaseURL    = "https://tripay.co.id/api-sandbox"
	ProductionBaseURL = "https://tripay.co.id/api"

	maxResponseBytes = 1 << 20
)

var (
	ErrTripayRejected   = errors.New("tripay rejected request")
	ErrTripayBadPayload = errors.New("tripay returned malformed payload")
)

type TripayOptions struct {
	// BaseURL overrides the mode based URL; used against local stubs.
	BaseURL string
	Timeout time.Duration
	Mock    bool
}

type TripayGateway struct {
	client   *http.Client
	baseURL  string
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*TripayGateway)(nil)

func NewTripayGateway(opts TripayOptions) *TripayGateway {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Mock {
		logger.L().Infof("[payment][gateway] mock mode enabled")
	}
	return &TripayGateway{
		client:   &http.Client{Timeout: opts.Timeout},
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		mockMode: opts.Mock,
	}
}

type tripayEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type tripayOrderItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type tripayCreateRequest struct {
	Method        string            `json:"method"`
	MerchantRef   string            `json:"merchant_ref"`
	Amount        int64             `json:"amount"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	CustomerPhone string            `json:"customer_phone"`
	OrderItems    []tripayOrderItem `json:"order_items"`
	ReturnURL     string            `json:"return_url,omitempty"`
	ExpiredTime   int64             `json:"expired_time"`
	Signature     string            `json:"signature"`
}

type tripayTransaction struct {
	Reference   string `json:"reference"`
	MerchantRef string `json:"merchant_ref"`
	Amount      int64  `json:"amount"`
	Status      string `json:"status"`
	QRURL       string `json:"qr_url"`
	PayCode     string `json:"pay_code"`
	CheckoutURL string `json:"checkout_url"`
}

// ListChannels returns the gateway response body untouched.
func (g *TripayGateway) ListChannels(ctx context.Context, creds entities.GatewayCredentials) (json.RawMessage, error) {
	if g.mockMode {
		return json.RawMessage(mockChannels), nil
	}
	body, err := g.do(ctx, creds, http.MethodGet, "/merchant/payment-channel", nil)
	if err != nil {
		return nil, err
	}
	if _, err := decodeEnvelope(body); err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (g *TripayGateway) CreateTransaction(ctx context.Context, creds entities.GatewayCredentials, req entities.CreateTransactionRequest) (entities.CreatedTransaction, error) {
	log := logger.L()
	if g.mockMode {
		log.Infof("[payment][gateway] mock create merchant_ref=%s amount=%d", req.MerchantRef, req.Amount)
		return mockTransaction(req), nil
	}

	payload, err := json.Marshal(tripayCreateRequest{
		Method:        req.Method,
		MerchantRef:   req.MerchantRef,
		Amount:        req.Amount,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		OrderItems:    []tripayOrderItem{{SKU: req.ItemSKU, Name: req.ItemName, Price: req.Amount, Quantity: 1}},
		ReturnURL:     req.ReturnURL,
		ExpiredTime:   req.ExpiresAt.Unix(),
		Signature:     req.Signature,
	})
	if err != nil {
		return entities.CreatedTransaction{}, err
	}

	log.Infof("[payment][gateway] create start merchant_ref=%s method=%s amount=%d", req.MerchantRef, req.Method, req.Amount)
	body, err := g.do(ctx, creds, http.MethodPost, "/transaction/create", payload)
	if err != nil {
		log.Errorf("[payment][gateway] create failed merchant_ref=%s err=%v", req.MerchantRef, err)
		return entities.CreatedTransaction{}, err
	}
	data, err := decodeEnvelope(body)
	if err != nil {
		log.Errorf("[payment][gateway] create rejected merchant_ref=%s err=%v", req.MerchantRef, err)
		return entities.CreatedTransaction{}, err
	}
	var tx tripayTransaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return entities.CreatedTransaction{}, fmt.Errorf("%w: %v", ErrTripayBadPayload, err)
	}
	log.Infof("[payment][gateway] create success reference=%s status=%s", tx.Reference, tx.Status)

	return entities.CreatedTransaction{
		Reference:   tx.Reference,
		MerchantRef: tx.MerchantRef,
		Amount:      tx.Amount,
		Status:      tx.Status,
		QRURL:       tx.QRURL,
		PayCode:     tx.PayCode,
		CheckoutURL: tx.CheckoutURL,
	}, nil
}

func (g *TripayGateway) GetDetail(ctx context.Context, creds entities.GatewayCredentials, reference string) (entities.TransactionDetail, error) {
	if g.mockMode {
		return entities.TransactionDetail{Reference: reference, Status: string(entities.OrderStatusUnpaid)}, nil
	}
	body, err := g.do(ctx, creds, http.MethodGet, "/transaction/detail?reference="+url.QueryEscape(reference), nil)
	if err != nil {
		return entities.TransactionDetail{}, err
	}
	data, err := decodeEnvelope(body)
	if err != nil {
		return entities.TransactionDetail{}, err
	}
	var tx tripayTransaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return entities.TransactionDetail{}, fmt.Errorf("%w: %v", ErrTripayBadPayload, err)
	}
	return entities.TransactionDetail{Reference: tx.Reference, Status: tx.Status}, nil
}

func (g *TripayGateway) baseFor(mode string) string {
	if g.baseURL != "" {
		return g.baseURL
	}
	if strings.EqualFold(mode, entities.GatewayModeProduction) {
		return ProductionBaseURL
	}
	return SandboxBaseURL
}

func (g *TripayGateway) do(ctx context.Context, creds entities.GatewayCredentials, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseFor(creds.Mode)+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+creds.APIKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tripay %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("tripay read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(body))
		var env tripayEnvelope
		if json.Unmarshal(body, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		return nil, fmt.Errorf("%w: status=%d message=%s", ErrTripayRejected, resp.StatusCode, msg)
	}
	return body, nil
}

func decodeEnvelope(body []byte) (json.RawMessage, error) {
	var env tripayEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTripayBadPayload, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrTripayRejected, env.Message)
	}
	return env.Data, nil
}

const mockChannels = `{"success":true,"message":"Success","data":[` +
	`{"group":"E-Wallet","code":"QRIS","name":"QRIS","type":"DIRECT","active":true},` +
	`{"group":"Virtual Account","code":"BRIVA","name":"BRI Virtual Account","type":"DIRECT","active":true}]}`

func mockTransaction(req entities.CreateTransactionRequest) entities.CreatedTransaction {
	tx := entities.CreatedTransaction{
		Reference:   "DEV-MOCK-" + req.MerchantRef,
		MerchantRef: req.MerchantRef,
		Amount:      req.Amount,
		Status:      string(entities.OrderStatusUnpaid),
		CheckoutURL: "https://tripay.co.id/checkout/DEV-MOCK-" + req.MerchantRef,
	}
	if strings.HasPrefix(strings.ToUpper(req.Method), "QRIS") {
		tx.QRURL = "https://tripay.co.id/qr/DEV-MOCK-" + req.MerchantRef
	} else {
		tx.PayCode = fmt.Sprintf("8808%012d", req.Amount)
	}
	return tx
}
