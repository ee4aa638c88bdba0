package supplier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"topup_store/internal/domain/entities"
	"topup_store/internal/domain/signature"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase/interfaces"
)

const (
	DefaultBaseURL = "https://api.digiflazz.com/v1"

	priceListPath    = "/price-list"
	maxResponseBytes = 16 << 20
)

var (
	ErrDigiflazzRejected   = errors.New("digiflazz rejected request")
	ErrDigiflazzBadPayload = errors.New("digiflazz returned malformed payload")
)

type DigiflazzClient struct {
	client  *http.Client
	baseURL string
}

var _ interfaces.ISupplierClient = (*DigiflazzClient)(nil)

func NewDigiflazzClient(baseURL string, timeout time.Duration) *DigiflazzClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &DigiflazzClient{client: &http.Client{Timeout: timeout}, baseURL: strings.TrimRight(baseURL, "/")}
}

type priceListRequest struct {
	Cmd      string `json:"cmd"`
	Username string `json:"username"`
	Sign     string `json:"sign"`
}

type priceListItem struct {
	ProductName  string `json:"product_name"`
	Category     string `json:"category"`
	Brand        string `json:"brand"`
	Price        int64  `json:"price"`
	BuyerSKUCode string `json:"buyer_sku_code"`
}

// The API answers with an array on success and an object on error.
type priceListResponse struct {
	Data json.RawMessage `json:"data"`
}

type errorData struct {
	RC      string `json:"rc"`
	Message string `json:"message"`
}

func (c *DigiflazzClient) PriceList(ctx context.Context, creds entities.SupplierCredentials) ([]entities.SupplierItem, error) {
	payload, err := json.Marshal(priceListRequest{
		Cmd:      "prepaid",
		Username: creds.Username,
		Sign:     signature.Supplier(creds.Username, creds.APIKey, signature.PriceListCommand),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+priceListPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("digiflazz price list: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("digiflazz read body: %w", err)
	}

	var out priceListResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: status=%d", ErrDigiflazzRejected, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDigiflazzBadPayload, err)
	}

	data := bytes.TrimSpace(out.Data)
	if len(data) > 0 && data[0] == '{' {
		var e errorData
		_ = json.Unmarshal(data, &e)
		return nil, fmt.Errorf("%w: rc=%s message=%s", ErrDigiflazzRejected, e.RC, e.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status=%d", ErrDigiflazzRejected, resp.StatusCode)
	}

	var items []priceListItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDigiflazzBadPayload, err)
	}

	result := make([]entities.SupplierItem, 0, len(items))
	for _, it := range items {
		result = append(result, entities.SupplierItem{
			SKU:      it.BuyerSKUCode,
			Name:     it.ProductName,
			Brand:    it.Brand,
			Category: it.Category,
			Price:    it.Price,
		})
	}
	logger.L().Infof("[supplier][digiflazz] price list fetched items=%d took=%s", len(result), time.Since(started))
	return result, nil
}
