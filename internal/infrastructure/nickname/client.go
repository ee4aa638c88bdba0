package nickname

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"topup_store/internal/usecase/interfaces"
)

const DefaultBaseURL = "https://api.isan.eu.org/nickname"

// Client calls a public nickname lookup service: GET {base}/{game}?id=&zone=.
type Client struct {
	client  *http.Client
	baseURL string
}

var _ interfaces.INicknameClient = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{client: &http.Client{Timeout: timeout}, baseURL: strings.TrimRight(baseURL, "/")}
}

type lookupResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Lookup returns "" with a nil error when the service reports the account unknown.
func (c *Client) Lookup(ctx context.Context, game, userID, zoneID string) (string, error) {
	q := url.Values{}
	q.Set("id", userID)
	if zoneID != "" {
		q.Set("zone", zoneID)
	}
	endpoint := c.baseURL + "/" + url.PathEscape(strings.ToLower(game)) + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("nickname lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return "", fmt.Errorf("nickname lookup: status=%d", resp.StatusCode)
	}

	var out lookupResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&out); err != nil {
		return "", fmt.Errorf("nickname decode: %w", err)
	}
	if !out.Success {
		return "", nil
	}
	return strings.TrimSpace(out.Name), nil
}
