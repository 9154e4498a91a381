package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/paysbypays/merchant-dashboard/internal/model"
)

// Client consumes the upstream payments API. Both list endpoints are
// unauthenticated GETs returning the full record set in a {data:[...]}
// envelope; there is no server-side filtering to lean on.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

func (c *Client) FetchPayments(ctx context.Context) ([]model.PaymentRecord, error) {
	return fetchList[model.PaymentRecord](ctx, c, "/payments/list")
}

func (c *Client) FetchMerchants(ctx context.Context) ([]model.MerchantRecord, error) {
	return fetchList[model.MerchantRecord](ctx, c, "/merchants/list")
}

func fetchList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	var envelope listEnvelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	return envelope.Data, nil
}
