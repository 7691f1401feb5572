// Package paystack is a minimal client for the two Paystack calls this
// backend makes: transaction initialize and verify-by-reference. A
// non-2xx response or a false top-level status is a hard failure.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.paystack.co"

type Client struct {
	SecretKey string
	BaseURL   string
	HTTP      *http.Client
}

func NewClient(secretKey string) *Client {
	return &Client{
		SecretKey: secretKey,
		BaseURL:   DefaultBaseURL,
		HTTP:      &http.Client{Timeout: 30 * time.Second},
	}
}

// InitializeRequest starts a transaction. Amount is in the minor
// currency unit (kobo).
type InitializeRequest struct {
	Email       string         `json:"email"`
	Amount      int64          `json:"amount"`
	Reference   string         `json:"reference"`
	CallbackURL string         `json:"callback_url"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifyData is the part of the verify payload the backend acts on;
// Raw keeps the full transaction object for audit.
type VerifyData struct {
	Status    string         `json:"status"`
	Reference string         `json:"reference"`
	Amount    int64          `json:"amount"`
	Raw       map[string]any `json:"-"`
}

// Success reports whether the gateway settled the transaction.
func (d *VerifyData) Success() bool { return d.Status == "success" }

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) Initialize(ctx context.Context, in *InitializeRequest) (*InitializeData, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var data InitializeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("paystack: decode initialize data: %w", err)
	}
	return &data, nil
}

func (c *Client) Verify(ctx context.Context, reference string) (*VerifyData, error) {
	raw, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}

	var data VerifyData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("paystack: decode verify data: %w", err)
	}
	var full map[string]any
	if err := json.Unmarshal(raw, &full); err == nil {
		data.Raw = full
	}
	return &data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("paystack: decode response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("paystack: %s %s: %d %s", method, path, res.StatusCode, env.Message)
	}
	if !env.Status {
		return nil, fmt.Errorf("paystack: %s %s: %s", method, path, env.Message)
	}
	return env.Data, nil
}
