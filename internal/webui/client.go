package webui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cyl-castillo/eco-mercado/internal/models"
)

// TokenProvider supplies the bearer credential attached to write requests.
// Injecting it keeps the credential refreshable and easy to fake in tests.
type TokenProvider func() string

// StaticToken wraps a fixed credential in a TokenProvider.
func StaticToken(token string) TokenProvider {
	return func() string { return token }
}

// Client talks to the marketplace API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenProvider
}

func NewClient(baseURL string, token TokenProvider) *Client {
	if token == nil {
		token = StaticToken("")
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// NewProduct carries the form fields of a listing exactly as submitted:
// price and category travel as raw strings, the server interprets them.
type NewProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ListRepairs(ctx context.Context) ([]models.RepairService, error) {
	var repairs []models.RepairService
	if err := c.getJSON(ctx, "/api/repairs", &repairs); err != nil {
		return nil, err
	}
	return repairs, nil
}

// CreateProduct posts a new listing with the bearer credential attached.
// A non-2xx response becomes an ApplicationError carrying the server's
// error message; anything below the HTTP layer becomes a TransportError.
func (c *Client) CreateProduct(ctx context.Context, p NewProduct) error {
	body, err := json.Marshal(p)
	if err != nil {
		return &TransportError{Op: "encode product", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/products", bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "post product", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		// A missing or malformed error body still yields an
		// ApplicationError, just without a message.
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &ApplicationError{Status: resp.StatusCode, Message: payload.Error}
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &TransportError{Op: "create request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "get " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ApplicationError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: "decode " + path, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
