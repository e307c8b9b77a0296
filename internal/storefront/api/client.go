// Package api is the storefront's JSON client for the back-end API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is a non-2xx API response, carrying the server's public message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d", e.Status)
}

type Client struct {
	BaseURL string // e.g. http://localhost:5000/api
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
}

type LoginResponse struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

type Admin struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Admin *Admin `json:"admin,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

// VerifyToken asks the server whether the token is still good. The endpoint
// answers 200 with {valid:false} for bad tokens, so err here means transport
// or server trouble, not an invalid token.
func (c *Client) VerifyToken(ctx context.Context, token string) (VerifyResponse, error) {
	var out VerifyResponse
	err := c.do(ctx, http.MethodGet, "/auth/verify-token", token, nil, &out)
	return out, err
}

type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PriceHT      float64 `json:"price_ht"`
	TVA          float64 `json:"tva"`
	IsAvailable  bool    `json:"is_available"`
	ImageURL     string  `json:"image_url"`
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	IsFresh      bool    `json:"is_fresh"`
	IsFeatured   bool    `json:"is_featured"`
}

func (c *Client) ListAvailableProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	err := c.do(ctx, http.MethodGet, "/products/available", "", nil, &out)
	return out, err
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *Client) SendContact(ctx context.Context, m ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/contact/send", "", m, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &Error{Status: resp.StatusCode, Message: e.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
