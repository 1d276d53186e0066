package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/pocketledger/pocketledger/internal/models/user"
)

// Client is a thin JSON client for the ledger API. It holds the bearer
// token after login and attaches it to every request.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr models.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func (c *Client) Register(name, email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req := &user.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

func (c *Client) Login(email, password string) (*user.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req := &user.LoginRequest{
		Email:    email,
		Password: password,
	}

	var resp user.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateTransaction(req *models.CreateTransactionRequest) (*models.Transaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var created models.Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListTransactions(page, limit int) (*models.ListTransactionsResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	path := "/api/transactions?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)

	var resp models.ListTransactionsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Summary() (*models.Summary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var summary models.Summary
	if err := c.do(ctx, http.MethodGet, "/api/transactions/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
