package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/pkg/money"
	"resty.dev/v3"
)

// Client is a typed client of the finance tracker HTTP API.
type Client struct {
	httpClient *resty.Client
}

// Options represents options that required for creating new instance of the client.
type Options struct {
	// BaseURL represents an url of the finance tracker server, e.g. http://localhost:3000.
	BaseURL string
	Timeout time.Duration
	// Transport replaces the default http transport when set.
	Transport http.RoundTripper
}

// New creates a new instance of the client.
func New(opts Options) *Client {
	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Content-Type", "application/json")

	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	if opts.Transport != nil {
		httpClient.SetTransport(opts.Transport)
	}

	return &Client{
		httpClient: httpClient,
	}
}

// Close releases resources held by the underlying http client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// APIError represents a non successful response of the API.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("finance tracker api error(statusCode: %d): %s", e.StatusCode, e.Message)
}

// AddTransactionInput represents a body of the add transaction request.
type AddTransactionInput struct {
	Title    string                 `json:"title"`
	Amount   money.Money            `json:"amount"`
	Type     models.TransactionType `json:"type"`
	Category string                 `json:"category,omitempty"`
	Date     *time.Time             `json:"date,omitempty"`
}

type addCategoryResponse struct {
	Message  string          `json:"message"`
	Category models.Category `json:"category"`
}

type addTransactionResponse struct {
	Message     string             `json:"message"`
	Transaction models.Transaction `json:"transaction"`
}

// AddCategory creates a new category.
func (c *Client) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	var result addCategoryResponse

	err := c.do(ctx, http.MethodPost, "/api/categories/add", nil, map[string]string{"name": name}, &result)
	if err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}

	return &result.Category, nil
}

// ListCategories returns all categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var result []models.Category

	err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &result)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return result, nil
}

// AddTransaction creates a new transaction.
func (c *Client) AddTransaction(ctx context.Context, input AddTransactionInput) (*models.Transaction, error) {
	var result addTransactionResponse

	err := c.do(ctx, http.MethodPost, "/api/transactions/add", nil, input, &result)
	if err != nil {
		return nil, fmt.Errorf("add transaction: %w", err)
	}

	return &result.Transaction, nil
}

// ListTransactions returns all transactions with resolved categories.
func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var result []models.Transaction

	err := c.do(ctx, http.MethodGet, "/api/transactions", nil, nil, &result)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return result, nil
}

// DeleteTransaction deletes a transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, transactionID string) error {
	err := c.do(ctx, http.MethodDelete, "/api/transactions/{id}", map[string]string{"id": transactionID}, nil, nil)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	return nil
}

// Health checks that the server and its database are available.
func (c *Client) Health(ctx context.Context) error {
	response, err := c.httpClient.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return fmt.Errorf("send health request: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return &APIError{StatusCode: response.StatusCode(), Message: response.String()}
	}

	return nil
}

// do sends the request, pathParams are escaped into the {name} placeholders of path.
func (c *Client) do(ctx context.Context, method, path string, pathParams map[string]string, body, result any) error {
	var apiErr APIError

	request := c.httpClient.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetError(&apiErr)
	if body != nil {
		request.SetBody(body)
	}
	if result != nil {
		request.SetResult(result)
	}

	response, err := request.Execute(method, path)
	if err != nil {
		return fmt.Errorf("send %s %s request: %w", method, path, err)
	}
	if response.IsError() {
		apiErr.StatusCode = response.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = response.String()
		}

		return &apiErr
	}

	return nil
}
