// Package client is a typed Go client for the budget-tracking API. It speaks
// the {ok, data|code|error} envelope and carries a bearer token on every
// request.
package client

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
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrNotFound indicates the record does not exist or is owned by another
	// user; the API does not distinguish the two.
	ErrNotFound = errors.New("client: not found")
	// ErrInvalidBody indicates a required field was missing from the request.
	ErrInvalidBody = errors.New("client: invalid body")
)

// APIError is any other failed envelope.
type APIError struct {
	Status int
	Code   string
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("client: %s (%d): %s", e.Code, e.Status, e.Detail)
	}
	return fmt.Sprintf("client: %s (%d)", e.Code, e.Status)
}

type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Budget    float64   `json:"budget"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Expense struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectUpdate carries an in-place project edit. A nil Budget leaves the
// stored budget alone; an empty Name is ignored by the service.
type ProjectUpdate struct {
	Name   string   `json:"name,omitempty"`
	Budget *float64 `json:"budget,omitempty"`
}

type ExpenseInput struct {
	ProjectID   string  `json:"projectId"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// ExpenseUpdate fields are applied only when non-nil, so 0 and "" are valid
// new values.
type ExpenseUpdate struct {
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// Client issues authenticated requests against the API base URL.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given base URL (e.g. "http://localhost:3000/api")
// and bearer token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Code  string          `json:"code"`
	Error string          `json:"error"`
}

// do issues one request and decodes the envelope into out (out may be nil for
// bare acknowledgments). Failed envelopes map to the sentinel errors.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("client: reading response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("client: parsing response (%d): %w", resp.StatusCode, err)
	}

	if !env.Ok {
		switch env.Code {
		case "NOT_FOUND":
			return ErrNotFound
		case "INVALID_BODY":
			return ErrInvalidBody
		}
		return &APIError{Status: resp.StatusCode, Code: env.Code, Detail: env.Error}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("client: parsing data: %w", err)
		}
	}

	return nil
}

func (c *Client) CreateProject(ctx context.Context, name string, budget float64) (Project, error) {
	var project Project
	err := c.do(ctx, http.MethodPost, "/project", map[string]interface{}{
		"name":   name,
		"budget": budget,
	}, &project)
	return project, err
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := c.do(ctx, http.MethodGet, "/project", nil, &projects)
	return projects, err
}

func (c *Client) GetProject(ctx context.Context, id string) (Project, error) {
	var project Project
	err := c.do(ctx, http.MethodGet, "/project/"+id, nil, &project)
	return project, err
}

func (c *Client) UpdateProject(ctx context.Context, id string, update ProjectUpdate) (Project, error) {
	var project Project
	err := c.do(ctx, http.MethodPut, "/project/"+id, update, &project)
	return project, err
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/project/"+id, nil, nil)
}

func (c *Client) CreateExpense(ctx context.Context, input ExpenseInput) (Expense, error) {
	// Mirror the service-side default so a freshly created expense renders
	// the same before and after a refetch.
	if input.Category == "" {
		input.Category = "Uncategorized"
	}

	var expense Expense
	err := c.do(ctx, http.MethodPost, "/expense", input, &expense)
	return expense, err
}

func (c *Client) ListExpenses(ctx context.Context, projectID string) ([]Expense, error) {
	var expenses []Expense
	err := c.do(ctx, http.MethodGet, "/expense/project/"+projectID, nil, &expenses)
	return expenses, err
}

func (c *Client) GetExpense(ctx context.Context, id string) (Expense, error) {
	var expense Expense
	err := c.do(ctx, http.MethodGet, "/expense/"+id, nil, &expense)
	return expense, err
}

func (c *Client) UpdateExpense(ctx context.Context, id string, update ExpenseUpdate) (Expense, error) {
	var expense Expense
	err := c.do(ctx, http.MethodPut, "/expense/"+id, update, &expense)
	return expense, err
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/expense/"+id, nil, nil)
}
