// Package formclient is the browser-form side of the employee records API: an
// HTTP client for the four server operations plus the form/table state the UI
// keeps locally.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Record is one employee as it travels over the wire. The date stays a
// YYYY-MM-DD string end to end, exactly as the form submits it.
type Record struct {
	Name          string `json:"name"`
	EmployeeID    string `json:"employee_id"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Department    string `json:"department"`
	DateOfJoining string `json:"date_of_joining"`
	Role          string `json:"role"`
}

// APIError carries a non-2xx reply; Message is the server's {error} or
// {message} text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

// API is the server contract the form depends on.
type API interface {
	Create(ctx context.Context, rec Record) (string, error)
	Update(ctx context.Context, employeeID string, rec Record) error
	Delete(ctx context.Context, employeeID string) error
	List(ctx context.Context) ([]Record, error)
}

// Client talks to a records API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type apiReply struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (r apiReply) text() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Message
}

func (c *Client) Create(ctx context.Context, rec Record) (string, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/employees", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out apiReply
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode != http.StatusCreated {
		return "", &APIError{Status: resp.StatusCode, Message: out.text()}
	}
	return out.Message, nil
}

func (c *Client) Update(ctx context.Context, employeeID string, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.employeeURL(employeeID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var out apiReply
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Message: out.text()}
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, employeeID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.employeeURL(employeeID), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var out apiReply
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Message: out.text()}
	}
	return nil
}

func (c *Client) List(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/employees", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var out apiReply
		_ = json.NewDecoder(resp.Body).Decode(&out)
		return nil, &APIError{Status: resp.StatusCode, Message: out.text()}
	}
	var out struct {
		Data []Record `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) employeeURL(employeeID string) string {
	return c.baseURL + "/api/employees/" + url.PathEscape(employeeID)
}
