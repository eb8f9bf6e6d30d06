// Package client is a typed HTTP client for the journal API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/journalapp/journal/internal/model"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	// Message is the server's error message, or empty when the body
	// carried none.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP error! Status: %d", e.StatusCode)
	}
	return e.Message
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// EntryInput is the writable part of an entry.
type EntryInput struct {
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl"`
}

// Session is a signed-in user's token and identity.
type Session struct {
	Token string         `json:"token"`
	User  model.Identity `json:"user"`
}

// User is the account returned by sign-up.
type User struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Client issues one HTTP request per call against the journal API.
// It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken starts the client with an existing session token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetToken replaces the bearer token. An empty token signs the client out.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SignUp creates an account.
func (c *Client) SignUp(ctx context.Context, username, password string) (*User, error) {
	var user User
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-up", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignIn authenticates and stores the returned token on the client.
func (c *Client) SignIn(ctx context.Context, username, password string) (*Session, error) {
	var session Session
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", body, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

// ListEntries returns every entry visible to the caller.
func (c *Client) ListEntries(ctx context.Context) ([]model.Entry, error) {
	entries := []model.Entry{}
	if err := c.do(ctx, http.MethodGet, "/api/entries", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry returns a single entry.
func (c *Client) GetEntry(ctx context.Context, id int64) (*model.Entry, error) {
	var entry model.Entry
	if err := c.do(ctx, http.MethodGet, entryPath(id), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateEntry stores a new entry.
func (c *Client) CreateEntry(ctx context.Context, in EntryInput) (*model.Entry, error) {
	var entry model.Entry
	if err := c.do(ctx, http.MethodPost, "/api/entries", in, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry replaces the fields of an entry.
func (c *Client) UpdateEntry(ctx context.Context, id int64, in EntryInput) (*model.Entry, error) {
	var entry model.Entry
	if err := c.do(ctx, http.MethodPut, entryPath(id), in, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry removes an entry.
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, entryPath(id), nil, nil)
}

func entryPath(id int64) string {
	return "/api/entries/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeStatusError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeStatusError(resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &payload) == nil {
		se.Message = payload.Error
	}
	return se
}
