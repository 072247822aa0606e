// Package transport implements the REST connector the object model talks
// through: authenticated requests, retries, URL construction. It is the
// canonical emby.Connector.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/embygo/pkg/emby"
)

const (
	defaultTimeout = 60 * time.Second
	maxRetries     = 3
	baseRetryDelay = 500 * time.Millisecond
)

// Sentinel errors owned by the transport boundary.
var (
	// ErrServerUnreachable indicates the server did not answer at all.
	ErrServerUnreachable = errors.New("media server is unreachable")

	// ErrUnauthorized indicates the api key or token was rejected.
	ErrUnauthorized = errors.New("authentication token is invalid")
)

// Config holds the connection settings for one server.
type Config struct {
	URL      string
	APIKey   string
	UserID   string
	DeviceID string
	Client   string // client name reported in the auth header
	Version  string
	Timeout  time.Duration
	Logger   *slog.Logger
}

// Client talks to an Emby-protocol server.
type Client struct {
	baseURL    string
	apiKey     string
	userID     string
	deviceID   string
	clientName string
	version    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ emby.Connector = (*Client)(nil)

// NewClient creates a connector for the server at cfg.URL.
func NewClient(cfg Config) *Client {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Client == "" {
		cfg.Client = "embygo"
	}
	if cfg.DeviceID == "" {
		cfg.DeviceID = "embygo-client"
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		userID:     cfg.UserID,
		deviceID:   cfg.DeviceID,
		clientName: cfg.Client,
		version:    cfg.Version,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     cfg.Logger,
	}
}

// UserID returns the authenticated user's id.
func (c *Client) UserID() string { return c.userID }

// expand substitutes the authenticated user into {UserId} path segments.
func (c *Client) expand(path string) string {
	return strings.ReplaceAll(path, "{UserId}", c.userID)
}

// URL returns the absolute URL for path with the api key attached, for
// handing to an external player.
func (c *Client) URL(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return c.baseURL + c.expand(path) + sep + "api_key=" + url.QueryEscape(c.apiKey)
}

// doRequest performs an authenticated request with retry and exponential
// backoff on 5xx responses.
func (c *Client) doRequest(ctx context.Context, method, path string, params url.Values, body []byte) ([]byte, error) {
	reqURL := c.baseURL + c.expand(path)
	if len(params) > 0 {
		reqURL = reqURL + "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if attempt > 0 {
			delay := baseRetryDelay * time.Duration(1<<(attempt-1))
			c.logger.Debug("retrying request", "attempt", attempt, "delay", delay, "url", reqURL)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var reqBody io.Reader
		if body != nil {
			reqBody = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Emby-Authorization", c.authHeader())
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		c.logger.Debug("emby request", "method", method, "url", reqURL, "attempt", attempt)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Error("emby request failed", "error", err)
			return nil, ErrServerUnreachable
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusUnauthorized {
			return nil, ErrUnauthorized
		}

		if resp.StatusCode >= 500 && resp.StatusCode < 600 {
			lastErr = fmt.Errorf("server error: %d - %s", resp.StatusCode, string(respBody))
			c.logger.Warn("emby server error, will retry",
				"status", resp.StatusCode,
				"attempt", attempt,
				"maxRetries", maxRetries,
				"path", path,
			)
			continue
		}

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
			c.logger.Error("emby request error", "status", resp.StatusCode, "body", string(respBody))
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		return respBody, nil
	}

	c.logger.Error("emby request failed after retries", "error", lastErr, "url", reqURL)
	return nil, lastErr
}

// authHeader builds the X-Emby-Authorization header.
func (c *Client) authHeader() string {
	parts := []string{
		fmt.Sprintf("MediaBrowser Client=%q", c.clientName),
		`Device="CLI"`,
		fmt.Sprintf("DeviceId=%q", c.deviceID),
		fmt.Sprintf("Version=%q", c.version),
	}
	if c.apiKey != "" {
		parts = append(parts, fmt.Sprintf("Token=%q", c.apiKey))
	}
	return strings.Join(parts, ", ")
}

// GetJSON issues a GET request and returns the decoded JSON value.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values) (any, error) {
	body, err := c.doRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%s: %w", path, emby.ErrDecode)
	}
	return payload, nil
}

// GetItem fetches the raw record for a single item id.
func (c *Client) GetItem(ctx context.Context, id string) (map[string]any, error) {
	payload, err := c.GetJSON(ctx, "/Users/{UserId}/Items/"+id, nil)
	if err != nil {
		return nil, err
	}
	record, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("item %s: %w", id, emby.ErrDecode)
	}
	return record, nil
}

// Post sends data as a JSON body. The authenticated user is attached as
// the UserId parameter, which the server expects on mutating calls.
func (c *Client) Post(ctx context.Context, path string, data map[string]any, params url.Values) error {
	var body []byte
	if data != nil {
		var err error
		body, err = json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	if params == nil {
		params = url.Values{}
	}
	if c.userID != "" && params.Get("UserId") == "" {
		params.Set("UserId", c.userID)
	}

	_, err := c.doRequest(ctx, http.MethodPost, path, params, body)
	return err
}

// SystemInfo returns the raw server status record.
func (c *Client) SystemInfo(ctx context.Context) (map[string]any, error) {
	payload, err := c.GetJSON(ctx, "/System/Info", nil)
	if err != nil {
		return nil, err
	}
	info, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("system info: %w", emby.ErrDecode)
	}
	return info, nil
}
