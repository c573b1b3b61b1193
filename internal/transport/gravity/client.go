// Package gravity is the HTTP client for the Gravity Forms v2 REST API.
package gravity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/formdex/internal/domain"
	domgravity "github.com/kailas-cloud/formdex/internal/domain/gravity"
	"github.com/kailas-cloud/formdex/internal/metrics"
	"github.com/kailas-cloud/formdex/internal/usecase/publish"
)

// Compile-time check: Client implements the publish transport contract.
var _ publish.Client = (*Client)(nil)

// Config holds the remote site settings.
type Config struct {
	BaseURL     string
	Username    string
	AppPassword string
	Timeout     time.Duration
	Logger      *zap.Logger
}

// Client performs authenticated requests against a WordPress site running
// the Gravity Forms plugin. Credentials are held in memory only; the client
// never persists them.
type Client struct {
	http        *http.Client
	baseURL     string
	username    string
	appPassword string
	logger      *zap.Logger
}

// NewClient creates a Gravity Forms API client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http:        &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		username:    cfg.Username,
		appPassword: cfg.AppPassword,
		logger:      logger,
	}
}

// BaseURL returns the normalized remote site URL.
func (c *Client) BaseURL() string { return c.baseURL }

// ListForms returns the forms that exist on the remote site.
func (c *Client) ListForms(ctx context.Context) ([]publish.RemoteForm, error) {
	var forms []publish.RemoteForm
	if err := c.doJSON(ctx, "list_forms", http.MethodGet, c.formsURL(), nil, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

// CreateForm creates a new form on the remote site and returns its summary
// with the assigned id.
func (c *Client) CreateForm(ctx context.Context, payload domgravity.Form) (publish.RemoteForm, error) {
	var remote publish.RemoteForm
	if err := c.doJSON(ctx, "create_form", http.MethodPost, c.formsURL(), payload, &remote); err != nil {
		return publish.RemoteForm{}, err
	}
	return remote, nil
}

// UpdateForm replaces an existing remote form.
func (c *Client) UpdateForm(ctx context.Context, id int, payload domgravity.Form) (publish.RemoteForm, error) {
	url := fmt.Sprintf("%s/%d", c.formsURL(), id)
	var remote publish.RemoteForm
	if err := c.doJSON(ctx, "update_form", http.MethodPut, url, payload, &remote); err != nil {
		return publish.RemoteForm{}, err
	}
	return remote, nil
}

// TestConnection verifies that the WordPress REST API and the Gravity Forms
// endpoint both respond to the configured credentials.
func (c *Client) TestConnection(ctx context.Context) error {
	if err := c.doJSON(ctx, "test_connection", http.MethodGet, c.baseURL+"/wp-json/", nil, nil); err != nil {
		return fmt.Errorf("wordpress api: %w", err)
	}
	if err := c.doJSON(ctx, "test_connection", http.MethodGet, c.formsURL(), nil, nil); err != nil {
		return fmt.Errorf("gravity forms api: %w", err)
	}
	return nil
}

func (c *Client) formsURL() string {
	return c.baseURL + "/wp-json/gf/v2/forms"
}

// doJSON performs one authenticated request with transport-level metrics.
// Connectivity failures map to ErrRemoteUnavailable, remote error statuses
// to ErrPublishRejected.
func (c *Client) doJSON(ctx context.Context, op, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" && c.appPassword != "" {
		req.SetBasicAuth(c.username, c.appPassword)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		metrics.PublishRequestsTotal.WithLabelValues(op, "error").Inc()
		metrics.PublishErrorsTotal.WithLabelValues(op, "unreachable").Inc()
		return fmt.Errorf("%s %s: %v: %w", method, url, err, domain.ErrRemoteUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.PublishRequestsTotal.WithLabelValues(op, "error").Inc()
		metrics.PublishErrorsTotal.WithLabelValues(op, "rejected").Inc()
		return c.rejectionError(op, resp)
	}

	metrics.PublishRequestsTotal.WithLabelValues(op, "success").Inc()
	metrics.PublishRequestDuration.WithLabelValues(op).Observe(duration.Seconds())

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func (c *Client) rejectionError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := extractMessage(raw)

	c.logger.Warn("remote api rejected request",
		zap.String("operation", op),
		zap.Int("status", resp.StatusCode),
		zap.String("detail", detail),
	)

	if detail != "" {
		return fmt.Errorf("%s failed with status %d: %s: %w",
			op, resp.StatusCode, detail, domain.ErrPublishRejected)
	}
	return fmt.Errorf("%s failed with status %d: %w", op, resp.StatusCode, domain.ErrPublishRejected)
}

// extractMessage pulls the "message" field from a WordPress JSON error body.
func extractMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
		return parsed.Message
	}
	return ""
}
