package wirespeed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wirereport/pkg/domain/interfaces"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
)

const (
	// DefaultBaseURL is the public Wirespeed API endpoint
	DefaultBaseURL = "https://api.wirespeed.co"
	// DefaultTimeout bounds a single API call
	DefaultTimeout = 30 * time.Second

	// DefaultMaxResponseSize caps the body of a single API response
	DefaultMaxResponseSize = 32 << 20
)

// Client is a Wirespeed API client bound to one credential
type Client struct {
	apiKey     types.APIKey
	baseURL    string
	timeout    time.Duration
	maxBody    int64
	httpClient *http.Client
}

var _ interfaces.Telemetry = (*Client)(nil)

// Option configures Client
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the default HTTP client. WithTimeout is ignored then.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMaxResponseSize overrides DefaultMaxResponseSize. Larger responses fail.
func WithMaxResponseSize(n int64) Option {
	return func(c *Client) {
		c.maxBody = n
	}
}

// New creates a Client sending apiKey as bearer token
func New(apiKey types.APIKey, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		maxBody: DefaultMaxResponseSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// NewFactory returns a TelemetryFactory creating clients with opts
func NewFactory(opts ...Option) interfaces.TelemetryFactory {
	return func(apiKey types.APIKey) interfaces.Telemetry {
		return New(apiKey, opts...)
	}
}

type errorBody struct {
	Message types.Text `json:"message"`
}

func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal request body", goerr.V("path", path))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("path", path))
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey.String())
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to call Wirespeed API",
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.T(model.ErrTagTransport),
		)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return goerr.Wrap(err, "failed to read response body",
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagTransport),
		)
	}
	if int64(len(data)) > c.maxBody {
		return goerr.New("response body exceeds size limit",
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("limit", c.maxBody),
			goerr.T(model.ErrTagTransport),
		)
	}

	ctxlog.From(ctx).Debug("Wirespeed API call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newTransportError(resp.StatusCode, path, data)
	}

	decode(ctx, path, data, out)
	return nil
}

func newTransportError(status int, path string, data []byte) error {
	var body errorBody
	_ = json.Unmarshal(data, &body)

	message := body.Message.String()
	if message == "" {
		message = http.StatusText(status)
	}

	opts := []goerr.Option{
		goerr.V("status", status),
		goerr.V("path", path),
		goerr.T(model.ErrTagTransport),
	}
	if status == http.StatusUnauthorized {
		opts = append(opts, goerr.T(model.ErrTagUnauthorized))
	}

	return goerr.Wrap(&model.TransportError{
		Status:  status,
		Message: message,
		Path:    path,
	}, "Wirespeed API returned an error", opts...)
}

// decode never fails. Fields of a mismatching type are skipped and keep
// their zero value; an unparsable body leaves out untouched.
func decode(ctx context.Context, path string, data []byte, out any) {
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return
	}

	err := json.Unmarshal(data, out)
	if err == nil {
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		ctxlog.From(ctx).Debug("Wirespeed API response shape mismatch",
			"path", path,
			"field", typeErr.Field,
			"value", typeErr.Value,
		)
		return
	}

	ctxlog.From(ctx).Warn("Unparsable Wirespeed API response, using defaults",
		"path", path,
		"error", err,
	)
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	var out T
	if err := c.request(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
