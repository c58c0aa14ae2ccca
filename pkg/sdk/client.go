package memoria

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kailas-cloud/memoria/internal/version"
)

// DefaultBaseURL is the API root used when WithBaseURL is not given.
const DefaultBaseURL = "http://localhost:8080"

const (
	defaultTimeout = 30 * time.Second
	// maxResponseBody bounds decoded bodies: the largest document plus envelope.
	maxResponseBody = 2 << 20
)

// Client is the memoria SDK entry point. It is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	obs     *observer
}

// New creates a Client. No request is made; use Ping to verify connectivity.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.baseURL), "/")
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("memoria: invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("memoria: base URL must be absolute http(s), got %q", cfg.baseURL)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: base,
		token:   cfg.token,
		http:    hc,
		obs:     obs,
	}, nil
}

// Ping verifies that the API is reachable and accepts the token by running
// a one-result search.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	var raw []searchResultWire
	if err = c.do(ctx, http.MethodPost, "/mcp/search", searchRequest{Query: "ping", Limit: 1}, &raw); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// do sends a JSON request and decodes a 2xx body into out. Non-2xx responses
// become *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "memoria-go/"+version.Version)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, body: body}
	var w errorWire
	if err := json.Unmarshal(body, &w); err == nil && (w.Code != "" || w.Message != "") {
		e.Code, e.Message = w.Code, w.Message
		return e
	}
	e.Message = strings.TrimSpace(string(body))
	if e.Message == "" {
		e.Message = "<empty body>"
	}
	return e
}

// missingField reports the first absent required field.
func missingField(names []string, present ...bool) error {
	for i, ok := range present {
		if !ok {
			return fmt.Errorf("%w: missing field %q", ErrUnexpectedResponse, names[i])
		}
	}
	return nil
}
