package bungie

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"tower/packages/monitoring"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL  = "https://www.bungie.net"
	DefaultStatsURL = "https://stats.bungie.net"

	apiKeyHeader = "X-API-KEY"
)

// Params are attached to a request as URL query parameters.
type Params map[string]string

// Client performs authenticated requests against the Bungie platform. It is
// safe for concurrent use; the only mutable state is the debug flag.
type Client struct {
	apiKey      string
	accessToken string
	baseURL     string
	statsURL    string
	timeout     time.Duration
	httpClient  *http.Client
	log         zerolog.Logger

	debug atomic.Bool
}

// New constructs a Client with debug logging disabled unless an option
// enables it.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		statsURL:   DefaultStatsURL,
		httpClient: &http.Client{},
		log:        zlog.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clone returns an independent handle sharing the key, URLs and transport.
// The debug flag is copied, not shared.
func (c *Client) Clone() *Client {
	clone := &Client{
		apiKey:      c.apiKey,
		accessToken: c.accessToken,
		baseURL:     c.baseURL,
		statsURL:    c.statsURL,
		timeout:     c.timeout,
		httpClient:  c.httpClient,
		log:         c.log,
	}
	clone.debug.Store(c.debug.Load())
	return clone
}

func (c *Client) SetDebugLogging(enabled bool) {
	c.debug.Store(enabled)
}

func (c *Client) DebugEnabled() bool {
	return c.debug.Load()
}

// Endpoint formats a path under the platform root, e.g.
// Endpoint("/Destiny2/%d/Profile/%d/", 3, id).
func (c *Client) Endpoint(format string, args ...any) string {
	return c.baseURL + "/Platform" + fmt.Sprintf(format, args...)
}

// StatsEndpoint is Endpoint against the stats host, which serves PGCRs.
func (c *Client) StatsEndpoint(format string, args ...any) string {
	return c.statsURL + "/Platform" + fmt.Sprintf(format, args...)
}

func (c *Client) Get(ctx context.Context, url string) (string, error) {
	return c.do(ctx, http.MethodGet, url, nil, nil)
}

func (c *Client) GetWithParams(ctx context.Context, url string, params Params) (string, error) {
	return c.do(ctx, http.MethodGet, url, nil, params)
}

// Post sends body, which must already be serialized JSON, unmodified.
func (c *Client) Post(ctx context.Context, url string, body []byte) (string, error) {
	return c.do(ctx, http.MethodPost, url, body, nil)
}

func (c *Client) PostWithParams(ctx context.Context, url string, body []byte, params Params) (string, error) {
	return c.do(ctx, http.MethodPost, url, body, params)
}

// do never inspects the status code: a 4xx/5xx body is handed back as text.
func (c *Client) do(ctx context.Context, method string, rawURL string, body []byte, params Params) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target, err := withParams(rawURL, params)
	if err != nil {
		return "", &TransportError{Method: method, URL: rawURL, Err: err}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return "", &TransportError{Method: method, URL: target, Err: err}
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	debug := c.debug.Load()
	if debug {
		ev := c.log.Debug().Str("method", method).Str("url", target)
		if body != nil {
			ev = ev.Str("body", string(body))
		}
		ev.Msg("bungie request")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		monitoring.ObserveRequest(method, 0, time.Since(start))
		if debug {
			c.log.Debug().Err(err).Str("method", method).Str("url", target).Msg("bungie request failed")
		}
		return "", &TransportError{Method: method, URL: target, Timeout: isDeadline(ctx, err), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	monitoring.ObserveRequest(method, resp.StatusCode, time.Since(start))
	if err != nil {
		return "", &TransportError{Method: method, URL: target, Timeout: isDeadline(ctx, err), Err: err}
	}

	text := string(data)
	if debug {
		c.log.Debug().
			Str("method", method).
			Str("url", target).
			Int("status", resp.StatusCode).
			Str("response", text).
			Msg("bungie response")
	}
	return text, nil
}

// withParams merges params into the query string of rawURL. Keys already in
// rawURL are replaced so that each key appears once.
func withParams(rawURL string, params Params) (string, error) {
	if len(params) == 0 {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func trimBase(base string) string {
	return strings.TrimSuffix(strings.TrimSuffix(base, "/"), "/Platform")
}
