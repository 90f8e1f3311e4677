package bungie

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during New.
type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client, e.g. for tests or a
// custom transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL points platform requests somewhere other than www.bungie.net.
// A trailing "/" or "/Platform" is ignored.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = trimBase(base)
		}
	}
}

// WithStatsURL points PGCR requests somewhere other than stats.bungie.net.
func WithStatsURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.statsURL = trimBase(base)
		}
	}
}

func WithDebugLogging(enabled bool) Option {
	return func(c *Client) {
		c.debug.Store(enabled)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

// WithTimeout applies a deadline to every call. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithAccessToken attaches an OAuth bearer token to every request. Obtaining
// the token is left to the caller.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		c.accessToken = token
	}
}
