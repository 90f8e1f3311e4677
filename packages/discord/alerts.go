package discord

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Alerter posts embeds to a single webhook. Alerts beyond the limit are
// dropped, not queued. A zero-value URL makes every call a no-op.
type Alerter struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// NewAlerter allows a burst of 5 alerts and one more every 10 seconds.
func NewAlerter(url string) *Alerter {
	return &Alerter{
		url:     url,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(10*time.Second), 5),
	}
}

func (a *Alerter) Enabled() bool {
	return a != nil && a.url != ""
}

// Send reports whether the alert was posted.
func (a *Alerter) Send(ctx context.Context, title string, color int, fields ...Field) bool {
	if !a.Enabled() {
		return false
	}
	if !a.limiter.Allow() {
		log.Warn().Str("title", title).Msg("alert dropped by rate limit")
		return false
	}

	webhook := Webhook{
		Embeds: []Embed{{
			Title:     title,
			Color:     color,
			Fields:    fields,
			Footer:    CommonFooter,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}
	if err := SendWebhook(ctx, a.client, a.url, &webhook); err != nil {
		log.Warn().Err(err).Str("title", title).Msg("failed to send alert")
		return false
	}
	return true
}

func (a *Alerter) Info(ctx context.Context, title string, fields ...Field) bool {
	return a.Send(ctx, title, ColorInfo, fields...)
}

func (a *Alerter) Error(ctx context.Context, title string, fields ...Field) bool {
	return a.Send(ctx, title, ColorError, fields...)
}
