package bungie

import "tower/packages/env"

// FromEnv builds a Client from BUNGIE_API_KEY, BUNGIE_URL_BASE,
// PGCR_URL_BASE, BUNGIE_DEBUG and BUNGIE_TIMEOUT. opts are applied last.
func FromEnv(opts ...Option) *Client {
	env.Load()
	base := []Option{
		WithBaseURL(env.BungieURLBase),
		WithStatsURL(env.PGCRURLBase),
		WithDebugLogging(env.BungieDebug),
		WithTimeout(env.BungieTimeout),
	}
	return New(env.BungieAPIKey, append(base, opts...)...)
}
