package bungie

import "context"

type CoreSettingsConfiguration struct {
	Systems map[string]CoreSystem `json:"systems"`
}

type CoreSystem struct {
	Enabled    bool              `json:"enabled"`
	Parameters map[string]string `json:"parameters"`
}

func (c *Client) GetCommonSettings(ctx context.Context) (*CoreSettingsConfiguration, error) {
	url := c.Endpoint("/Settings/")
	return getResponse[CoreSettingsConfiguration](ctx, c, url, nil)
}

// SystemEnabled reports whether a named platform system (e.g. "Destiny2",
// "PostGameCarnageReports") is switched on. Unknown systems count as disabled.
func (s *CoreSettingsConfiguration) SystemEnabled(name string) bool {
	system, ok := s.Systems[name]
	return ok && system.Enabled
}
