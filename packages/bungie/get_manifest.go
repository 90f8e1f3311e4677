package bungie

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
)

type DestinyManifest struct {
	Version                        string                       `json:"version"`
	MobileWorldContentPaths        map[string]string            `json:"mobileWorldContentPaths"`
	JsonWorldContentPaths          map[string]string            `json:"jsonWorldContentPaths"`
	JsonWorldComponentContentPaths map[string]map[string]string `json:"jsonWorldComponentContentPaths"`
}

// GetDestinyManifest busts intermediate caches with a random query value so a
// fresh version string is always seen.
func (c *Client) GetDestinyManifest(ctx context.Context) (*DestinyManifest, error) {
	url := c.Endpoint("/Destiny2/Manifest/")
	return getResponse[DestinyManifest](ctx, c, url, Params{"c": fmt.Sprintf("%d", rand.Int())})
}

// GetEntityDefinition returns the raw JSON definition of one manifest entity,
// e.g. ("DestinyInventoryItemDefinition", 1363886209).
func (c *Client) GetEntityDefinition(ctx context.Context, entityType string, hash uint32) (json.RawMessage, error) {
	url := c.Endpoint("/Destiny2/Manifest/%s/%d/", entityType, hash)
	data, err := getResponse[json.RawMessage](ctx, c, url, nil)
	if err != nil {
		return nil, err
	}
	return *data, nil
}
