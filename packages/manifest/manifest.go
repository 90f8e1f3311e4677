package manifest

import (
	"context"
	"fmt"

	"tower/packages/bungie"
	"tower/packages/destiny"
)

// Lookup resolves individual manifest entities over the API. Nothing is
// downloaded or cached locally.
type Lookup struct {
	client *bungie.Client
}

func NewLookup(client *bungie.Client) *Lookup {
	return &Lookup{client: client}
}

// Get returns the entity's raw JSON definition as text.
func (l *Lookup) Get(ctx context.Context, entityType destiny.ManifestEntityType, hash uint32) (string, error) {
	raw, err := l.client.GetEntityDefinition(ctx, entityType.Definition(), hash)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Version is the content version currently served by the platform.
func (l *Lookup) Version(ctx context.Context) (string, error) {
	m, err := l.client.GetDestinyManifest(ctx)
	if err != nil {
		return "", err
	}
	return m.Version, nil
}

// GetDefinition decodes one entity into T, e.g.
// GetDefinition[InventoryItemDefinition](ctx, l, destiny.EntityInventoryItem, hash).
func GetDefinition[T any](ctx context.Context, l *Lookup, entityType destiny.ManifestEntityType, hash uint32) (*T, error) {
	raw, err := l.client.GetEntityDefinition(ctx, entityType.Definition(), hash)
	if err != nil {
		return nil, err
	}
	out, err := bungie.Decode[T](fmt.Sprintf("%s/%d", entityType.Definition(), hash), raw)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type InventoryItemDefinition struct {
	Hash                   uint32                                    `json:"hash"`
	DisplayProperties      bungie.DestinyDisplayPropertiesDefinition `json:"displayProperties"`
	ItemTypeDisplayName    string                                    `json:"itemTypeDisplayName"`
	ItemTypeAndTierDisplay string                                    `json:"itemTypeAndTierDisplayName"`
	ItemType               int                                       `json:"itemType"`
	ClassType              int                                       `json:"classType"`
}

type ActivityDefinition struct {
	Hash               uint32                                    `json:"hash"`
	DisplayProperties  bungie.DestinyDisplayPropertiesDefinition `json:"displayProperties"`
	ActivityTypeHash   uint32                                    `json:"activityTypeHash"`
	DirectActivityMode *int                                      `json:"directActivityModeType"`
	Tier               int                                       `json:"tier"`
	IsPvP              bool                                      `json:"isPvP"`
}
