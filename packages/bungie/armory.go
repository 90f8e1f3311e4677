package bungie

import (
	"context"
	"net/url"
)

type DestinyDisplayPropertiesDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	HasIcon     bool   `json:"hasIcon"`
}

type DestinyEntitySearchResult struct {
	SuggestedWords []string                                    `json:"suggestedWords"`
	Results        SearchResultOfDestinyEntitySearchResultItem `json:"results"`
}

type SearchResultOfDestinyEntitySearchResultItem struct {
	Results      []DestinyEntitySearchResultItem `json:"results"`
	TotalResults int                             `json:"totalResults"`
	HasMore      bool                            `json:"hasMore"`
}

type DestinyEntitySearchResultItem struct {
	Hash              uint32                             `json:"hash"`
	EntityType        string                             `json:"entityType"`
	DisplayProperties DestinyDisplayPropertiesDefinition `json:"displayProperties"`
	Weight            float64                            `json:"weight"`
}

// SearchArmory searches inventory item definitions by name.
func (c *Client) SearchArmory(ctx context.Context, term string, page int) (*DestinyEntitySearchResult, error) {
	endpoint := c.Endpoint("/Destiny2/Armory/Search/DestinyInventoryItemDefinition/%s/", url.PathEscape(term))
	return getResponse[DestinyEntitySearchResult](ctx, c, endpoint, Params{"page": itoa(page)})
}
