package bungie

import "context"

type DestinyProfileResponse struct {
	Profile    SingleComponentResponseOfDestinyProfileComponent               `json:"profile"`
	Characters DictionaryComponentResponseOfint64AndDestinyCharacterComponent `json:"characters"`
}

type SingleComponentResponseOfDestinyProfileComponent struct {
	Data *DestinyProfileComponent `json:"data"`
}

type DestinyProfileComponent struct {
	UserInfo          DestinyUserInfo `json:"userInfo"`
	DateLastPlayed    string          `json:"dateLastPlayed"`
	CharacterIds      []string        `json:"characterIds"`
	SeasonHashes      []uint32        `json:"seasonHashes"`
	CurrentSeasonHash *uint32         `json:"currentSeasonHash"`
}

type DictionaryComponentResponseOfint64AndDestinyCharacterComponent struct {
	Data *map[int64]DestinyCharacterComponent `json:"data"`
}

// GetProfile fetches /Destiny2/{type}/Profile/{id}/. With no components it
// asks for profiles and characters.
func (c *Client) GetProfile(ctx context.Context, membershipType int, membershipId int64, componentIds ...int) (*DestinyProfileResponse, error) {
	if len(componentIds) == 0 {
		componentIds = []int{ComponentProfiles, ComponentCharacters}
	}
	url := c.Endpoint("/Destiny2/%d/Profile/%d/", membershipType, membershipId)
	return getResponse[DestinyProfileResponse](ctx, c, url, Params{"components": components(componentIds)})
}
