package bungie

import "context"

type DestinyCharacterResponse struct {
	Character *SingleComponentResponseOfDestinyCharacterComponent `json:"character"`
}

type SingleComponentResponseOfDestinyCharacterComponent struct {
	Data *DestinyCharacterComponent `json:"data"`
}

func (c *Client) GetCharacter(ctx context.Context, membershipType int, membershipId int64, characterId int64, componentIds ...int) (*DestinyCharacterResponse, error) {
	if len(componentIds) == 0 {
		componentIds = []int{ComponentCharacters}
	}
	url := c.Endpoint("/Destiny2/%d/Profile/%d/Character/%d/", membershipType, membershipId, characterId)
	return getResponse[DestinyCharacterResponse](ctx, c, url, Params{"components": components(componentIds)})
}
