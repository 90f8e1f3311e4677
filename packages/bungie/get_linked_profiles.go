package bungie

import "context"

type LinkedProfilesResponse struct {
	Profiles           []UserInfoCard `json:"profiles"`
	BnetMembership     UserInfoCard   `json:"bnetMembership"`
	ProfilesWithErrors []struct {
		ErrorCode int          `json:"errorCode"`
		InfoCard  UserInfoCard `json:"infoCard"`
	} `json:"profilesWithErrors"`
}

// GetLinkedProfiles accepts -1 (All) as membershipType when the platform is
// unknown.
func (c *Client) GetLinkedProfiles(ctx context.Context, membershipType int, membershipId int64) (*LinkedProfilesResponse, error) {
	url := c.Endpoint("/Destiny2/%d/Profile/%d/LinkedProfiles/", membershipType, membershipId)
	return getResponse[LinkedProfilesResponse](ctx, c, url, Params{"getAllMemberships": "true"})
}
