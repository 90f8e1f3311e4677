package bungie

import (
	"context"
	"net/url"
)

type GroupResponse struct {
	Detail                                   GroupV2     `json:"detail"`
	Founder                                  GroupMember `json:"founder"`
	AlliedIds                                []string    `json:"alliedIds"`
	AllianceStatus                           int         `json:"allianceStatus"`
	GroupJoinInviteCount                     int         `json:"groupJoinInviteCount"`
	CurrentUserMembershipsInactiveForDestiny bool        `json:"currentUserMembershipsInactiveForDestiny"`
}

func (c *Client) GetGroup(ctx context.Context, groupId int64) (*GroupResponse, error) {
	url := c.Endpoint("/GroupV2/%d/", groupId)
	return getResponse[GroupResponse](ctx, c, url, nil)
}

// GetGroupByName looks a group up by its exact display name.
func (c *Client) GetGroupByName(ctx context.Context, name string, groupType int) (*GroupResponse, error) {
	endpoint := c.Endpoint("/GroupV2/Name/%s/%d/", url.PathEscape(name), groupType)
	return getResponse[GroupResponse](ctx, c, endpoint, nil)
}

type SearchResultOfGroupMember struct {
	HasMore      bool          `json:"hasMore"`
	TotalResults int           `json:"totalResults"`
	Results      []GroupMember `json:"results"`
}

// GetMembersOfGroup returns one page of members. Pages start at 1.
func (c *Client) GetMembersOfGroup(ctx context.Context, groupId int64, page int) (*SearchResultOfGroupMember, error) {
	url := c.Endpoint("/GroupV2/%d/Members/", groupId)
	return getResponse[SearchResultOfGroupMember](ctx, c, url, Params{
		"currentpage": itoa(page),
		"memberType":  "0",
	})
}

type GetGroupsForMemberResponse struct {
	AreAllMembershipsInactive map[int64]bool    `json:"areAllMembershipsInactive"`
	Results                   []GroupMembership `json:"results"`
}

type GroupMembership struct {
	Member GroupMember `json:"member"`
	Group  GroupV2     `json:"group"`
}

// GetGroupsForMember lists the clans a membership belongs to.
func (c *Client) GetGroupsForMember(ctx context.Context, membershipType int, membershipId int64) (*GetGroupsForMemberResponse, error) {
	url := c.Endpoint("/GroupV2/User/%d/%d/0/%d/", membershipType, membershipId, GroupTypeClan)
	return getResponse[GetGroupsForMemberResponse](ctx, c, url, nil)
}
