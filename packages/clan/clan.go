package clan

import (
	"context"
	"errors"
	"fmt"

	"tower/packages/bungie"
)

// maxMemberPages stops a paging loop whose hasMore never turns false. Clans
// cap out at 100 members, which the platform serves in one or two pages.
const maxMemberPages = 50

var ErrNotAClan = errors.New("group is not a clan")

func GetByID(ctx context.Context, client *bungie.Client, groupId int64) (*bungie.GroupResponse, error) {
	group, err := client.GetGroup(ctx, groupId)
	if err != nil {
		return nil, err
	}
	if group.Detail.GroupType != bungie.GroupTypeClan {
		return nil, fmt.Errorf("group %d: %w", groupId, ErrNotAClan)
	}
	return group, nil
}

func GetByName(ctx context.Context, client *bungie.Client, name string) (*bungie.GroupResponse, error) {
	return client.GetGroupByName(ctx, name, bungie.GroupTypeClan)
}

// Members collects every page of a clan's roster.
func Members(ctx context.Context, client *bungie.Client, groupId int64) ([]bungie.GroupMember, error) {
	var members []bungie.GroupMember
	for page := 1; page <= maxMemberPages; page++ {
		result, err := client.GetMembersOfGroup(ctx, groupId, page)
		if err != nil {
			return nil, fmt.Errorf("members page %d: %w", page, err)
		}
		members = append(members, result.Results...)
		if !result.HasMore {
			break
		}
	}
	return members, nil
}
