package user

import (
	"context"
	"errors"
	"sort"

	"tower/packages/bungie"
	"tower/packages/destiny"
)

var ErrNoProfile = errors.New("profile component is missing")

// User is a Destiny membership together with the accounts linked to it.
type User struct {
	Info           bungie.DestinyUserInfo
	Platform       destiny.MembershipType
	DisplayName    string
	DateLastPlayed string
	CharacterIds   []string
	Memberships    []bungie.UserInfoCard
	BungieNet      *bungie.UserInfoCard
}

// GetUser fetches a profile and its linked memberships. Passing
// destiny.MembershipAll resolves the platform from the linked profiles
// first.
func GetUser(ctx context.Context, client *bungie.Client, membershipId int64, platform destiny.MembershipType) (*User, error) {
	linked, err := client.GetLinkedProfiles(ctx, int(platform), membershipId)
	if err != nil {
		return nil, err
	}

	if platform == destiny.MembershipAll {
		platform = destiny.MembershipNone
		for _, p := range linked.Profiles {
			if p.MembershipId == membershipId {
				platform = destiny.MembershipType(p.MembershipType)
				break
			}
		}
		if platform == destiny.MembershipNone {
			return nil, ErrNoProfile
		}
	}

	profile, err := client.GetProfile(ctx, int(platform), membershipId, bungie.ComponentProfiles)
	if err != nil {
		return nil, err
	}
	if profile.Profile.Data == nil {
		return nil, ErrNoProfile
	}

	u := &User{
		Info:           profile.Profile.Data.UserInfo,
		Platform:       platform,
		DisplayName:    bungie.FullDisplayName(profile.Profile.Data.UserInfo),
		DateLastPlayed: profile.Profile.Data.DateLastPlayed,
		CharacterIds:   profile.Profile.Data.CharacterIds,
		Memberships:    linked.Profiles,
	}
	if linked.BnetMembership.MembershipId != 0 {
		bnet := linked.BnetMembership
		u.BungieNet = &bnet
	}
	return u, nil
}

// Characters returns the user's characters, most recently played first.
func Characters(ctx context.Context, client *bungie.Client, u *User) ([]bungie.DestinyCharacterComponent, error) {
	profile, err := client.GetProfile(ctx, int(u.Platform), u.Info.MembershipId, bungie.ComponentCharacters)
	if err != nil {
		return nil, err
	}
	if profile.Characters.Data == nil {
		return nil, nil
	}

	characters := make([]bungie.DestinyCharacterComponent, 0, len(*profile.Characters.Data))
	for _, c := range *profile.Characters.Data {
		characters = append(characters, c)
	}
	sort.Slice(characters, func(i, j int) bool {
		return characters[i].DateLastPlayed.After(characters[j].DateLastPlayed)
	})
	return characters, nil
}
