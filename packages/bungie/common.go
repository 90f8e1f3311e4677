package bungie

import (
	"strconv"
	"strings"
	"time"
)

type DestinyUserInfo struct {
	IconPath                    *string `json:"iconPath"`
	CrossSaveOverride           int     `json:"crossSaveOverride"`
	ApplicableMembershipTypes   []int   `json:"applicableMembershipTypes"`
	IsPublic                    bool    `json:"isPublic"`
	MembershipType              int     `json:"membershipType"`
	MembershipId                int64   `json:"membershipId,string"`
	DisplayName                 *string `json:"displayName"`
	BungieGlobalDisplayName     *string `json:"bungieGlobalDisplayName"`
	BungieGlobalDisplayNameCode *int    `json:"bungieGlobalDisplayNameCode"`
}

// UserInfoCard is what the linked profiles endpoint returns per membership.
type UserInfoCard = DestinyUserInfo

type DestinyHistoricalStatsActivity struct {
	ReferenceId          uint32 `json:"referenceId"`
	InstanceId           int64  `json:"instanceId,string"`
	Mode                 int    `json:"mode"`
	Modes                []int  `json:"modes"`
	IsPrivate            bool   `json:"isPrivate"`
	MembershipType       int    `json:"membershipType"`
	DirectorActivityHash uint32 `json:"directorActivityHash"`
}

type DestinyCharacterComponent struct {
	MembershipId             int64          `json:"membershipId,string"`
	MembershipType           int            `json:"membershipType"`
	CharacterId              int64          `json:"characterId,string"`
	DateLastPlayed           time.Time      `json:"dateLastPlayed"`
	MinutesPlayedThisSession int64          `json:"minutesPlayedThisSession,string"`
	MinutesPlayedTotal       int64          `json:"minutesPlayedTotal,string"`
	Light                    int            `json:"light"`
	Stats                    map[uint32]int `json:"stats"`
	RaceHash                 uint32         `json:"raceHash"`
	GenderHash               uint32         `json:"genderHash"`
	ClassHash                uint32         `json:"classHash"`
	RaceType                 int            `json:"raceType"`
	ClassType                int            `json:"classType"`
	GenderType               int            `json:"genderType"`
	EmblemPath               string         `json:"emblemPath"`
	EmblemBackgroundPath     string         `json:"emblemBackgroundPath"`
	EmblemHash               uint32         `json:"emblemHash"`
	TitleRecordHash          *uint32        `json:"titleRecordHash"`
}

// components renders component ids the way the platform expects them:
// "100,200".
func components(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Component ids for profile and character requests.
const (
	ComponentProfiles   = 100
	ComponentCharacters = 200
)
