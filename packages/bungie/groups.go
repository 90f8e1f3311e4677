package bungie

import "time"

// GroupTypeClan is the only group type Destiny clans use.
const GroupTypeClan = 1

type GroupV2 struct {
	GroupId             int64                        `json:"groupId,string"`
	Name                string                       `json:"name"`
	GroupType           int                          `json:"groupType"`
	MembershipIdCreated int64                        `json:"membershipIdCreated,string"`
	CreationDate        time.Time                    `json:"creationDate"`
	ModificationDate    time.Time                    `json:"modificationDate"`
	About               string                       `json:"about"`
	Tags                []string                     `json:"tags"`
	MemberCount         int                          `json:"memberCount"`
	IsPublic            bool                         `json:"isPublic"`
	Motto               string                       `json:"motto"`
	Locale              string                       `json:"locale"`
	Theme               string                       `json:"theme"`
	BannerPath          string                       `json:"bannerPath"`
	AvatarPath          string                       `json:"avatarPath"`
	Features            GroupFeatures                `json:"features"`
	ClanInfo            GroupV2ClanInfoAndInvestment `json:"clanInfo"`
}

type GroupFeatures struct {
	MaximumMembers  int   `json:"maximumMembers"`
	MembershipTypes []int `json:"membershipTypes"`
	JoinLevel       int   `json:"joinLevel"`
}

type GroupV2ClanInfoAndInvestment struct {
	D2ClanProgressions map[uint32]DestinyProgression `json:"d2ClanProgressions"`
	ClanCallsign       string                        `json:"clanCallsign"`
	ClanBannerData     ClanBanner                    `json:"clanBannerData"`
}

type DestinyProgression struct {
	ProgressionHash     uint32 `json:"progressionHash"`
	DailyProgress       int    `json:"dailyProgress"`
	WeeklyProgress      int    `json:"weeklyProgress"`
	CurrentProgress     int    `json:"currentProgress"`
	Level               int    `json:"level"`
	LevelCap            int    `json:"levelCap"`
	StepIndex           int    `json:"stepIndex"`
	ProgressToNextLevel int    `json:"progressToNextLevel"`
	NextLevelAt         int    `json:"nextLevelAt"`
}

type ClanBanner struct {
	DecalId                uint32 `json:"decalId"`
	DecalColorId           uint32 `json:"decalColorId"`
	DecalBackgroundColorId uint32 `json:"decalBackgroundColorId"`
	GonfalonId             uint32 `json:"gonfalonId"`
	GonfalonColorId        uint32 `json:"gonfalonColorId"`
	GonfalonDetailId       uint32 `json:"gonfalonDetailId"`
	GonfalonDetailColorId  uint32 `json:"gonfalonDetailColorId"`
}

type GroupUserInfoCard struct {
	DestinyUserInfo
	LastSeenDisplayName     string `json:"LastSeenDisplayName"`
	LastSeenDisplayNameType int    `json:"LastSeenDisplayNameType"`
}

type GroupMember struct {
	MemberType             int               `json:"memberType"`
	IsOnline               bool              `json:"isOnline"`
	LastOnlineStatusChange int64             `json:"lastOnlineStatusChange,string"`
	GroupId                int64             `json:"groupId,string"`
	DestinyUserInfo        GroupUserInfoCard `json:"destinyUserInfo"`
	BungieNetUserInfo      *UserInfoCard     `json:"bungieNetUserInfo"`
	JoinDate               time.Time         `json:"joinDate"`
}
