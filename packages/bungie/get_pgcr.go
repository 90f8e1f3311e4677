package bungie

import (
	"context"
	"time"
)

// There are more fields here than recorded in this file, but these are the only ones we care about
type DestinyPostGameCarnageReport struct {
	Period                          time.Time                               `json:"period"`
	StartingPhaseIndex              int                                     `json:"startingPhaseIndex"`
	ActivityWasStartedFromBeginning bool                                    `json:"activityWasStartedFromBeginning"`
	ActivityDetails                 DestinyHistoricalStatsActivity          `json:"activityDetails"`
	Entries                         []DestinyPostGameCarnageReportEntry     `json:"entries"`
	Teams                           []DestinyPostGameCarnageReportTeamEntry `json:"teams"`
}

type DestinyPostGameCarnageReportEntry struct {
	Standing    int                                       `json:"standing"`
	Score       DestinyHistoricalStatsValue               `json:"score"`
	Player      DestinyPostGameCarnageReportPlayer        `json:"player"`
	CharacterId int64                                     `json:"characterId,string"`
	Values      DestinyHistoricalStatsMap                 `json:"values"`
	Extended    *DestinyPostGameCarnageReportExtendedData `json:"extended"`
}

type DestinyPostGameCarnageReportTeamEntry struct {
	TeamId   int                         `json:"teamId"`
	Standing DestinyHistoricalStatsValue `json:"standing"`
	Score    DestinyHistoricalStatsValue `json:"score"`
	TeamName string                      `json:"teamName"`
}

type DestinyPostGameCarnageReportPlayer struct {
	DestinyUserInfo DestinyUserInfo `json:"destinyUserInfo"`
	CharacterClass  *string         `json:"characterClass"`
	ClassHash       uint32          `json:"classHash"`
	RaceHash        uint32          `json:"raceHash"`
	GenderHash      uint32          `json:"genderHash"`
	CharacterLevel  int             `json:"characterLevel"`
	LightLevel      int             `json:"lightLevel"`
	EmblemHash      uint32          `json:"emblemHash"`
}

type DestinyPostGameCarnageReportExtendedData struct {
	Values  DestinyHistoricalStatsMap      `json:"values"`
	Weapons []DestinyHistoricalWeaponStats `json:"weapons"`
}

type DestinyHistoricalWeaponStats struct {
	ReferenceId uint32                    `json:"referenceId"`
	Values      DestinyHistoricalStatsMap `json:"values"`
}

type DestinyHistoricalStatsMap map[string]DestinyHistoricalStatsValue

type DestinyHistoricalStatsValue struct {
	StatId string                          `json:"statId"`
	Basic  DestinyHistoricalStatsValuePair `json:"basic"`
}

type DestinyHistoricalStatsValuePair struct {
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}

// Stat returns the basic value for key, or 0 when the stat is absent.
func (m DestinyHistoricalStatsMap) Stat(key string) int {
	if stat, ok := m[key]; ok {
		return int(stat.Basic.Value)
	}
	return 0
}

// PostGameCarnageReportURL is served by the stats host, not www.
func (c *Client) PostGameCarnageReportURL(instanceId int64) string {
	return c.StatsEndpoint("/Destiny2/Stats/PostGameCarnageReport/%d/", instanceId)
}

func (c *Client) GetPGCR(ctx context.Context, instanceId int64) (*DestinyPostGameCarnageReport, error) {
	return getResponse[DestinyPostGameCarnageReport](ctx, c, c.PostGameCarnageReportURL(instanceId), nil)
}
