package clan

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"tower/packages/bungie"
)

// hangulFiller is the blank glyph players pad clan names with.
const hangulFiller = "ㅤ"

type Details struct {
	GroupId     int64           `json:"groupId"`
	Name        string          `json:"name"`
	CallSign    string          `json:"callSign"`
	Motto       string          `json:"motto"`
	MemberCount int             `json:"memberCount"`
	BannerData  json.RawMessage `json:"bannerData"`
}

func ParseDetails(group *bungie.GroupV2) (*Details, error) {
	bannerData, err := json.Marshal(group.ClanInfo.ClanBannerData)
	if err != nil {
		return nil, fmt.Errorf("error marshalling ClanBannerData: %w", err)
	}

	return &Details{
		GroupId:     group.GroupId,
		Name:        html.UnescapeString(strings.TrimSpace(strings.ReplaceAll(group.Name, hangulFiller, ""))),
		CallSign:    html.UnescapeString(group.ClanInfo.ClanCallsign),
		Motto:       html.UnescapeString(group.Motto),
		MemberCount: group.MemberCount,
		BannerData:  bannerData,
	}, nil
}
