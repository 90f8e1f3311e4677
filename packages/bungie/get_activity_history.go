package bungie

import (
	"context"
	"time"
)

// ActivityHistoryPageSize is the largest page the platform will serve.
const ActivityHistoryPageSize = 250

type DestinyActivityHistoryResults struct {
	Activities []DestinyHistoricalStatsPeriodGroup `json:"activities"`
}

type DestinyHistoricalStatsPeriodGroup struct {
	Period          time.Time                      `json:"period"`
	ActivityDetails DestinyHistoricalStatsActivity `json:"activityDetails"`
	Values          DestinyHistoricalStatsMap      `json:"values"`
}

// GetActivityHistoryPage fetches one page (0-indexed) of a character's
// activity history filtered by mode. An empty slice means there are no more
// pages.
func (c *Client) GetActivityHistoryPage(ctx context.Context, membershipType int, membershipId int64, characterId int64, mode int, page int) ([]DestinyHistoricalStatsPeriodGroup, error) {
	url := c.Endpoint("/Destiny2/%d/Account/%d/Character/%d/Stats/Activities/", membershipType, membershipId, characterId)
	data, err := getResponse[DestinyActivityHistoryResults](ctx, c, url, Params{
		"mode":  itoa(mode),
		"count": itoa(ActivityHistoryPageSize),
		"page":  itoa(page),
	})
	if err != nil {
		return nil, err
	}
	return data.Activities, nil
}
