package pgcr

import (
	"testing"
	"time"

	"tower/packages/bungie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stats(kv map[string]float64) bungie.DestinyHistoricalStatsMap {
	m := bungie.DestinyHistoricalStatsMap{}
	for k, v := range kv {
		m[k] = bungie.DestinyHistoricalStatsValue{StatId: k, Basic: bungie.DestinyHistoricalStatsValuePair{Value: v}}
	}
	return m
}

func entry(membershipId, characterId int64, kv map[string]float64) bungie.DestinyPostGameCarnageReportEntry {
	name := "Player"
	code := 42
	return bungie.DestinyPostGameCarnageReportEntry{
		CharacterId: characterId,
		Player: bungie.DestinyPostGameCarnageReportPlayer{
			DestinyUserInfo: bungie.DestinyUserInfo{
				MembershipId:                membershipId,
				MembershipType:              3,
				BungieGlobalDisplayName:     &name,
				BungieGlobalDisplayNameCode: &code,
			},
		},
		Values: stats(kv),
	}
}

func sampleReport() *bungie.DestinyPostGameCarnageReport {
	return &bungie.DestinyPostGameCarnageReport{
		Period:                          time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC),
		ActivityWasStartedFromBeginning: true,
		ActivityDetails: bungie.DestinyHistoricalStatsActivity{
			InstanceId:           15000000000,
			DirectorActivityHash: 3089205900,
			Mode:                 4,
			MembershipType:       3,
		},
		Entries: []bungie.DestinyPostGameCarnageReportEntry{
			entry(1, 11, map[string]float64{"playerCount": 3, "activityDurationSeconds": 600, "startSeconds": 0, "timePlayedSeconds": 300, "kills": 10}),
			entry(2, 21, map[string]float64{"activityDurationSeconds": 600, "startSeconds": 100, "timePlayedSeconds": 100, "kills": 4, "deaths": 2}),
			entry(1, 12, map[string]float64{"activityDurationSeconds": 600, "startSeconds": 200, "timePlayedSeconds": 400, "kills": 5, "deaths": 1, "completed": 1}),
		},
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(sampleReport())
	require.NoError(t, err)

	assert.Equal(t, int64(15000000000), s.InstanceId)
	assert.Equal(t, "EaterOfWorlds", s.Activity)
	assert.Equal(t, 600, s.DurationSeconds)
	assert.Equal(t, s.DateStarted.Add(10*time.Minute), s.DateCompleted)
	assert.True(t, s.Completed)
	assert.False(t, s.Deathless)
	require.NotNil(t, s.Fresh)
	assert.True(t, *s.Fresh)
	assert.Equal(t, 2, s.PlayerCount)

	require.Len(t, s.Players, 2)
	a, b := s.Players[0], s.Players[1]
	assert.Equal(t, int64(1), a.MembershipId)
	assert.Equal(t, "Player#0042", a.DisplayName)
	assert.Equal(t, []int64{11, 12}, a.Characters)
	assert.Equal(t, 600, a.TimePlayedSeconds)
	assert.Equal(t, 15, a.Kills)
	assert.Equal(t, 1, a.Deaths)
	assert.True(t, a.Finished)

	assert.Equal(t, int64(2), b.MembershipId)
	assert.Equal(t, 100, b.TimePlayedSeconds)
	assert.False(t, b.Finished)
}

func TestSummarize_NoEntries(t *testing.T) {
	_, err := Summarize(&bungie.DestinyPostGameCarnageReport{})
	assert.Error(t, err)
}

func TestSummarize_EntryCountMismatch(t *testing.T) {
	report := sampleReport()
	report.Entries = report.Entries[:2]
	_, err := Summarize(report)
	assert.ErrorContains(t, err, "invalid entry length")
}

func TestSummarize_CompletionReasonNotZero(t *testing.T) {
	report := sampleReport()
	report.Entries[0].Values["completionReason"] = bungie.DestinyHistoricalStatsValue{Basic: bungie.DestinyHistoricalStatsValuePair{Value: 2}}
	s, err := Summarize(report)
	require.NoError(t, err)
	assert.False(t, s.Completed)
}

func TestIsFresh(t *testing.T) {
	pst := time.FixedZone("PST", -8*60*60)
	report := func(start time.Time, hash uint32, phase int, fromBeginning bool) *bungie.DestinyPostGameCarnageReport {
		return &bungie.DestinyPostGameCarnageReport{
			Period:                          start,
			StartingPhaseIndex:              phase,
			ActivityWasStartedFromBeginning: fromBeginning,
			ActivityDetails:                 bungie.DestinyHistoricalStatsActivity{DirectorActivityHash: hash},
		}
	}

	preBL := time.Date(2019, time.June, 1, 0, 0, 0, 0, pst)
	beyondLight := time.Date(2021, time.June, 1, 0, 0, 0, 0, pst)
	witchQueen := time.Date(2022, time.March, 1, 0, 0, 0, 0, pst)
	current := time.Date(2023, time.March, 1, 0, 0, 0, 0, pst)

	assert.True(t, *isFresh(report(preBL, 2693136600, 2, false), false))
	assert.False(t, *isFresh(report(preBL, 3089205900, 2, false), false))
	assert.True(t, *isFresh(report(preBL, 548750096, 1, false), false))
	assert.Nil(t, isFresh(report(beyondLight, 3089205900, 0, true), true))
	assert.Nil(t, isFresh(report(witchQueen, 3089205900, 0, false), false))
	assert.False(t, *isFresh(report(witchQueen, 3089205900, 0, false), true))
	assert.True(t, *isFresh(report(witchQueen, 3089205900, 0, true), false))
	assert.False(t, *isFresh(report(current, 3089205900, 0, false), false))
}
