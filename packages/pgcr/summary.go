package pgcr

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"tower/packages/bungie"
	"tower/packages/destiny"
)

type Summary struct {
	InstanceId      int64           `json:"instanceId"`
	Hash            uint32          `json:"hash"`
	Activity        string          `json:"activity,omitempty"`
	Mode            int             `json:"mode"`
	MembershipType  int             `json:"membershipType"`
	DateStarted     time.Time       `json:"dateStarted"`
	DateCompleted   time.Time       `json:"dateCompleted"`
	DurationSeconds int             `json:"durationSeconds"`
	Completed       bool            `json:"completed"`
	Deathless       bool            `json:"deathless"`
	Fresh           *bool           `json:"fresh"`
	PlayerCount     int             `json:"playerCount"`
	Players         []PlayerSummary `json:"players"`
}

type PlayerSummary struct {
	MembershipId      int64   `json:"membershipId"`
	MembershipType    int     `json:"membershipType"`
	DisplayName       string  `json:"displayName"`
	Characters        []int64 `json:"characters"`
	Finished          bool    `json:"finished"`
	TimePlayedSeconds int     `json:"timePlayedSeconds"`
	Kills             int     `json:"kills"`
	Deaths            int     `json:"deaths"`
	Assists           int     `json:"assists"`
}

// Summarize reduces a report to one row per player. Players keep the order
// in which they first appear in the report.
func Summarize(report *bungie.DestinyPostGameCarnageReport) (*Summary, error) {
	if len(report.Entries) == 0 {
		return nil, errors.New("malformed pgcr: no entries")
	}

	first := report.Entries[0].Values
	expected := first.Stat("playerCount")
	if expected > 0 && len(report.Entries) != expected {
		return nil, fmt.Errorf("malformed pgcr: invalid entry length: %d != %d", len(report.Entries), expected)
	}

	duration := first.Stat("activityDurationSeconds")
	completionReason := first.Stat("completionReason")

	result := &Summary{
		InstanceId:      report.ActivityDetails.InstanceId,
		Hash:            report.ActivityDetails.DirectorActivityHash,
		Mode:            report.ActivityDetails.Mode,
		MembershipType:  report.ActivityDetails.MembershipType,
		DateStarted:     report.Period,
		DateCompleted:   report.Period.Add(time.Duration(duration) * time.Second),
		DurationSeconds: duration,
	}
	if ai, ok := destiny.ActivityIdentifierFromHash(result.Hash); ok {
		result.Activity = ai.Name
	}

	var order []int64
	byPlayer := make(map[int64][]bungie.DestinyPostGameCarnageReportEntry)
	for _, e := range report.Entries {
		id := e.Player.DestinyUserInfo.MembershipId
		if _, ok := byPlayer[id]; !ok {
			order = append(order, id)
		}
		byPlayer[id] = append(byPlayer[id], e)
	}

	deathless := true
	for _, id := range order {
		entries := byPlayer[id]
		info := entries[0].Player.DestinyUserInfo
		player := PlayerSummary{
			MembershipId:      id,
			MembershipType:    info.MembershipType,
			DisplayName:       displayName(info),
			TimePlayedSeconds: timePlayedSeconds(entries),
		}
		for _, e := range entries {
			player.Characters = append(player.Characters, e.CharacterId)
			player.Kills += e.Values.Stat("kills")
			player.Deaths += e.Values.Stat("deaths")
			player.Assists += e.Values.Stat("assists")
			player.Finished = player.Finished || (e.Values.Stat("completed") == 1 && completionReason == 0)
		}
		if player.Deaths > 0 {
			deathless = false
		}
		result.Completed = result.Completed || player.Finished
		result.Players = append(result.Players, player)
	}

	result.PlayerCount = len(order)
	result.Deathless = deathless
	result.Fresh = isFresh(report, deathless)
	return result, nil
}

func displayName(info bungie.DestinyUserInfo) string {
	if name := bungie.FullDisplayName(info); name != "" {
		return name
	}
	if info.DisplayName != nil {
		return *info.DisplayName
	}
	return ""
}

// timePlayedSeconds merges the character timelines of one player so that
// overlapping characters are not counted twice.
func timePlayedSeconds(entries []bungie.DestinyPostGameCarnageReportEntry) int {
	duration := entries[0].Values.Stat("activityDurationSeconds")
	timeline := make([]int, duration+1)
	for _, e := range entries {
		start := e.Values.Stat("startSeconds")
		end := start + e.Values.Stat("timePlayedSeconds")
		if start < 0 {
			start = 0
		}
		if start <= duration {
			timeline[start]++
		}
		if end <= duration {
			timeline[end]--
		}
	}

	seconds, current := 0, 0
	for i, delta := range timeline {
		current += delta
		if current > 0 && i < duration {
			seconds++
		}
	}
	return seconds
}

var (
	beyondLightStart = time.Date(2020, time.November, 10, 9, 0, 0, 0, time.FixedZone("PST", -8*60*60))
	witchQueenStart  = time.Date(2022, time.February, 22, 9, 0, 0, 0, time.FixedZone("PST", -8*60*60))
	hauntedStart     = time.Date(2022, time.May, 24, 10, 0, 0, 0, time.FixedZone("PDT", -7*60*60))
)

var sotpHashes = map[uint32]bool{548750096: true, 2812525063: true}

var leviHashes = map[uint32]bool{
	2693136600: true, 2693136601: true, 2693136602: true,
	2693136603: true, 2693136604: true, 2693136605: true,
	89727599: true, 287649202: true, 1699948563: true, 1875726950: true,
	3916343513: true, 4039317196: true, 417231112: true, 508802457: true,
	757116822: true, 771164842: true, 1685065161: true, 1800508819: true,
	2449714930: true, 3446541099: true, 4206123728: true, 3912437239: true,
	3879860661: true, 3857338478: true,
}

// isFresh reports whether the activity was played from its first encounter.
// The platform's signal for this changed across releases, and during Beyond
// Light it is unusable, so nil means unknown.
func isFresh(report *bungie.DestinyPostGameCarnageReport, deathless bool) *bool {
	start := report.Period
	hash := report.ActivityDetails.DirectorActivityHash

	var fresh bool
	switch {
	case !start.Before(hauntedStart):
		fresh = report.ActivityWasStartedFromBeginning
	case start.Before(beyondLightStart):
		switch {
		case sotpHashes[hash]:
			fresh = report.StartingPhaseIndex <= 1
		case leviHashes[hash]:
			fresh = report.StartingPhaseIndex == 0 || report.StartingPhaseIndex == 2
		default:
			fresh = report.StartingPhaseIndex == 0
		}
	case !start.Before(witchQueenStart) && (report.ActivityWasStartedFromBeginning || deathless):
		// a wipe clears the flag during Witch Queen
		fresh = report.ActivityWasStartedFromBeginning
	default:
		return nil
	}
	return &fresh
}

func parseId(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}
