package destiny

import "fmt"

// ActivityMode is DestinyActivityModeType, the filter used by activity history
// and stats endpoints.
type ActivityMode int

const (
	ActivityModeNone                    ActivityMode = 0
	ActivityModeStory                   ActivityMode = 2
	ActivityModeStrike                  ActivityMode = 3
	ActivityModeRaid                    ActivityMode = 4
	ActivityModeAllPvP                  ActivityMode = 5
	ActivityModePatrol                  ActivityMode = 6
	ActivityModeAllPvE                  ActivityMode = 7
	ActivityModeControl                 ActivityMode = 10
	ActivityModeClash                   ActivityMode = 12
	ActivityModeCrimsonDoubles          ActivityMode = 15
	ActivityModeNightfall               ActivityMode = 16
	ActivityModeHeroicNightfall         ActivityMode = 17
	ActivityModeAllStrikes              ActivityMode = 18
	ActivityModeIronBanner              ActivityMode = 19
	ActivityModeAllMayhem               ActivityMode = 25
	ActivityModeSupremacy               ActivityMode = 31
	ActivityModePrivateMatchesAll       ActivityMode = 32
	ActivityModeSurvival                ActivityMode = 37
	ActivityModeCountdown               ActivityMode = 38
	ActivityModeTrialsOfTheNine         ActivityMode = 39
	ActivityModeSocial                  ActivityMode = 40
	ActivityModeTrialsCountdown         ActivityMode = 41
	ActivityModeTrialsSurvival          ActivityMode = 42
	ActivityModeIronBannerControl       ActivityMode = 43
	ActivityModeIronBannerClash         ActivityMode = 44
	ActivityModeIronBannerSupremacy     ActivityMode = 45
	ActivityModeScoredNightfall         ActivityMode = 46
	ActivityModeScoredHeroicNightfall   ActivityMode = 47
	ActivityModeRumble                  ActivityMode = 48
	ActivityModeAllDoubles              ActivityMode = 49
	ActivityModeDoubles                 ActivityMode = 50
	ActivityModePrivateMatchesClash     ActivityMode = 51
	ActivityModePrivateMatchesControl   ActivityMode = 52
	ActivityModePrivateMatchesSupremacy ActivityMode = 53
	ActivityModePrivateMatchesCountdown ActivityMode = 54
	ActivityModePrivateMatchesSurvival  ActivityMode = 55
	ActivityModePrivateMatchesMayhem    ActivityMode = 56
	ActivityModePrivateMatchesRumble    ActivityMode = 57
	ActivityModeHeroicAdventure         ActivityMode = 58
	ActivityModeShowdown                ActivityMode = 59
	ActivityModeLockdown                ActivityMode = 60
	ActivityModeScorched                ActivityMode = 61
	ActivityModeScorchedTeam            ActivityMode = 62
	ActivityModeGambit                  ActivityMode = 63
	ActivityModeAllPvECompetitive       ActivityMode = 64
	ActivityModeBreakthrough            ActivityMode = 65
	ActivityModeBlackArmoryRun          ActivityMode = 66
	ActivityModeSalvage                 ActivityMode = 67
	ActivityModeIronBannerSalvage       ActivityMode = 68
	ActivityModePvPCompetitive          ActivityMode = 69
	ActivityModePvPQuickplay            ActivityMode = 70
	ActivityModeClashQuickplay          ActivityMode = 71
	ActivityModeClashCompetitive        ActivityMode = 72
	ActivityModeControlQuickplay        ActivityMode = 73
	ActivityModeControlCompetitive      ActivityMode = 74
	ActivityModeGambitPrime             ActivityMode = 75
	ActivityModeReckoning               ActivityMode = 76
	ActivityModeMenagerie               ActivityMode = 77
	ActivityModeVexOffensive            ActivityMode = 78
	ActivityModeNightmareHunt           ActivityMode = 79
	ActivityModeElimination             ActivityMode = 80
	ActivityModeMomentum                ActivityMode = 81
	ActivityModeDungeon                 ActivityMode = 82
	ActivityModeSundial                 ActivityMode = 83
	ActivityModeTrialsOfOsiris          ActivityMode = 84
	ActivityModeDares                   ActivityMode = 85
	ActivityModeOffensive               ActivityMode = 86
)

var allActivityModes = []ActivityMode{
	ActivityModeNone,
	ActivityModeStory,
	ActivityModeStrike,
	ActivityModeRaid,
	ActivityModeAllPvP,
	ActivityModePatrol,
	ActivityModeAllPvE,
	ActivityModeControl,
	ActivityModeClash,
	ActivityModeCrimsonDoubles,
	ActivityModeNightfall,
	ActivityModeHeroicNightfall,
	ActivityModeAllStrikes,
	ActivityModeIronBanner,
	ActivityModeAllMayhem,
	ActivityModeSupremacy,
	ActivityModePrivateMatchesAll,
	ActivityModeSurvival,
	ActivityModeCountdown,
	ActivityModeTrialsOfTheNine,
	ActivityModeSocial,
	ActivityModeTrialsCountdown,
	ActivityModeTrialsSurvival,
	ActivityModeIronBannerControl,
	ActivityModeIronBannerClash,
	ActivityModeIronBannerSupremacy,
	ActivityModeScoredNightfall,
	ActivityModeScoredHeroicNightfall,
	ActivityModeRumble,
	ActivityModeAllDoubles,
	ActivityModeDoubles,
	ActivityModePrivateMatchesClash,
	ActivityModePrivateMatchesControl,
	ActivityModePrivateMatchesSupremacy,
	ActivityModePrivateMatchesCountdown,
	ActivityModePrivateMatchesSurvival,
	ActivityModePrivateMatchesMayhem,
	ActivityModePrivateMatchesRumble,
	ActivityModeHeroicAdventure,
	ActivityModeShowdown,
	ActivityModeLockdown,
	ActivityModeScorched,
	ActivityModeScorchedTeam,
	ActivityModeGambit,
	ActivityModeAllPvECompetitive,
	ActivityModeBreakthrough,
	ActivityModeBlackArmoryRun,
	ActivityModeSalvage,
	ActivityModeIronBannerSalvage,
	ActivityModePvPCompetitive,
	ActivityModePvPQuickplay,
	ActivityModeClashQuickplay,
	ActivityModeClashCompetitive,
	ActivityModeControlQuickplay,
	ActivityModeControlCompetitive,
	ActivityModeGambitPrime,
	ActivityModeReckoning,
	ActivityModeMenagerie,
	ActivityModeVexOffensive,
	ActivityModeNightmareHunt,
	ActivityModeElimination,
	ActivityModeMomentum,
	ActivityModeDungeon,
	ActivityModeSundial,
	ActivityModeTrialsOfOsiris,
	ActivityModeDares,
	ActivityModeOffensive,
}

// AllActivityModes lists every known mode in ascending code order.
func AllActivityModes() []ActivityMode {
	modes := make([]ActivityMode, len(allActivityModes))
	copy(modes, allActivityModes)
	return modes
}

func (m ActivityMode) String() string {
	switch m {
	case ActivityModeNone:
		return "None"
	case ActivityModeStory:
		return "Story"
	case ActivityModeStrike:
		return "Strike"
	case ActivityModeRaid:
		return "Raid"
	case ActivityModeAllPvP:
		return "AllPvP"
	case ActivityModePatrol:
		return "Patrol"
	case ActivityModeAllPvE:
		return "AllPvE"
	case ActivityModeControl:
		return "Control"
	case ActivityModeClash:
		return "Clash"
	case ActivityModeCrimsonDoubles:
		return "CrimsonDoubles"
	case ActivityModeNightfall:
		return "Nightfall"
	case ActivityModeHeroicNightfall:
		return "HeroicNightfall"
	case ActivityModeAllStrikes:
		return "AllStrikes"
	case ActivityModeIronBanner:
		return "IronBanner"
	case ActivityModeAllMayhem:
		return "AllMayhem"
	case ActivityModeSupremacy:
		return "Supremacy"
	case ActivityModePrivateMatchesAll:
		return "PrivateMatchesAll"
	case ActivityModeSurvival:
		return "Survival"
	case ActivityModeCountdown:
		return "Countdown"
	case ActivityModeTrialsOfTheNine:
		return "TrialsOfTheNine"
	case ActivityModeSocial:
		return "Social"
	case ActivityModeTrialsCountdown:
		return "TrialsCountdown"
	case ActivityModeTrialsSurvival:
		return "TrialsSurvival"
	case ActivityModeIronBannerControl:
		return "IronBannerControl"
	case ActivityModeIronBannerClash:
		return "IronBannerClash"
	case ActivityModeIronBannerSupremacy:
		return "IronBannerSupremacy"
	case ActivityModeScoredNightfall:
		return "ScoredNightfall"
	case ActivityModeScoredHeroicNightfall:
		return "ScoredHeroicNightfall"
	case ActivityModeRumble:
		return "Rumble"
	case ActivityModeAllDoubles:
		return "AllDoubles"
	case ActivityModeDoubles:
		return "Doubles"
	case ActivityModePrivateMatchesClash:
		return "PrivateMatchesClash"
	case ActivityModePrivateMatchesControl:
		return "PrivateMatchesControl"
	case ActivityModePrivateMatchesSupremacy:
		return "PrivateMatchesSupremacy"
	case ActivityModePrivateMatchesCountdown:
		return "PrivateMatchesCountdown"
	case ActivityModePrivateMatchesSurvival:
		return "PrivateMatchesSurvival"
	case ActivityModePrivateMatchesMayhem:
		return "PrivateMatchesMayhem"
	case ActivityModePrivateMatchesRumble:
		return "PrivateMatchesRumble"
	case ActivityModeHeroicAdventure:
		return "HeroicAdventure"
	case ActivityModeShowdown:
		return "Showdown"
	case ActivityModeLockdown:
		return "Lockdown"
	case ActivityModeScorched:
		return "Scorched"
	case ActivityModeScorchedTeam:
		return "ScorchedTeam"
	case ActivityModeGambit:
		return "Gambit"
	case ActivityModeAllPvECompetitive:
		return "AllPvECompetitive"
	case ActivityModeBreakthrough:
		return "Breakthrough"
	case ActivityModeBlackArmoryRun:
		return "BlackArmoryRun"
	case ActivityModeSalvage:
		return "Salvage"
	case ActivityModeIronBannerSalvage:
		return "IronBannerSalvage"
	case ActivityModePvPCompetitive:
		return "PvPCompetitive"
	case ActivityModePvPQuickplay:
		return "PvPQuickplay"
	case ActivityModeClashQuickplay:
		return "ClashQuickplay"
	case ActivityModeClashCompetitive:
		return "ClashCompetitive"
	case ActivityModeControlQuickplay:
		return "ControlQuickplay"
	case ActivityModeControlCompetitive:
		return "ControlCompetitive"
	case ActivityModeGambitPrime:
		return "GambitPrime"
	case ActivityModeReckoning:
		return "Reckoning"
	case ActivityModeMenagerie:
		return "Menagerie"
	case ActivityModeVexOffensive:
		return "VexOffensive"
	case ActivityModeNightmareHunt:
		return "NightmareHunt"
	case ActivityModeElimination:
		return "Elimination"
	case ActivityModeMomentum:
		return "Momentum"
	case ActivityModeDungeon:
		return "Dungeon"
	case ActivityModeSundial:
		return "Sundial"
	case ActivityModeTrialsOfOsiris:
		return "TrialsOfOsiris"
	case ActivityModeDares:
		return "Dares"
	case ActivityModeOffensive:
		return "Offensive"
	}
	return fmt.Sprintf("ActivityMode(%d)", int(m))
}

// Code is the integer the platform uses on the wire.
func (m ActivityMode) Code() int {
	return int(m)
}

// Valid reports whether m is one of the known modes.
func (m ActivityMode) Valid() bool {
	_, ok := ActivityModeFromCode(int(m))
	return ok
}

func ActivityModeFromCode(code int) (ActivityMode, bool) {
	switch ActivityMode(code) {
	case ActivityModeNone, ActivityModeStory, ActivityModeStrike,
		ActivityModeRaid, ActivityModeAllPvP, ActivityModePatrol,
		ActivityModeAllPvE, ActivityModeControl, ActivityModeClash,
		ActivityModeCrimsonDoubles, ActivityModeNightfall,
		ActivityModeHeroicNightfall, ActivityModeAllStrikes,
		ActivityModeIronBanner, ActivityModeAllMayhem, ActivityModeSupremacy,
		ActivityModePrivateMatchesAll, ActivityModeSurvival,
		ActivityModeCountdown, ActivityModeTrialsOfTheNine,
		ActivityModeSocial, ActivityModeTrialsCountdown,
		ActivityModeTrialsSurvival, ActivityModeIronBannerControl,
		ActivityModeIronBannerClash, ActivityModeIronBannerSupremacy,
		ActivityModeScoredNightfall, ActivityModeScoredHeroicNightfall,
		ActivityModeRumble, ActivityModeAllDoubles, ActivityModeDoubles,
		ActivityModePrivateMatchesClash, ActivityModePrivateMatchesControl,
		ActivityModePrivateMatchesSupremacy,
		ActivityModePrivateMatchesCountdown,
		ActivityModePrivateMatchesSurvival, ActivityModePrivateMatchesMayhem,
		ActivityModePrivateMatchesRumble, ActivityModeHeroicAdventure,
		ActivityModeShowdown, ActivityModeLockdown, ActivityModeScorched,
		ActivityModeScorchedTeam, ActivityModeGambit,
		ActivityModeAllPvECompetitive, ActivityModeBreakthrough,
		ActivityModeBlackArmoryRun, ActivityModeSalvage,
		ActivityModeIronBannerSalvage, ActivityModePvPCompetitive,
		ActivityModePvPQuickplay, ActivityModeClashQuickplay,
		ActivityModeClashCompetitive, ActivityModeControlQuickplay,
		ActivityModeControlCompetitive, ActivityModeGambitPrime,
		ActivityModeReckoning, ActivityModeMenagerie,
		ActivityModeVexOffensive, ActivityModeNightmareHunt,
		ActivityModeElimination, ActivityModeMomentum, ActivityModeDungeon,
		ActivityModeSundial, ActivityModeTrialsOfOsiris, ActivityModeDares,
		ActivityModeOffensive:
		return ActivityMode(code), true
	}
	return ActivityModeNone, false
}

// ParseActivityMode maps a mode name, as returned by String, back to its
// value.
func ParseActivityMode(name string) (ActivityMode, error) {
	switch name {
	case "None":
		return ActivityModeNone, nil
	case "Story":
		return ActivityModeStory, nil
	case "Strike":
		return ActivityModeStrike, nil
	case "Raid":
		return ActivityModeRaid, nil
	case "AllPvP":
		return ActivityModeAllPvP, nil
	case "Patrol":
		return ActivityModePatrol, nil
	case "AllPvE":
		return ActivityModeAllPvE, nil
	case "Control":
		return ActivityModeControl, nil
	case "Clash":
		return ActivityModeClash, nil
	case "CrimsonDoubles":
		return ActivityModeCrimsonDoubles, nil
	case "Nightfall":
		return ActivityModeNightfall, nil
	case "HeroicNightfall":
		return ActivityModeHeroicNightfall, nil
	case "AllStrikes":
		return ActivityModeAllStrikes, nil
	case "IronBanner":
		return ActivityModeIronBanner, nil
	case "AllMayhem":
		return ActivityModeAllMayhem, nil
	case "Supremacy":
		return ActivityModeSupremacy, nil
	case "PrivateMatchesAll":
		return ActivityModePrivateMatchesAll, nil
	case "Survival":
		return ActivityModeSurvival, nil
	case "Countdown":
		return ActivityModeCountdown, nil
	case "TrialsOfTheNine":
		return ActivityModeTrialsOfTheNine, nil
	case "Social":
		return ActivityModeSocial, nil
	case "TrialsCountdown":
		return ActivityModeTrialsCountdown, nil
	case "TrialsSurvival":
		return ActivityModeTrialsSurvival, nil
	case "IronBannerControl":
		return ActivityModeIronBannerControl, nil
	case "IronBannerClash":
		return ActivityModeIronBannerClash, nil
	case "IronBannerSupremacy":
		return ActivityModeIronBannerSupremacy, nil
	case "ScoredNightfall":
		return ActivityModeScoredNightfall, nil
	case "ScoredHeroicNightfall":
		return ActivityModeScoredHeroicNightfall, nil
	case "Rumble":
		return ActivityModeRumble, nil
	case "AllDoubles":
		return ActivityModeAllDoubles, nil
	case "Doubles":
		return ActivityModeDoubles, nil
	case "PrivateMatchesClash":
		return ActivityModePrivateMatchesClash, nil
	case "PrivateMatchesControl":
		return ActivityModePrivateMatchesControl, nil
	case "PrivateMatchesSupremacy":
		return ActivityModePrivateMatchesSupremacy, nil
	case "PrivateMatchesCountdown":
		return ActivityModePrivateMatchesCountdown, nil
	case "PrivateMatchesSurvival":
		return ActivityModePrivateMatchesSurvival, nil
	case "PrivateMatchesMayhem":
		return ActivityModePrivateMatchesMayhem, nil
	case "PrivateMatchesRumble":
		return ActivityModePrivateMatchesRumble, nil
	case "HeroicAdventure":
		return ActivityModeHeroicAdventure, nil
	case "Showdown":
		return ActivityModeShowdown, nil
	case "Lockdown":
		return ActivityModeLockdown, nil
	case "Scorched":
		return ActivityModeScorched, nil
	case "ScorchedTeam":
		return ActivityModeScorchedTeam, nil
	case "Gambit":
		return ActivityModeGambit, nil
	case "AllPvECompetitive":
		return ActivityModeAllPvECompetitive, nil
	case "Breakthrough":
		return ActivityModeBreakthrough, nil
	case "BlackArmoryRun":
		return ActivityModeBlackArmoryRun, nil
	case "Salvage":
		return ActivityModeSalvage, nil
	case "IronBannerSalvage":
		return ActivityModeIronBannerSalvage, nil
	case "PvPCompetitive":
		return ActivityModePvPCompetitive, nil
	case "PvPQuickplay":
		return ActivityModePvPQuickplay, nil
	case "ClashQuickplay":
		return ActivityModeClashQuickplay, nil
	case "ClashCompetitive":
		return ActivityModeClashCompetitive, nil
	case "ControlQuickplay":
		return ActivityModeControlQuickplay, nil
	case "ControlCompetitive":
		return ActivityModeControlCompetitive, nil
	case "GambitPrime":
		return ActivityModeGambitPrime, nil
	case "Reckoning":
		return ActivityModeReckoning, nil
	case "Menagerie":
		return ActivityModeMenagerie, nil
	case "VexOffensive":
		return ActivityModeVexOffensive, nil
	case "NightmareHunt":
		return ActivityModeNightmareHunt, nil
	case "Elimination":
		return ActivityModeElimination, nil
	case "Momentum":
		return ActivityModeMomentum, nil
	case "Dungeon":
		return ActivityModeDungeon, nil
	case "Sundial":
		return ActivityModeSundial, nil
	case "TrialsOfOsiris":
		return ActivityModeTrialsOfOsiris, nil
	case "Dares":
		return ActivityModeDares, nil
	case "Offensive":
		return ActivityModeOffensive, nil
	}
	return ActivityModeNone, fmt.Errorf("unknown activity mode %q", name)
}
