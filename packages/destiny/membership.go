package destiny

import (
	"fmt"
	"strings"
)

// MembershipType is BungieMembershipType: the platform an account lives on.
type MembershipType int

const (
	MembershipAll        MembershipType = -1
	MembershipNone       MembershipType = 0
	MembershipXbox       MembershipType = 1
	MembershipPSN        MembershipType = 2
	MembershipSteam      MembershipType = 3
	MembershipBlizzard   MembershipType = 4
	MembershipStadia     MembershipType = 5
	MembershipEpic       MembershipType = 6
	MembershipDemon      MembershipType = 10
	MembershipBungieNext MembershipType = 254
)

func (t MembershipType) String() string {
	switch t {
	case MembershipAll:
		return "All"
	case MembershipNone:
		return "None"
	case MembershipXbox:
		return "Xbox"
	case MembershipPSN:
		return "PSN"
	case MembershipSteam:
		return "Steam"
	case MembershipBlizzard:
		return "Blizzard"
	case MembershipStadia:
		return "Stadia"
	case MembershipEpic:
		return "Epic"
	case MembershipDemon:
		return "Demon"
	case MembershipBungieNext:
		return "BungieNext"
	}
	return fmt.Sprintf("MembershipType(%d)", int(t))
}

// ParseMembershipType accepts a name as returned by String (case
// insensitive) or the numeric code.
func ParseMembershipType(s string) (MembershipType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "-1":
		return MembershipAll, nil
	case "none", "0":
		return MembershipNone, nil
	case "xbox", "1":
		return MembershipXbox, nil
	case "psn", "2":
		return MembershipPSN, nil
	case "steam", "3":
		return MembershipSteam, nil
	case "blizzard", "4":
		return MembershipBlizzard, nil
	case "stadia", "5":
		return MembershipStadia, nil
	case "epic", "6":
		return MembershipEpic, nil
	case "demon", "10":
		return MembershipDemon, nil
	case "bungienext", "254":
		return MembershipBungieNext, nil
	}
	return MembershipNone, fmt.Errorf("unknown membership type %q", s)
}
