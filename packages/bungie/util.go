package bungie

import (
	"strconv"
	"strings"
)

// FixBungieGlobalDisplayNameCode renders the numeric name suffix as the four
// digit string shown in game, e.g. 7 -> "0007".
func FixBungieGlobalDisplayNameCode(code *int) *string {
	if code == nil {
		return nil
	}
	str := strconv.Itoa(*code)
	missingZeroes := 4 - len(str)
	if missingZeroes < 0 {
		missingZeroes = 0
	}

	returnValue := strings.Repeat("0", missingZeroes) + str
	return &returnValue
}

// FullDisplayName joins a Bungie name and its code, "Name#0007". It returns
// the empty string when either part is missing.
func FullDisplayName(info DestinyUserInfo) string {
	if info.BungieGlobalDisplayName == nil || *info.BungieGlobalDisplayName == "" {
		return ""
	}
	code := FixBungieGlobalDisplayNameCode(info.BungieGlobalDisplayNameCode)
	if code == nil {
		return ""
	}
	return *info.BungieGlobalDisplayName + "#" + *code
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
