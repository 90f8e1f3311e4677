package destiny

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityMode_RoundTrip(t *testing.T) {
	modes := AllActivityModes()
	require.Len(t, modes, 67)

	seen := map[string]bool{}
	for _, m := range modes {
		name := m.String()
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		parsed, err := ParseActivityMode(name)
		require.NoError(t, err)
		assert.Equal(t, m, parsed)

		fromCode, ok := ActivityModeFromCode(m.Code())
		assert.True(t, ok)
		assert.Equal(t, m, fromCode)
		assert.True(t, m.Valid())
	}
}

func TestActivityMode_Known(t *testing.T) {
	assert.Equal(t, 4, ActivityModeRaid.Code())
	assert.Equal(t, "Raid", ActivityModeRaid.String())
	assert.Equal(t, 82, ActivityModeDungeon.Code())
	assert.Equal(t, 86, ActivityModeOffensive.Code())

	_, ok := ActivityModeFromCode(1)
	assert.False(t, ok)
	assert.False(t, ActivityMode(1).Valid())
	assert.Equal(t, "ActivityMode(1)", ActivityMode(1).String())

	_, err := ParseActivityMode("raid")
	assert.Error(t, err)
}

func TestMembershipType_RoundTrip(t *testing.T) {
	types := []MembershipType{
		MembershipAll, MembershipNone, MembershipXbox, MembershipPSN,
		MembershipSteam, MembershipBlizzard, MembershipStadia, MembershipEpic,
		MembershipDemon, MembershipBungieNext,
	}
	for _, mt := range types {
		parsed, err := ParseMembershipType(mt.String())
		require.NoError(t, err)
		assert.Equal(t, mt, parsed)
	}

	parsed, err := ParseMembershipType(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, MembershipSteam, parsed)

	parsed, err = ParseMembershipType("STEAM")
	require.NoError(t, err)
	assert.Equal(t, MembershipSteam, parsed)

	_, err = ParseMembershipType("gamecube")
	assert.Error(t, err)
	assert.Equal(t, "MembershipType(7)", MembershipType(7).String())
}

func TestManifestEntityType_RoundTrip(t *testing.T) {
	types := AllManifestEntityTypes()
	require.Len(t, types, 50)

	for _, et := range types {
		def := et.Definition()
		require.NotEmpty(t, def)
		assert.Equal(t, def, et.String())

		parsed, err := ParseManifestEntityType(def)
		require.NoError(t, err)
		assert.Equal(t, et, parsed)
	}

	assert.Equal(t, "DestinyInventoryItemDefinition", EntityInventoryItem.Definition())
	_, err := ParseManifestEntityType("DestinyNothingDefinition")
	assert.Error(t, err)
}

func TestActivityIdentifier(t *testing.T) {
	for _, ai := range AllActivityIdentifiers() {
		require.NotEmpty(t, ai.Hashes, ai.Name)
		for _, h := range ai.Hashes {
			got, ok := ActivityIdentifierFromHash(h)
			require.True(t, ok)
			assert.Equal(t, ai.Name, got.Name)
		}
		byName, ok := ActivityIdentifierByName(ai.Name)
		require.True(t, ok)
		assert.Equal(t, ai.Mode, byName.Mode)
	}

	leviathan, ok := ActivityIdentifierFromHash(2693136600)
	require.True(t, ok)
	assert.Equal(t, "Leviathan", leviathan.Name)
	assert.Equal(t, ActivityModeRaid, leviathan.Mode)

	_, ok = ActivityIdentifierFromHash(1)
	assert.False(t, ok)
}
