package bungie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixBungieGlobalDisplayNameCode(t *testing.T) {
	assert.Nil(t, FixBungieGlobalDisplayNameCode(nil))

	cases := map[int]string{
		0:     "0000",
		7:     "0007",
		42:    "0042",
		999:   "0999",
		1234:  "1234",
		12345: "12345",
	}
	for in, want := range cases {
		code := in
		assert.Equal(t, want, *FixBungieGlobalDisplayNameCode(&code))
	}
}

func TestFullDisplayName(t *testing.T) {
	name := "Guardian"
	code := 12
	assert.Equal(t, "Guardian#0012", FullDisplayName(DestinyUserInfo{BungieGlobalDisplayName: &name, BungieGlobalDisplayNameCode: &code}))
	assert.Equal(t, "", FullDisplayName(DestinyUserInfo{BungieGlobalDisplayName: &name}))
	assert.Equal(t, "", FullDisplayName(DestinyUserInfo{}))
}
