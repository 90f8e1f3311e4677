package bungie

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileBody = `{
	"Response": {
		"profile": {
			"data": {
				"userInfo": {
					"membershipType": 3,
					"membershipId": "4611686018468620320",
					"displayName": "Guardian",
					"bungieGlobalDisplayName": "Guardian",
					"bungieGlobalDisplayNameCode": 7
				},
				"dateLastPlayed": "2024-01-01T00:00:00Z",
				"characterIds": ["2305843009301086473", "2305843009301086474"]
			}
		}
	},
	"ErrorCode": 1,
	"ThrottleSeconds": 0,
	"ErrorStatus": "Success",
	"Message": "Ok",
	"MessageData": {}
}`

func TestGetProfile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Platform/Destiny2/3/Profile/4611686018468620320/", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("components"))
		w.Write([]byte(profileBody))
	})

	profile, err := c.GetProfile(context.Background(), 3, 4611686018468620320, ComponentProfiles)
	require.NoError(t, err)
	require.NotNil(t, profile.Profile.Data)
	assert.Equal(t, int64(4611686018468620320), profile.Profile.Data.UserInfo.MembershipId)
	assert.Equal(t, "Guardian#0007", FullDisplayName(profile.Profile.Data.UserInfo))
	assert.Len(t, profile.Profile.Data.CharacterIds, 2)
}

func TestGetProfile_UntypedEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(profileBody))
	})

	url := c.Endpoint("/Destiny2/%d/Profile/%d/", 3, int64(4611686018468620320))
	env, err := GetEnvelope[map[string]any](context.Background(), c, url, Params{"components": "100"})
	require.NoError(t, err)

	profile := env.Response["profile"].(map[string]any)
	data := profile["data"].(map[string]any)
	userInfo := data["userInfo"].(map[string]any)
	assert.Equal(t, "4611686018468620320", userInfo["membershipId"])
}

func TestGetProfile_DefaultComponents(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100,200", r.URL.Query().Get("components"))
		w.Write([]byte(profileBody))
	})

	_, err := c.GetProfile(context.Background(), 3, 1)
	require.NoError(t, err)
}

func TestGetProfile_PlatformError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ErrorCode":1665,"ThrottleSeconds":0,"ErrorStatus":"DestinyPrivacyRestriction","Message":"private","MessageData":{}}`))
	})

	profile, err := c.GetProfile(context.Background(), 3, 1)
	assert.Nil(t, profile)

	var be *BungieError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrorCodePrivacyRestriction, be.ErrorCode)
	assert.Equal(t, "error response: private (1665)", be.Error())
}

func TestGetPGCR_UsesStatsHost(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Platform/Destiny2/Stats/PostGameCarnageReport/15000000000/", r.URL.Path)
		w.Write([]byte(`{"Response":{"period":"2024-03-01T20:00:00Z","activityDetails":{"instanceId":"15000000000","directorActivityHash":1044919065,"mode":4,"membershipType":3},"entries":[]},"ErrorCode":1,"ErrorStatus":"Success"}`))
	})

	report, err := c.GetPGCR(context.Background(), 15000000000)
	require.NoError(t, err)
	assert.Equal(t, int64(15000000000), report.ActivityDetails.InstanceId)
	assert.Equal(t, uint32(1044919065), report.ActivityDetails.DirectorActivityHash)
}

func TestGetMembersOfGroup(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Platform/GroupV2/42/Members/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("currentpage"))
		w.Write([]byte(`{"Response":{"hasMore":false,"totalResults":1,"results":[{"memberType":3,"isOnline":false,"lastOnlineStatusChange":"1700000000","groupId":"42","destinyUserInfo":{"membershipType":3,"membershipId":"1","LastSeenDisplayName":"a"},"joinDate":"2020-01-01T00:00:00Z"}]},"ErrorCode":1,"ErrorStatus":"Success"}`))
	})

	result, err := c.GetMembersOfGroup(context.Background(), 42, 2)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, int64(1), result.Results[0].DestinyUserInfo.MembershipId)
	assert.Equal(t, "a", result.Results[0].DestinyUserInfo.LastSeenDisplayName)
}

func TestTransferItem(t *testing.T) {
	c := New(testKey)
	assert.ErrorIs(t, c.TransferItem(context.Background(), DestinyItemTransferRequest{}), ErrMissingAccessToken)

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		var req DestinyItemTransferRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, int64(6917529), req.ItemId)
		assert.True(t, req.TransferToVault)
		w.Write([]byte(`{"Response":0,"ErrorCode":1,"ErrorStatus":"Success"}`))
	}, WithAccessToken("tok"))

	err := c.TransferItem(context.Background(), DestinyItemTransferRequest{
		ItemReferenceHash: 1,
		StackSize:         1,
		TransferToVault:   true,
		ItemId:            6917529,
		CharacterId:       2,
		MembershipType:    3,
	})
	require.NoError(t, err)
}

func TestSystemEnabled(t *testing.T) {
	s := CoreSettingsConfiguration{Systems: map[string]CoreSystem{
		"Destiny2": {Enabled: true},
		"Groups":   {Enabled: false},
	}}
	assert.True(t, s.SystemEnabled("Destiny2"))
	assert.False(t, s.SystemEnabled("Groups"))
	assert.False(t, s.SystemEnabled("Missing"))
}
