package clan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"tower/packages/bungie"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *bungie.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return bungie.New("key", bungie.WithBaseURL(server.URL), bungie.WithLogger(zerolog.New(io.Discard)))
}

func TestParseDetails(t *testing.T) {
	group := &bungie.GroupV2{
		GroupId: 42,
		Name:    " ㅤFish &amp; Chipsㅤ ",
		Motto:   "we &lt;3 raids",
		ClanInfo: bungie.GroupV2ClanInfoAndInvestment{
			ClanCallsign:   "F&amp;C",
			ClanBannerData: bungie.ClanBanner{DecalId: 7, GonfalonId: 9},
		},
	}

	details, err := ParseDetails(group)
	require.NoError(t, err)
	assert.Equal(t, int64(42), details.GroupId)
	assert.Equal(t, "Fish & Chips", details.Name)
	assert.Equal(t, "F&C", details.CallSign)
	assert.Equal(t, "we <3 raids", details.Motto)

	var banner bungie.ClanBanner
	require.NoError(t, json.Unmarshal(details.BannerData, &banner))
	assert.Equal(t, uint32(7), banner.DecalId)
	assert.Equal(t, uint32(9), banner.GonfalonId)
}

func TestMembers_PagesUntilNoMore(t *testing.T) {
	var calls atomic.Int32
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		page := r.URL.Query().Get("currentpage")
		hasMore := page != "3"
		fmt.Fprintf(w, `{"Response":{"hasMore":%t,"results":[{"groupId":"42","destinyUserInfo":{"membershipId":"%s","membershipType":3}}]},"ErrorCode":1,"ErrorStatus":"Success"}`, hasMore, page)
	})

	members, err := Members(context.Background(), client, 42)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, members, 3)
	assert.Equal(t, int64(1), members[0].DestinyUserInfo.MembershipId)
	assert.Equal(t, int64(3), members[2].DestinyUserInfo.MembershipId)
}

func TestGetByID_RejectsNonClanGroups(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":{"detail":{"groupId":"5","groupType":0,"name":"bnet group"}},"ErrorCode":1,"ErrorStatus":"Success"}`))
	})

	_, err := GetByID(context.Background(), client, 5)
	assert.ErrorIs(t, err, ErrNotAClan)
}

func TestGetByName(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Platform/GroupV2/Name/Fish Chips/1/", r.URL.Path)
		w.Write([]byte(`{"Response":{"detail":{"groupId":"42","groupType":1,"name":"Fish Chips","memberCount":12}},"ErrorCode":1,"ErrorStatus":"Success"}`))
	})

	group, err := GetByName(context.Background(), client, "Fish Chips")
	require.NoError(t, err)
	assert.Equal(t, int64(42), group.Detail.GroupId)
	assert.Equal(t, 12, group.Detail.MemberCount)
}

func TestGetByID_ClanNotFound(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ErrorCode":622,"ErrorStatus":"GroupNotFound","Message":"not found"}`))
	})

	_, err := GetByID(context.Background(), client, 5)
	assert.Equal(t, bungie.ErrorCodeClanNotFound, bungie.ErrorCode(err))
}
