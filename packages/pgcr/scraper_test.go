package pgcr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"tower/packages/bungie"
	"tower/packages/destiny"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScraper(t *testing.T, handler http.HandlerFunc) *Scraper {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := bungie.New("key",
		bungie.WithBaseURL(server.URL),
		bungie.WithStatsURL(server.URL),
		bungie.WithLogger(zerolog.New(io.Discard)),
	)
	return NewScraper(client)
}

func writeEnvelope(w http.ResponseWriter, response any) {
	json.NewEncoder(w).Encode(bungie.Envelope[any]{
		Response:    response,
		ErrorCode:   bungie.ErrorCodeSuccess,
		ErrorStatus: "Success",
		Message:     "Ok",
	})
}

func activities(page, n int) []bungie.DestinyHistoricalStatsPeriodGroup {
	out := make([]bungie.DestinyHistoricalStatsPeriodGroup, n)
	for i := range out {
		out[i].ActivityDetails.InstanceId = int64(page*1000 + i)
		out[i].ActivityDetails.Mode = int(destiny.ActivityModeRaid)
	}
	return out
}

func historyHandler(t *testing.T, pageSizes map[int]int, failPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/Profile/7/"):
			writeEnvelope(w, map[string]any{
				"profile": map[string]any{
					"data": map[string]any{
						"userInfo":     map[string]any{"membershipId": "7", "membershipType": 3},
						"characterIds": []string{"70"},
					},
				},
			})
		case strings.Contains(r.URL.Path, "/Character/70/Stats/Activities/"):
			assert.Equal(t, "4", r.URL.Query().Get("mode"))
			assert.Equal(t, "250", r.URL.Query().Get("count"))
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			if page == failPage {
				w.Write([]byte(`{"ErrorCode":5,"ErrorStatus":"SystemDisabled","Message":"down"}`))
				return
			}
			writeEnvelope(w, bungie.DestinyActivityHistoryResults{Activities: activities(page, pageSizes[page])})
		default:
			t.Errorf("unexpected request %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestGetActivityHistory_WalksAllPages(t *testing.T) {
	sizes := map[int]int{0: 250, 1: 250, 2: 250, 3: 10}
	s := newScraper(t, historyHandler(t, sizes, -1))

	got, err := s.GetActivityHistory(context.Background(), 3, 7, destiny.ActivityModeRaid, 3)
	require.NoError(t, err)
	assert.Len(t, got, 760)

	seen := map[int64]bool{}
	for _, a := range got {
		assert.False(t, seen[a.ActivityDetails.InstanceId], "duplicate %d", a.ActivityDetails.InstanceId)
		seen[a.ActivityDetails.InstanceId] = true
	}
}

func TestGetActivityHistory_SinglePage(t *testing.T) {
	var requests atomic.Int32
	handler := historyHandler(t, map[int]int{0: 12}, -1)
	s := newScraper(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	})

	got, err := s.GetActivityHistory(context.Background(), 3, 7, destiny.ActivityModeRaid, 4)
	require.NoError(t, err)
	assert.Len(t, got, 12)
	assert.Equal(t, int32(2), requests.Load())
}

func TestGetActivityHistory_PageError(t *testing.T) {
	sizes := map[int]int{0: 250, 1: 250, 2: 250}
	s := newScraper(t, historyHandler(t, sizes, 2))

	_, err := s.GetActivityHistory(context.Background(), 3, 7, destiny.ActivityModeRaid, 2)
	require.Error(t, err)
	assert.Equal(t, bungie.ErrorCodeSystemDisabled, bungie.ErrorCode(err))
}

func TestGetPGCRRaw(t *testing.T) {
	body := `{"Response":{"period":"2024-03-01T20:00:00Z"},"ErrorCode":1,"ErrorStatus":"Success"}`
	s := newScraper(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Platform/Destiny2/Stats/PostGameCarnageReport/99/", r.URL.Path)
		w.Write([]byte(body))
	})

	text, err := s.GetPGCRRaw(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, body, text)
}

func TestFetchAndSummarize_Classification(t *testing.T) {
	cases := []struct {
		body string
		want PGCRResult
	}{
		{`{"ErrorCode":1653,"ErrorStatus":"DestinyPGCRNotFound"}`, NotFound},
		{`{"ErrorCode":5,"ErrorStatus":"SystemDisabled"}`, SystemDisabled},
		{`{"ErrorCode":12,"ErrorStatus":"InsufficientPrivileges"}`, InsufficientPrivileges},
		{`not json`, BadFormat},
		{`{"Response":{"period":"2024-03-01T20:00:00Z","entries":[]},"ErrorCode":1,"ErrorStatus":"Success"}`, BadFormat},
	}
	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			s := newScraper(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})
			result, summary, err := s.FetchAndSummarize(context.Background(), 1)
			assert.Equal(t, tc.want, result, fmt.Sprint(err))
			assert.Nil(t, summary)
			assert.Error(t, err)
		})
	}
}

func TestFetchAndSummarize_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	s := NewScraper(bungie.New("key", bungie.WithStatsURL(server.URL), bungie.WithLogger(zerolog.New(io.Discard))))

	result, _, err := s.FetchAndSummarize(context.Background(), 1)
	assert.Equal(t, InternalError, result)
	assert.True(t, bungie.IsTransport(err))
}
