package pgcr

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"tower/packages/bungie"
	"tower/packages/destiny"

	"github.com/rs/zerolog/log"
)

// maxPages bounds how far a history walk goes for a single character.
const maxPages = 1000

// Scraper fetches post game carnage reports and activity history. It owns a
// clone of the client it was built from so its debug flag can be toggled
// independently.
type Scraper struct {
	client *bungie.Client
}

func NewScraper(client *bungie.Client) *Scraper {
	return &Scraper{client: client.Clone()}
}

func (s *Scraper) Client() *bungie.Client {
	return s.client
}

func (s *Scraper) GetPGCR(ctx context.Context, instanceId int64) (*bungie.DestinyPostGameCarnageReport, error) {
	return s.client.GetPGCR(ctx, instanceId)
}

// GetPGCRRaw returns the report exactly as the platform sent it, envelope
// included.
func (s *Scraper) GetPGCRRaw(ctx context.Context, instanceId int64) (string, error) {
	return s.client.Get(ctx, s.client.PostGameCarnageReportURL(instanceId))
}

// GetActivityHistory walks every character of a membership and returns the
// activities played in mode. Pages of one character are fetched by up to
// concurrentPages goroutines; the result is unordered.
func (s *Scraper) GetActivityHistory(ctx context.Context, membershipType int, membershipId int64, mode destiny.ActivityMode, concurrentPages int) ([]bungie.DestinyHistoricalStatsPeriodGroup, error) {
	profile, err := s.client.GetProfile(ctx, membershipType, membershipId, bungie.ComponentProfiles)
	if err != nil {
		return nil, err
	}
	if profile.Profile.Data == nil {
		return nil, errors.New("profile component is nil")
	}

	var out []bungie.DestinyHistoricalStatsPeriodGroup
	for _, id := range profile.Profile.Data.CharacterIds {
		characterId, err := parseId(id)
		if err != nil {
			return nil, err
		}
		activities, err := s.CharacterHistory(ctx, membershipType, membershipId, characterId, mode, concurrentPages)
		if err != nil {
			return nil, err
		}
		out = append(out, activities...)
	}
	return out, nil
}

// CharacterHistory fetches pages of one character until the first empty
// page. Page 0 is fetched alone first so that characters with a single page
// cost a single request.
func (s *Scraper) CharacterHistory(ctx context.Context, membershipType int, membershipId int64, characterId int64, mode destiny.ActivityMode, concurrentPages int) ([]bungie.DestinyHistoricalStatsPeriodGroup, error) {
	if concurrentPages < 1 {
		concurrentPages = 1
	}

	first, err := s.client.GetActivityHistoryPage(ctx, membershipType, membershipId, characterId, mode.Code(), 0)
	if err != nil {
		return nil, err
	}
	if len(first) < bungie.ActivityHistoryPageSize {
		return first, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		results  = first
		firstErr error
		nextPage atomic.Int64
		done     atomic.Bool
		wg       sync.WaitGroup
	)
	nextPage.Store(1)

	for j := 0; j < concurrentPages; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !done.Load() {
				page := int(nextPage.Add(1) - 1)
				if page >= maxPages {
					return
				}
				activities, err := s.client.GetActivityHistoryPage(ctx, membershipType, membershipId, characterId, mode.Code(), page)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					done.Store(true)
					cancel()
					return
				}
				if len(activities) == 0 {
					done.Store(true)
					return
				}
				mu.Lock()
				results = append(results, activities...)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		log.Warn().Int64("characterId", characterId).Err(firstErr).Msg("error fetching activity history page")
		return nil, firstErr
	}
	return results, nil
}
