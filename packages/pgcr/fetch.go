package pgcr

import (
	"context"
	"errors"

	"tower/packages/bungie"

	"github.com/rs/zerolog/log"
)

// PGCRResult classifies the outcome of a single report lookup so that callers
// such as queue workers can decide what to do without unpacking errors.
type PGCRResult int

const (
	Success                PGCRResult = 1
	NotFound               PGCRResult = 3
	SystemDisabled         PGCRResult = 4
	InsufficientPrivileges PGCRResult = 5
	BadFormat              PGCRResult = 6
	InternalError          PGCRResult = 7
)

func (r PGCRResult) String() string {
	switch r {
	case Success:
		return "Success"
	case NotFound:
		return "NotFound"
	case SystemDisabled:
		return "SystemDisabled"
	case InsufficientPrivileges:
		return "InsufficientPrivileges"
	case BadFormat:
		return "BadFormat"
	case InternalError:
		return "InternalError"
	}
	return "Unknown"
}

// FetchAndSummarize looks up one report and summarizes it. The returned
// error, when present, carries the detail behind a non-Success result.
func (s *Scraper) FetchAndSummarize(ctx context.Context, instanceId int64) (PGCRResult, *Summary, error) {
	report, err := s.GetPGCR(ctx, instanceId)
	if err != nil {
		result := classify(err)
		log.Debug().Int64("instanceId", instanceId).Stringer("result", result).Err(err).Msg("pgcr lookup failed")
		return result, nil, err
	}

	summary, err := Summarize(report)
	if err != nil {
		log.Warn().Int64("instanceId", instanceId).Err(err).Msg("malformed pgcr")
		return BadFormat, nil, err
	}
	return Success, summary, nil
}

func classify(err error) PGCRResult {
	var be *bungie.BungieError
	switch {
	case errors.As(err, &be):
		switch be.ErrorCode {
		case bungie.ErrorCodePGCRNotFound, bungie.ErrorCodeBabelTimeout:
			return NotFound
		case bungie.ErrorCodeSystemDisabled:
			return SystemDisabled
		case bungie.ErrorCodeInsufficientPrivileges:
			return InsufficientPrivileges
		}
		return BadFormat
	case bungie.IsDeserialization(err):
		return BadFormat
	}
	return InternalError
}
