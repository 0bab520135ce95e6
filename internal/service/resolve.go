package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/azroofops/backend/internal/address"
	"github.com/azroofops/backend/internal/db"
	"github.com/azroofops/backend/internal/models"
)

// ResolveService matches job addresses against the stored canonical
// address index to recover prior external identifiers.
type ResolveService struct {
	Store     *db.Store
	Logger    zerolog.Logger
	Threshold float64
}

func (s *ResolveService) threshold() float64 {
	if s.Threshold > 0 {
		return s.Threshold
	}
	return address.DefaultThreshold
}

// Resolve looks up one address. The index is loaded as an immutable
// snapshot per call; a missing or empty index is a plain no-match.
func (s *ResolveService) Resolve(ctx context.Context, target string) (models.MatchResult, error) {
	index, err := s.Store.LoadAddressIndex(ctx)
	if err != nil {
		return models.MatchResult{}, err
	}
	result := address.FindBestMatch(target, index, s.threshold())
	s.Logger.Debug().
		Str("address", target).
		Float64("score", result.Score).
		Bool("found", result.Found).
		Msg("address resolved")
	return result, nil
}

// RebuildIndex expands raw canonical addresses into their variation map
// and stores it. First writer wins on variation collisions.
func (s *ResolveService) RebuildIndex(ctx context.Context, raw map[string]string) (int64, int, error) {
	expanded := address.BuildVariationIndex(raw)
	inserted, err := s.Store.ReplaceAddressIndex(ctx, expanded)
	if err != nil {
		return 0, 0, err
	}
	return inserted, len(expanded), nil
}
