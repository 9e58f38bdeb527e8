package restaurantsearch

import (
	"context"
	"encoding/json"

	apperrors "github.com/feastly/backend/pkg/errors"
)

// findNearby serves the no-query path through the geohash-keyed proximity
// cache. Cached entries hold the distance-filtered candidate set for one
// (cell, radius) key; the opening-hours check is re-applied on every read
// against the caller's clock, so a hit can never resurface a restaurant
// that has closed since the entry was written.
func (s *service) findNearby(ctx context.Context, user Coordinate, now TimeOfDay, radiusKm float64) ([]Restaurant, error) {
	if !s.store.Available(ctx) {
		s.logger.Warn("cache backend unavailable, scanning catalog")
		return s.scanCatalog(ctx, user, now, radiusKm)
	}

	key := cellKey(user, s.cfg.GeohashPrecision, radiusKm)
	payload, hit, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed, scanning catalog", "key", key, "error", err)
		return s.scanCatalog(ctx, user, now, radiusKm)
	}
	if hit {
		var candidates []Restaurant
		if err := json.Unmarshal(payload, &candidates); err == nil {
			return openNow(candidates, now), nil
		}
		s.logger.Warn("cache entry undecodable, scanning catalog", "key", key)
	}

	candidates, err := s.listCandidates(ctx, user, radiusKm)
	if err != nil {
		return nil, err
	}
	s.populate(ctx, key, candidates)
	return openNow(candidates, now), nil
}

// scanCatalog is the fail-open path used when the cache backend cannot be
// reached: one full scan, filtered for radius and opening hours.
func (s *service) scanCatalog(ctx context.Context, user Coordinate, now TimeOfDay, radiusKm float64) ([]Restaurant, error) {
	candidates, err := s.listCandidates(ctx, user, radiusKm)
	if err != nil {
		return nil, err
	}
	return openNow(candidates, now), nil
}

func (s *service) listCandidates(ctx context.Context, user Coordinate, radiusKm float64) ([]Restaurant, error) {
	all, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap("search_error", "catalog scan failed", err)
	}
	return withinRadius(all, user, radiusKm), nil
}

// populate performs the single fire-and-forget cache write of a miss.
// Failures are logged and swallowed; the read result is already computed.
func (s *service) populate(ctx context.Context, key string, candidates []Restaurant) {
	payload, err := json.Marshal(candidates)
	if err != nil {
		s.logger.Warn("cache entry encode failed", "key", key, "error", err)
		return
	}
	if err := s.store.Set(ctx, key, payload, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}
}
