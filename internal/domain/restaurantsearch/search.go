package restaurantsearch

import (
	"context"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/feastly/backend/pkg/errors"
)

// subSearch is one of the independent match strategies composing a search.
type subSearch func(ctx context.Context, query string) ([]Restaurant, error)

// aggregateSearch fans the query out to the four sub-searches concurrently,
// waits for all of them, and merges the per-strategy result lists in fixed
// priority order: exact name, partial name, attribute, item name, item
// attribute. A restaurant claimed by a higher-priority strategy is skipped
// in the later ones. Any sub-search error or timeout fails the whole call;
// there are no partial results.
func (s *service) aggregateSearch(ctx context.Context, user Coordinate, now TimeOfDay, radiusKm float64, query string) ([]Restaurant, error) {
	subs := []subSearch{
		s.searchByName,
		s.catalog.SearchByAttributes,
		s.catalog.SearchByItemName,
		s.catalog.SearchByItemAttributes,
	}

	results := make([][]Restaurant, len(subs))
	g, gctx := errgroup.WithContext(ctx)
	for i, sub := range subs {
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, s.cfg.SubSearchTimeout)
			defer cancel()
			out, err := sub(callCtx, query)
			if err != nil {
				return err
			}
			results[i] = s.keepCloseByAndOpen(out, now, user, radiusKm)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap("search_error", "search aggregation failed", err)
	}

	return mergeRanked(results), nil
}

// searchByName runs the exact lookup ahead of the partial one so that exact
// name matches rank first inside the name slot.
func (s *service) searchByName(ctx context.Context, query string) ([]Restaurant, error) {
	exact, err := s.catalog.SearchByNameExact(ctx, query)
	if err != nil {
		return nil, err
	}
	partial, err := s.catalog.SearchByNamePartial(ctx, query)
	if err != nil {
		return nil, err
	}
	return append(exact, partial...), nil
}

func (s *service) keepCloseByAndOpen(candidates []Restaurant, now TimeOfDay, user Coordinate, radiusKm float64) []Restaurant {
	out := make([]Restaurant, 0, len(candidates))
	for _, r := range candidates {
		if closeByAndOpen(r, now, user, radiusKm) {
			out = append(out, r)
		}
	}
	return out
}

// mergeRanked flattens the per-strategy lists preserving slot order, with a
// running seen-id set so no restaurant id appears twice.
func mergeRanked(ranked [][]Restaurant) []Restaurant {
	seen := make(map[string]struct{})
	merged := make([]Restaurant, 0)
	for _, list := range ranked {
		for _, r := range list {
			if _, ok := seen[r.RestaurantID]; ok {
				continue
			}
			seen[r.RestaurantID] = struct{}{}
			merged = append(merged, r)
		}
	}
	return merged
}
