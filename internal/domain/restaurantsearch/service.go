package restaurantsearch

import (
	"context"
	"log/slog"
	"strings"
)

// Service exposes the restaurant search capabilities.
type Service interface {
	// FindNearby returns every open restaurant inside the serving radius of
	// the request coordinate, ordered as produced by the proximity cache.
	FindNearby(ctx context.Context, req NearbyRequest) ([]Restaurant, error)
	// Search returns open, nearby restaurants matching the free-text query,
	// ordered by match priority and deduplicated by restaurant id. An empty
	// query behaves exactly like FindNearby.
	Search(ctx context.Context, req SearchRequest) ([]Restaurant, error)
}

type service struct {
	cfg     Config
	catalog Catalog
	store   Store
	logger  *slog.Logger
}

// NewService wires up the search domain.
func NewService(cfg Config, catalog Catalog, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg.withDefaults(),
		catalog: catalog,
		store:   store,
		logger:  logger.With("component", "restaurantsearch.service"),
	}
}

func (s *service) FindNearby(ctx context.Context, req NearbyRequest) ([]Restaurant, error) {
	radius := s.servingRadiusKm(req.Now)
	return s.findNearby(ctx, req.Coordinate, req.Now, radius)
}

func (s *service) Search(ctx context.Context, req SearchRequest) ([]Restaurant, error) {
	query := strings.TrimSpace(req.Query)
	radius := s.servingRadiusKm(req.Now)
	if query == "" {
		return s.findNearby(ctx, req.Coordinate, req.Now, radius)
	}
	return s.aggregateSearch(ctx, req.Coordinate, req.Now, radius, query)
}

// servingRadiusKm applies the time-of-day policy: a tighter radius inside
// any configured peak window, the normal radius otherwise.
func (s *service) servingRadiusKm(now TimeOfDay) float64 {
	for _, w := range s.cfg.PeakWindows {
		if w.contains(now) {
			return s.cfg.PeakRadiusKm
		}
	}
	return s.cfg.NormalRadiusKm
}
