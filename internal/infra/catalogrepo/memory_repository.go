package catalogrepo

import (
	"context"
	"strings"
	"sync"

	"github.com/feastly/backend/internal/domain/menu"
	"github.com/feastly/backend/internal/domain/restaurantsearch"
)

// MemoryRepository is an in-memory catalog for tests/dev. Matching follows
// the Mongo implementation: case-insensitive, whitespace-tokenized, with
// attribute searches requiring every token to hit.
type MemoryRepository struct {
	mu          sync.RWMutex
	restaurants []restaurantsearch.Restaurant
	menus       []menu.Menu
}

// NewMemoryRepository constructs an empty catalog.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Seed replaces the catalog content.
func (r *MemoryRepository) Seed(restaurants []restaurantsearch.Restaurant, menus []menu.Menu) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restaurants = append([]restaurantsearch.Restaurant{}, restaurants...)
	r.menus = append([]menu.Menu{}, menus...)
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]restaurantsearch.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]restaurantsearch.Restaurant{}, r.restaurants...), nil
}

func (r *MemoryRepository) SearchByNameExact(_ context.Context, query string) ([]restaurantsearch.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]restaurantsearch.Restaurant, 0)
	for _, rest := range r.restaurants {
		if strings.EqualFold(rest.Name, strings.TrimSpace(query)) {
			out = append(out, rest)
		}
	}
	return out, nil
}

func (r *MemoryRepository) SearchByNamePartial(_ context.Context, query string) ([]restaurantsearch.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tokens := tokenize(query)
	out := make([]restaurantsearch.Restaurant, 0)
	for _, rest := range r.restaurants {
		if anyTokenInString(rest.Name, tokens) {
			out = append(out, rest)
		}
	}
	return out, nil
}

func (r *MemoryRepository) SearchByAttributes(_ context.Context, query string) ([]restaurantsearch.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tokens := tokenize(query)
	out := make([]restaurantsearch.Restaurant, 0)
	for _, rest := range r.restaurants {
		if allTokensInTags(rest.Attributes, tokens) {
			out = append(out, rest)
		}
	}
	return out, nil
}

func (r *MemoryRepository) SearchByItemName(_ context.Context, query string) ([]restaurantsearch.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tokens := tokenize(query)
	return r.servingMatchedItems(func(it menu.Item) bool {
		return strings.EqualFold(it.Name, strings.TrimSpace(query)) || anyTokenInString(it.Name, tokens)
	}), nil
}

func (r *MemoryRepository) SearchByItemAttributes(_ context.Context, query string) ([]restaurantsearch.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tokens := tokenize(query)
	return r.servingMatchedItems(func(it menu.Item) bool {
		return allTokensInTags(it.Attributes, tokens)
	}), nil
}

// FindByRestaurantID implements menu.Repository.
func (r *MemoryRepository) FindByRestaurantID(_ context.Context, restaurantID string) (menu.Menu, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.menus {
		if m.RestaurantID == restaurantID {
			return m, true, nil
		}
	}
	return menu.Menu{}, false, nil
}

// servingMatchedItems walks the menus and returns the restaurants serving
// at least one item accepted by match. Callers hold the read lock.
func (r *MemoryRepository) servingMatchedItems(match func(menu.Item) bool) []restaurantsearch.Restaurant {
	ids := make(map[string]struct{})
	for _, m := range r.menus {
		for _, it := range m.Items {
			if match(it) {
				ids[m.RestaurantID] = struct{}{}
				break
			}
		}
	}
	out := make([]restaurantsearch.Restaurant, 0, len(ids))
	for _, rest := range r.restaurants {
		if _, ok := ids[rest.RestaurantID]; ok {
			out = append(out, rest)
		}
	}
	return out
}

func tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

func anyTokenInString(s string, tokens []string) bool {
	lower := strings.ToLower(s)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// allTokensInTags reports whether every token matches at least one tag.
func allTokensInTags(tags []string, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		found := false
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), tok) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var (
	_ restaurantsearch.Catalog = (*MemoryRepository)(nil)
	_ menu.Repository          = (*MemoryRepository)(nil)
)
