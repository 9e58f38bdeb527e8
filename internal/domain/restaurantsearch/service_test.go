package restaurantsearch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testOrigin = Coordinate{Latitude: 20, Longitude: 30}

// restaurantAt places a restaurant north of testOrigin; one degree of
// latitude is ~111.19 km.
func restaurantAt(id, name string, distanceKm float64, opensAt, closesAt string) Restaurant {
	return Restaurant{
		RestaurantID: id,
		Name:         name,
		City:         "Hsr Layout",
		ImageURL:     "https://img.example.com/" + id,
		Latitude:     testOrigin.Latitude + distanceKm/111.195,
		Longitude:    testOrigin.Longitude,
		OpensAt:      opensAt,
		ClosesAt:     closesAt,
		Attributes:   []string{"South Indian"},
	}
}

type stubCatalog struct {
	mu           sync.Mutex
	all          []Restaurant
	listAllCalls int

	exact     []Restaurant
	partial   []Restaurant
	attrs     []Restaurant
	itemName  []Restaurant
	itemAttrs []Restaurant

	exactErr     error
	partialErr   error
	attrsErr     error
	itemNameErr  error
	itemAttrsErr error

	calls map[string]int
}

func (c *stubCatalog) record(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[op]++
}

func (c *stubCatalog) ListAll(context.Context) ([]Restaurant, error) {
	c.mu.Lock()
	c.listAllCalls++
	c.mu.Unlock()
	return c.all, nil
}

func (c *stubCatalog) SearchByNameExact(_ context.Context, _ string) ([]Restaurant, error) {
	c.record("nameExact")
	return c.exact, c.exactErr
}

func (c *stubCatalog) SearchByNamePartial(_ context.Context, _ string) ([]Restaurant, error) {
	c.record("namePartial")
	return c.partial, c.partialErr
}

func (c *stubCatalog) SearchByAttributes(_ context.Context, _ string) ([]Restaurant, error) {
	c.record("attributes")
	return c.attrs, c.attrsErr
}

func (c *stubCatalog) SearchByItemName(_ context.Context, _ string) ([]Restaurant, error) {
	c.record("itemName")
	return c.itemName, c.itemNameErr
}

func (c *stubCatalog) SearchByItemAttributes(_ context.Context, _ string) ([]Restaurant, error) {
	c.record("itemAttributes")
	return c.itemAttrs, c.itemAttrsErr
}

type stubStore struct {
	mu          sync.Mutex
	entries     map[string][]byte
	unavailable bool
	getErr      error
	setErr      error
	setCalls    int
}

func newStubStore() *stubStore {
	return &stubStore{entries: make(map[string][]byte)}
}

func (s *stubStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.entries[key]
	return payload, ok, nil
}

func (s *stubStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.entries[key] = value
	return nil
}

func (s *stubStore) Available(context.Context) bool {
	return !s.unavailable
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(catalog Catalog, store Store) Service {
	return NewService(Config{}, catalog, store, newTestLogger())
}

func restaurantIDs(list []Restaurant) []string {
	ids := make([]string, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.RestaurantID)
	}
	return ids
}

func TestServingRadiusPolicy(t *testing.T) {
	s := &service{cfg: Config{}.withDefaults()}

	tests := []struct {
		at     TimeOfDay
		radius float64
	}{
		{TimeOfDay{Hour: 3}, 5},
		{TimeOfDay{Hour: 8}, 3},
		{TimeOfDay{Hour: 8, Minute: 30}, 3},
		{TimeOfDay{Hour: 10}, 3},
		{TimeOfDay{Hour: 10, Minute: 1}, 5},
		{TimeOfDay{Hour: 13, Minute: 30}, 3},
		{TimeOfDay{Hour: 14, Minute: 1}, 5},
		{TimeOfDay{Hour: 19}, 3},
		{TimeOfDay{Hour: 21}, 3},
		{TimeOfDay{Hour: 21, Minute: 1}, 5},
		{TimeOfDay{Hour: 23, Minute: 59}, 5},
	}

	for _, tc := range tests {
		if got := s.servingRadiusKm(tc.at); got != tc.radius {
			t.Fatalf("servingRadiusKm(%s) = %v, want %v", tc.at, got, tc.radius)
		}
	}
}

func TestFindNearbyOffPeakRadius(t *testing.T) {
	r1 := restaurantAt("1", "A2B", 2, "00:00", "23:59")
	r2 := restaurantAt("2", "Dominos", 6, "", "")
	catalog := &stubCatalog{all: []Restaurant{r1, r2}}
	svc := newTestService(catalog, newStubStore())

	got, err := svc.FindNearby(context.Background(), NearbyRequest{
		Coordinate: testOrigin,
		Now:        TimeOfDay{Hour: 3},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, restaurantIDs(got))
}

func TestFindNearbyPeakRadiusTightens(t *testing.T) {
	r1 := restaurantAt("1", "A2B", 2.5, "00:00", "23:59")
	r3 := restaurantAt("3", "Faasos", 3.5, "00:00", "23:59")
	catalog := &stubCatalog{all: []Restaurant{r1, r3}}
	svc := newTestService(catalog, newStubStore())

	got, err := svc.FindNearby(context.Background(), NearbyRequest{
		Coordinate: testOrigin,
		Now:        TimeOfDay{Hour: 8, Minute: 30},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, restaurantIDs(got))
}

func TestFindNearbyExcludesClosed(t *testing.T) {
	open := restaurantAt("1", "A2B", 2, "06:00", "23:00")
	closed := restaurantAt("2", "Night Owl", 2, "18:00", "23:00")
	catalog := &stubCatalog{all: []Restaurant{open, closed}}
	svc := newTestService(catalog, newStubStore())

	got, err := svc.FindNearby(context.Background(), NearbyRequest{
		Coordinate: testOrigin,
		Now:        TimeOfDay{Hour: 12},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, restaurantIDs(got))
}

func TestFindNearbyServesRepeatCallsFromCache(t *testing.T) {
	r1 := restaurantAt("1", "A2B", 2, "00:00", "23:59")
	catalog := &stubCatalog{all: []Restaurant{r1}}
	store := newStubStore()
	svc := newTestService(catalog, store)
	req := NearbyRequest{Coordinate: testOrigin, Now: TimeOfDay{Hour: 3}}

	first, err := svc.FindNearby(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.FindNearby(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, restaurantIDs(first), restaurantIDs(second))
	require.Equal(t, 1, catalog.listAllCalls)
	require.Equal(t, 1, store.setCalls)
}

func TestFindNearbyRevalidatesHoursOnCacheHit(t *testing.T) {
	// Open until 04:00: cached at 03:00, queried again at 05:00. The cached
	// candidate set must be re-filtered against the later clock.
	r1 := restaurantAt("1", "Early Bird", 2, "00:30", "04:00")
	catalog := &stubCatalog{all: []Restaurant{r1}}
	store := newStubStore()
	svc := newTestService(catalog, store)

	before, err := svc.FindNearby(context.Background(), NearbyRequest{Coordinate: testOrigin, Now: TimeOfDay{Hour: 3}})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, restaurantIDs(before))

	after, err := svc.FindNearby(context.Background(), NearbyRequest{Coordinate: testOrigin, Now: TimeOfDay{Hour: 5}})
	require.NoError(t, err)
	require.Empty(t, after)
	require.Equal(t, 1, catalog.listAllCalls, "hit must not trigger a second scan")
}

func TestFindNearbyBypassesUnavailableStore(t *testing.T) {
	r1 := restaurantAt("1", "A2B", 2, "00:00", "23:59")
	catalog := &stubCatalog{all: []Restaurant{r1}}
	store := newStubStore()
	store.unavailable = true
	svc := newTestService(catalog, store)

	got, err := svc.FindNearby(context.Background(), NearbyRequest{Coordinate: testOrigin, Now: TimeOfDay{Hour: 3}})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, restaurantIDs(got))
	require.Zero(t, store.setCalls, "bypass must not write to the cache")
}

func TestFindNearbyToleratesCacheWriteFailure(t *testing.T) {
	r1 := restaurantAt("1", "A2B", 2, "00:00", "23:59")
	catalog := &stubCatalog{all: []Restaurant{r1}}
	store := newStubStore()
	store.setErr = errors.New("connection reset")
	svc := newTestService(catalog, store)

	got, err := svc.FindNearby(context.Background(), NearbyRequest{Coordinate: testOrigin, Now: TimeOfDay{Hour: 3}})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, restaurantIDs(got))
}

func TestFindNearbyFallsBackOnCacheReadError(t *testing.T) {
	r1 := restaurantAt("1", "A2B", 2, "00:00", "23:59")
	catalog := &stubCatalog{all: []Restaurant{r1}}
	store := newStubStore()
	store.getErr = errors.New("timeout")
	svc := newTestService(catalog, store)

	got, err := svc.FindNearby(context.Background(), NearbyRequest{Coordinate: testOrigin, Now: TimeOfDay{Hour: 3}})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, restaurantIDs(got))
}
