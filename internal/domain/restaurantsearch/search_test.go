package restaurantsearch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/feastly/backend/pkg/errors"
)

func TestSearchMergesStrategiesInPriorityOrder(t *testing.T) {
	exact := restaurantAt("10", "Udupi Grand", 2, "00:00", "23:59")
	partial := restaurantAt("11", "Udupi Palace", 2, "00:00", "23:59")
	byAttr := restaurantAt("12", "Shanti Sagar", 2, "00:00", "23:59")
	byItem := restaurantAt("13", "Meghana Foods", 2, "00:00", "23:59")
	byItemAttr := restaurantAt("14", "Empire", 2, "00:00", "23:59")

	catalog := &stubCatalog{
		exact:     []Restaurant{exact},
		partial:   []Restaurant{partial},
		attrs:     []Restaurant{byAttr},
		itemName:  []Restaurant{byItem},
		itemAttrs: []Restaurant{byItemAttr},
	}
	svc := newTestService(catalog, newStubStore())

	got, err := svc.Search(context.Background(), SearchRequest{
		Coordinate: testOrigin,
		Query:      "udupi",
		Now:        TimeOfDay{Hour: 12},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"10", "11", "12", "13", "14"}, restaurantIDs(got))
}

func TestSearchDeduplicatesAcrossStrategies(t *testing.T) {
	r := restaurantAt("10", "Udupi Grand", 2, "00:00", "23:59")
	other := restaurantAt("11", "Shanti Sagar", 2, "00:00", "23:59")

	catalog := &stubCatalog{
		exact:     []Restaurant{r},
		partial:   []Restaurant{r},
		attrs:     []Restaurant{r, other},
		itemName:  []Restaurant{r},
		itemAttrs: []Restaurant{r},
	}
	svc := newTestService(catalog, newStubStore())

	got, err := svc.Search(context.Background(), SearchRequest{
		Coordinate: testOrigin,
		Query:      "udupi",
		Now:        TimeOfDay{Hour: 12},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"10", "11"}, restaurantIDs(got))
}

func TestSearchFiltersMatchesByRadiusAndHours(t *testing.T) {
	near := restaurantAt("10", "Udupi Grand", 2, "00:00", "23:59")
	far := restaurantAt("11", "Udupi Far", 6, "00:00", "23:59")
	closed := restaurantAt("12", "Udupi Closed", 2, "18:00", "23:00")

	catalog := &stubCatalog{exact: []Restaurant{near, far, closed}}
	svc := newTestService(catalog, newStubStore())

	got, err := svc.Search(context.Background(), SearchRequest{
		Coordinate: testOrigin,
		Query:      "udupi",
		Now:        TimeOfDay{Hour: 12},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"10"}, restaurantIDs(got))
}

func TestSearchFailsWhenAnyStrategyFails(t *testing.T) {
	catalog := &stubCatalog{
		exact:       []Restaurant{restaurantAt("10", "Udupi Grand", 2, "00:00", "23:59")},
		itemNameErr: errors.New("cursor timeout"),
	}
	svc := newTestService(catalog, newStubStore())

	_, err := svc.Search(context.Background(), SearchRequest{
		Coordinate: testOrigin,
		Query:      "udupi",
		Now:        TimeOfDay{Hour: 12},
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "search_error"))
}

func TestSearchRunsAllStrategies(t *testing.T) {
	catalog := &stubCatalog{}
	svc := newTestService(catalog, newStubStore())

	_, err := svc.Search(context.Background(), SearchRequest{
		Coordinate: testOrigin,
		Query:      "udupi",
		Now:        TimeOfDay{Hour: 12},
	})
	require.NoError(t, err)
	for _, op := range []string{"nameExact", "namePartial", "attributes", "itemName", "itemAttributes"} {
		require.Equal(t, 1, catalog.calls[op], "strategy %s", op)
	}
}

func TestSearchBlankQueryFallsBackToNearby(t *testing.T) {
	r1 := restaurantAt("1", "A2B", 2, "00:00", "23:59")
	catalog := &stubCatalog{all: []Restaurant{r1}}
	svc := newTestService(catalog, newStubStore())

	got, err := svc.Search(context.Background(), SearchRequest{
		Coordinate: testOrigin,
		Query:      "   ",
		Now:        TimeOfDay{Hour: 3},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, restaurantIDs(got))
	require.Equal(t, 1, catalog.listAllCalls)
	require.Zero(t, catalog.calls["nameExact"])
}

func TestSearchAppliesPeakRadiusToMatches(t *testing.T) {
	inside := restaurantAt("10", "Udupi Grand", 2.5, "00:00", "23:59")
	outside := restaurantAt("11", "Udupi Palace", 3.5, "00:00", "23:59")
	catalog := &stubCatalog{exact: []Restaurant{inside, outside}}
	svc := newTestService(catalog, newStubStore())

	got, err := svc.Search(context.Background(), SearchRequest{
		Coordinate: testOrigin,
		Query:      "udupi",
		Now:        TimeOfDay{Hour: 19, Minute: 30},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"10"}, restaurantIDs(got))
}
