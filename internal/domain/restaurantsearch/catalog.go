package restaurantsearch

import "context"

// Catalog is the read side of the restaurant/menu data owned by the storage
// subsystem. Every search operation returns raw candidates: no distance or
// opening-hours filtering happens behind this interface.
type Catalog interface {
	// ListAll returns every restaurant in the catalog.
	ListAll(ctx context.Context) ([]Restaurant, error)
	// SearchByNameExact matches the full query against restaurant names,
	// ignoring case.
	SearchByNameExact(ctx context.Context, query string) ([]Restaurant, error)
	// SearchByNamePartial matches restaurants whose name contains the query
	// or any of its tokens, ignoring case.
	SearchByNamePartial(ctx context.Context, query string) ([]Restaurant, error)
	// SearchByAttributes matches restaurants whose attribute tags cover
	// every query token, ignoring case and order.
	SearchByAttributes(ctx context.Context, query string) ([]Restaurant, error)
	// SearchByItemName matches restaurants serving an item whose name
	// matches the query exactly or any token partially.
	SearchByItemName(ctx context.Context, query string) ([]Restaurant, error)
	// SearchByItemAttributes matches restaurants serving an item whose
	// attribute tags match the query tokens.
	SearchByItemAttributes(ctx context.Context, query string) ([]Restaurant, error)
}
