package menu

import "context"

// Repository is the read side of menu storage.
type Repository interface {
	// FindByRestaurantID returns the menu for a restaurant, or found=false
	// when the restaurant has none.
	FindByRestaurantID(ctx context.Context, restaurantID string) (Menu, bool, error)
}
