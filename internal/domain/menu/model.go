package menu

// Item is a single orderable dish on a restaurant menu.
type Item struct {
	ItemID     string   `json:"itemId"`
	Name       string   `json:"name"`
	ImageURL   string   `json:"imageUrl"`
	Attributes []string `json:"attributes"`
	Price      int      `json:"price"`
}

// Menu is the full item list served by one restaurant.
type Menu struct {
	RestaurantID string `json:"restaurantId"`
	Items        []Item `json:"items"`
}
