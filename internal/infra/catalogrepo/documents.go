package catalogrepo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/feastly/backend/internal/domain/menu"
	"github.com/feastly/backend/internal/domain/restaurantsearch"
)

// RestaurantDocument mirrors the restaurants collection.
type RestaurantDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RestaurantID string             `bson:"restaurantId"`
	Name         string             `bson:"name"`
	City         string             `bson:"city"`
	ImageURL     string             `bson:"imageUrl"`
	Latitude     float64            `bson:"latitude"`
	Longitude    float64            `bson:"longitude"`
	OpensAt      string             `bson:"opensAt"`
	ClosesAt     string             `bson:"closesAt"`
	Attributes   []string           `bson:"attributes"`
}

// ItemDocument mirrors the items collection.
type ItemDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ItemID     string             `bson:"itemId"`
	Name       string             `bson:"name"`
	ImageURL   string             `bson:"imageUrl"`
	Attributes []string           `bson:"attributes"`
	Price      int                `bson:"price"`
}

// MenuDocument mirrors the menus collection; items are embedded.
type MenuDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RestaurantID string             `bson:"restaurantId"`
	Items        []ItemDocument     `bson:"items"`
}

func mapRestaurantDocument(doc RestaurantDocument) restaurantsearch.Restaurant {
	return restaurantsearch.Restaurant{
		RestaurantID: doc.RestaurantID,
		Name:         doc.Name,
		City:         doc.City,
		ImageURL:     doc.ImageURL,
		Latitude:     doc.Latitude,
		Longitude:    doc.Longitude,
		OpensAt:      doc.OpensAt,
		ClosesAt:     doc.ClosesAt,
		Attributes:   append([]string{}, doc.Attributes...),
	}
}

func mapMenuDocument(doc MenuDocument) menu.Menu {
	items := make([]menu.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, menu.Item{
			ItemID:     it.ItemID,
			Name:       it.Name,
			ImageURL:   it.ImageURL,
			Attributes: append([]string{}, it.Attributes...),
			Price:      it.Price,
		})
	}
	return menu.Menu{RestaurantID: doc.RestaurantID, Items: items}
}
