package catalogrepo

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/feastly/backend/internal/domain/menu"
	"github.com/feastly/backend/internal/domain/restaurantsearch"
)

// MongoRepository implements the search catalog and the menu repository on
// top of the restaurants/menus/items collections.
type MongoRepository struct {
	restaurants *mongo.Collection
	menus       *mongo.Collection
	items       *mongo.Collection
}

// NewMongoRepository creates a Mongo-backed catalog.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		restaurants: db.Collection("restaurants"),
		menus:       db.Collection("menus"),
		items:       db.Collection("items"),
	}
}

func (r *MongoRepository) ListAll(ctx context.Context) ([]restaurantsearch.Restaurant, error) {
	return r.findRestaurants(ctx, bson.M{})
}

func (r *MongoRepository) SearchByNameExact(ctx context.Context, query string) ([]restaurantsearch.Restaurant, error) {
	filter := bson.M{"name": bson.M{"$regex": "^" + regexp.QuoteMeta(query) + "$", "$options": "i"}}
	return r.findRestaurants(ctx, filter)
}

func (r *MongoRepository) SearchByNamePartial(ctx context.Context, query string) ([]restaurantsearch.Restaurant, error) {
	filter := bson.M{"name": bson.M{"$regex": tokenAlternation(query), "$options": "i"}}
	return r.findRestaurants(ctx, filter)
}

func (r *MongoRepository) SearchByAttributes(ctx context.Context, query string) ([]restaurantsearch.Restaurant, error) {
	return r.findRestaurants(ctx, attributeFilter(query))
}

func (r *MongoRepository) SearchByItemName(ctx context.Context, query string) ([]restaurantsearch.Restaurant, error) {
	exact := bson.M{"name": bson.M{"$regex": "^" + regexp.QuoteMeta(query) + "$", "$options": "i"}}
	partial := bson.M{"name": bson.M{"$regex": tokenAlternation(query), "$options": "i"}}
	itemIDs, err := r.findItemIDs(ctx, bson.M{"$or": []bson.M{exact, partial}})
	if err != nil {
		return nil, err
	}
	return r.restaurantsServingItems(ctx, itemIDs)
}

func (r *MongoRepository) SearchByItemAttributes(ctx context.Context, query string) ([]restaurantsearch.Restaurant, error) {
	itemIDs, err := r.findItemIDs(ctx, attributeFilter(query))
	if err != nil {
		return nil, err
	}
	return r.restaurantsServingItems(ctx, itemIDs)
}

// FindByRestaurantID implements menu.Repository.
func (r *MongoRepository) FindByRestaurantID(ctx context.Context, restaurantID string) (menu.Menu, bool, error) {
	var doc MenuDocument
	err := r.menus.FindOne(ctx, bson.M{"restaurantId": restaurantID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return menu.Menu{}, false, nil
		}
		return menu.Menu{}, false, err
	}
	return mapMenuDocument(doc), true, nil
}

func (r *MongoRepository) findRestaurants(ctx context.Context, filter bson.M) ([]restaurantsearch.Restaurant, error) {
	cursor, err := r.restaurants.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]restaurantsearch.Restaurant, 0)
	for cursor.Next(ctx) {
		var doc RestaurantDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, mapRestaurantDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepository) findItemIDs(ctx context.Context, filter bson.M) ([]string, error) {
	cursor, err := r.items.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := make([]string, 0)
	for cursor.Next(ctx) {
		var doc ItemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ItemID)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// restaurantsServingItems resolves item ids through the menus collection to
// the restaurants serving them.
func (r *MongoRepository) restaurantsServingItems(ctx context.Context, itemIDs []string) ([]restaurantsearch.Restaurant, error) {
	if len(itemIDs) == 0 {
		return []restaurantsearch.Restaurant{}, nil
	}
	cursor, err := r.menus.Find(ctx, bson.M{"items.itemId": bson.M{"$in": itemIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	restaurantIDs := make([]string, 0)
	for cursor.Next(ctx) {
		var doc MenuDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		restaurantIDs = append(restaurantIDs, doc.RestaurantID)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if len(restaurantIDs) == 0 {
		return []restaurantsearch.Restaurant{}, nil
	}
	return r.findRestaurants(ctx, bson.M{"restaurantId": bson.M{"$in": restaurantIDs}})
}

// attributeFilter requires every query token to match the attributes array,
// case-insensitively and in any order.
func attributeFilter(query string) bson.M {
	tokens := strings.Fields(query)
	clauses := make([]bson.M, 0, len(tokens))
	for _, tok := range tokens {
		clauses = append(clauses, bson.M{"attributes": bson.M{"$regex": regexp.QuoteMeta(tok), "$options": "i"}})
	}
	if len(clauses) == 0 {
		return bson.M{"attributes": bson.M{"$in": []string{}}}
	}
	return bson.M{"$and": clauses}
}

func tokenAlternation(query string) string {
	tokens := strings.Fields(query)
	quoted := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		quoted = append(quoted, regexp.QuoteMeta(tok))
	}
	if len(quoted) == 0 {
		return regexp.QuoteMeta(query)
	}
	return strings.Join(quoted, "|")
}

var (
	_ restaurantsearch.Catalog = (*MongoRepository)(nil)
	_ menu.Repository          = (*MongoRepository)(nil)
)
