package cartRepo

import (
	"context"
	"fmt"
	"time"

	"utflykt/database"
	"utflykt/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// cartDocument is the persisted shape of a cart, one document per cart ID.
type cartDocument struct {
	CartID    string            `bson:"cart_id"`
	Items     []models.CartItem `bson:"items"`
	UpdatedAt time.Time         `bson:"updated_at"`
}

// MongoCartRepo implements CartRepository using MongoDB.
type MongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo creates a new instance of CartRepository using MongoDB.
func NewMongoCartRepo() CartRepository {
	coll := database.MongoClient.Database("utflykt").Collection("carts")
	repo := &MongoCartRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCartRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "cart_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCartRepo) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	doc := cartDocument{CartID: cartID, Items: items, UpdatedAt: time.Now()}
	filter := bson.M{"cart_id": cartID}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", cartID, err)
	}
	return nil
}

func (r *MongoCartRepo) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var doc cartDocument
	if err := r.coll.FindOne(ctx, bson.M{"cart_id": cartID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}
	return doc.Items, nil
}

func (r *MongoCartRepo) Delete(ctx context.Context, cartID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"cart_id": cartID}); err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", cartID, err)
	}
	return nil
}
