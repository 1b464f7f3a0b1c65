package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the secondary indexes both collections rely on:
//
//   - destinations: {category:1} for the category filter, and a text index on
//     name+location backing the free-text search.
//   - trips: {createdAt:-1} for the default listing order.
//
// CreateMany is a no-op for indexes that already exist, so this is safe to
// run on every startup. A failure here is fatal to the process — serving with
// missing indexes would silently degrade the listing queries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	destIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "location", Value: "text"}}},
	}
	if _, err := db.Collection(DestinationCollection).Indexes().CreateMany(ctx, destIndexes); err != nil {
		return fmt.Errorf("repo.EnsureIndexes: destinations: %w", err)
	}

	tripIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(TripCollection).Indexes().CreateMany(ctx, tripIndexes); err != nil {
		return fmt.Errorf("repo.EnsureIndexes: trips: %w", err)
	}

	return nil
}
