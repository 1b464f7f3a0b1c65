package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderhq/wander/backend/internal/domain"
)

// TripCollection is the MongoDB collection name for saved trips.
const TripCollection = "trips"

// TripRepo defines the persistence operations for Trips.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record with its
	// generated ObjectID and createdAt/updatedAt populated.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// List returns all trips ordered by createdAt descending.
	List(ctx context.Context) ([]domain.Trip, error)

	// Delete removes a trip by ID. Deleting an ID that does not exist is not
	// an error — the operation is idempotent by design.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// mongoTripRepo is the MongoDB implementation of TripRepo.
type mongoTripRepo struct {
	coll *mongo.Collection
}

// NewTripRepo constructs a TripRepo backed by the provided database.
func NewTripRepo(db *mongo.Database) TripRepo {
	return &mongoTripRepo{coll: db.Collection(TripCollection)}
}

// Create inserts the trip and returns it with the store-generated identity.
func (r *mongoTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	now := time.Now().UTC()
	trip.ID = primitive.NilObjectID // never trust caller-supplied identity
	trip.CreatedAt = now
	trip.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: unexpected inserted id type %T", res.InsertedID)
	}
	trip.ID = id
	return trip, nil
}

// List returns every trip, most recently created first.
func (r *mongoTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: find: %w", err)
	}
	defer cur.Close(ctx)

	trips := []domain.Trip{}
	if err := cur.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: decode: %w", err)
	}

	return trips, nil
}

// Delete fires a single DeleteOne and ignores the deleted count, so deleting
// the same ID twice succeeds both times.
func (r *mongoTripRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return nil
}
