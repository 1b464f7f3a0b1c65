// Package repo contains all database access logic for the Wander API.
// Each resource has its own file with an interface and a MongoDB implementation.
// No business logic lives here — only query construction and type mapping.
package repo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderhq/wander/backend/internal/domain"
)

// DestinationCollection is the MongoDB collection name for the catalog.
const DestinationCollection = "destinations"

// DestinationRepo defines the persistence operations for the destination catalog.
// The service layer depends on this interface, not the concrete Mongo
// implementation, which allows the service to be unit-tested with a mock.
type DestinationRepo interface {
	// List executes the catalog query: count all documents matching the
	// filter, then return the requested page in the resolved sort order.
	// The returned total ignores pagination.
	List(ctx context.Context, params domain.ListParams) ([]domain.Destination, int64, error)

	// Count returns the number of documents in the collection, ignoring any filter.
	Count(ctx context.Context) (int64, error)

	// InsertMany stores the given destinations, stamping createdAt/updatedAt.
	InsertMany(ctx context.Context, items []domain.Destination) error
}

// mongoDestinationRepo is the MongoDB implementation of DestinationRepo.
type mongoDestinationRepo struct {
	coll *mongo.Collection
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided database.
func NewDestinationRepo(db *mongo.Database) DestinationRepo {
	return &mongoDestinationRepo{coll: db.Collection(DestinationCollection)}
}

// listFilter builds the Mongo filter document for the given params.
//
// The category value is used verbatim as an equality predicate: "all" and ""
// mean no restriction, and an unrecognized value simply matches nothing.
// The free-text query becomes a case-insensitive substring match on name OR
// location, mirroring the $regex search the UI was built against.
func listFilter(params domain.ListParams) bson.M {
	filter := bson.M{}
	if !params.FiltersAll() {
		filter["category"] = params.Category
	}
	if params.Query != "" {
		re := primitiveRegex(params.Query)
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"location": re},
		}
	}
	return filter
}

// primitiveRegex builds a case-insensitive substring matcher for q.
// The term is quoted so regex metacharacters in user input match literally.
func primitiveRegex(q string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
}

// listSort resolves a SortOrder into a Mongo sort document.
// Order matters for the popular tie-break, so bson.D is used throughout.
func listSort(sort domain.SortOrder) bson.D {
	switch sort {
	case domain.SortRating:
		return bson.D{{Key: "rating", Value: -1}}
	case domain.SortPriceLow:
		return bson.D{{Key: "numericPrice", Value: 1}}
	case domain.SortPriceHigh:
		return bson.D{{Key: "numericPrice", Value: -1}}
	default:
		// popular: best-rated first, most recently created wins ties.
		return bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}}
	}
}

// List runs the count and the paged find as two queries against the same
// filter. There is no transaction: the catalog is effectively append-only,
// so a racing insert can at worst make total lag the page by one.
func (r *mongoDestinationRepo) List(ctx context.Context, params domain.ListParams) ([]domain.Destination, int64, error) {
	filter := listFilter(params)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.DestinationRepo.List: count: %w", err)
	}

	opts := options.Find().
		SetSort(listSort(params.Sort)).
		SetSkip(params.Skip()).
		SetLimit(int64(params.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.DestinationRepo.List: find: %w", err)
	}
	defer cur.Close(ctx)

	items := []domain.Destination{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("repo.DestinationRepo.List: decode: %w", err)
	}

	return items, total, nil
}

// Count returns the total number of catalog documents.
// The seeder uses this to decide whether the collection needs seeding.
func (r *mongoDestinationRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("repo.DestinationRepo.Count: %w", err)
	}
	return n, nil
}

// InsertMany stores the given destinations with fresh timestamps.
func (r *mongoDestinationRepo) InsertMany(ctx context.Context, items []domain.Destination) error {
	now := time.Now().UTC()
	docs := make([]any, len(items))
	for i, d := range items {
		d.CreatedAt = now
		d.UpdatedAt = now
		docs[i] = d
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("repo.DestinationRepo.InsertMany: %w", err)
	}
	return nil
}
