// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when required environment
// variables are not set, so unit tests can run without a running database.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewDatabase connects to the MongoDB deployment specified by the
// TEST_MONGODB_URI environment variable and returns a throwaway database with
// a per-test unique name.
//
// The test is skipped automatically if TEST_MONGODB_URI is not set, so
// integration tests are opt-in and never break CI environments that lack a DB.
// The database is dropped and the client disconnected automatically when the
// test (and all its subtests) finish.
func NewDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set; skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("testutil.NewDatabase: connect: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Fatalf("testutil.NewDatabase: ping: %v", err)
	}

	// A unique name per test means tests can run in parallel and a crashed
	// run never pollutes the next one with stale documents.
	db := client.Database(fmt.Sprintf("wander_test_%d", time.Now().UnixNano()))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}
