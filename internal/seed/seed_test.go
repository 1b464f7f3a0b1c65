package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderhq/wander/backend/internal/domain"
	"github.com/wanderhq/wander/backend/internal/seed"
)

// mockDestinationRepo records whether InsertMany was invoked.
type mockDestinationRepo struct {
	countResult int64
	countErr    error
	inserted    []domain.Destination
	insertErr   error
}

func (m *mockDestinationRepo) List(_ context.Context, _ domain.ListParams) ([]domain.Destination, int64, error) {
	return nil, 0, errors.New("not used")
}
func (m *mockDestinationRepo) Count(_ context.Context) (int64, error) {
	return m.countResult, m.countErr
}
func (m *mockDestinationRepo) InsertMany(_ context.Context, items []domain.Destination) error {
	m.inserted = items
	return m.insertErr
}

func TestRun_SeedsWhenEmpty(t *testing.T) {
	repo := &mockDestinationRepo{countResult: 0}

	err := seed.Run(context.Background(), repo)

	require.NoError(t, err)
	require.Len(t, repo.inserted, 4)

	// One destination per category, with valid categories only.
	seen := map[domain.Category]bool{}
	for _, d := range repo.inserted {
		assert.True(t, d.Category.Valid(), "seed category %q", d.Category)
		seen[d.Category] = true
	}
	assert.Len(t, seen, 4)
}

func TestRun_SkipsWhenNotEmpty(t *testing.T) {
	repo := &mockDestinationRepo{countResult: 4}

	err := seed.Run(context.Background(), repo)

	require.NoError(t, err)
	assert.Nil(t, repo.inserted, "InsertMany must not run when the collection has documents")
}

func TestRun_CountErrorPropagates(t *testing.T) {
	boom := errors.New("no reachable servers")
	repo := &mockDestinationRepo{countErr: boom}

	err := seed.Run(context.Background(), repo)

	assert.ErrorIs(t, err, boom)
}
