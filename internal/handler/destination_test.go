package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderhq/wander/backend/internal/domain"
	"github.com/wanderhq/wander/backend/internal/handler"
)

// mockDestinationServicer is a test double for handler.DestinationServicer.
type mockDestinationServicer struct {
	list func(ctx context.Context, params domain.ListParams) (domain.DestinationPage, error)
}

func (m *mockDestinationServicer) List(ctx context.Context, params domain.ListParams) (domain.DestinationPage, error) {
	return m.list(ctx, params)
}

// compile-time check: mockDestinationServicer must satisfy handler.DestinationServicer.
var _ handler.DestinationServicer = (*mockDestinationServicer)(nil)

func newDestinationHandler(svc handler.DestinationServicer) http.Handler {
	return handler.NewServer(svc, nil).Routes()
}

func TestListDestinations_200(t *testing.T) {
	page := domain.DestinationPage{
		Items: []domain.Destination{{Name: "Mumbai to Lonavala", Category: domain.CategoryNature, Location: "Lonavala", Rating: 4.8}},
		Total: 1,
		Page:  1,
		Limit: 12,
	}
	svc := &mockDestinationServicer{
		list: func(_ context.Context, _ domain.ListParams) (domain.DestinationPage, error) {
			return page, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/destinations?category=nature", nil)
	rec := httptest.NewRecorder()

	newDestinationHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.DestinationPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Mumbai to Lonavala", resp.Items[0].Name)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 12, resp.Limit)
}

func TestListDestinations_ParamsReachServiceNormalized(t *testing.T) {
	var got domain.ListParams
	svc := &mockDestinationServicer{
		list: func(_ context.Context, params domain.ListParams) (domain.DestinationPage, error) {
			got = params
			return domain.DestinationPage{Items: []domain.Destination{}, Page: params.Page, Limit: params.Limit}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/destinations?category=cuisine&q=misal&page=2&limit=6&sort=price-high", nil)
	rec := httptest.NewRecorder()

	newDestinationHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cuisine", got.Category)
	assert.Equal(t, "misal", got.Query)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 6, got.Limit)
	assert.Equal(t, domain.SortPriceHigh, got.Sort)
}

func TestListDestinations_MalformedNumbersDegradeToDefaults(t *testing.T) {
	var got domain.ListParams
	svc := &mockDestinationServicer{
		list: func(_ context.Context, params domain.ListParams) (domain.DestinationPage, error) {
			got = params
			return domain.DestinationPage{Items: []domain.Destination{}, Page: params.Page, Limit: params.Limit}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/destinations?page=two&limit=many&sort=cheapest", nil)
	rec := httptest.NewRecorder()

	newDestinationHandler(svc).ServeHTTP(rec, req)

	// Never a 400: bad values silently resolve to page=1, limit=12, popular.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 12, got.Limit)
	assert.Equal(t, domain.SortPopular, got.Sort)
}

func TestListDestinations_500_StoreError(t *testing.T) {
	svc := &mockDestinationServicer{
		list: func(_ context.Context, _ domain.ListParams) (domain.DestinationPage, error) {
			return domain.DestinationPage{}, fmt.Errorf("count: server selection timeout")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	rec := httptest.NewRecorder()

	newDestinationHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assertMessage(t, rec, "Server error")
}
