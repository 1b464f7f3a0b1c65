// Package service contains the business logic for the Wander API.
// Services validate inputs, apply defaults, and orchestrate repo calls.
// No query construction lives here — services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/wanderhq/wander/backend/internal/domain"
	"github.com/wanderhq/wander/backend/internal/repo"
)

// DestinationService implements the catalog listing operation.
type DestinationService struct {
	destinations repo.DestinationRepo
}

// NewDestinationService constructs a DestinationService backed by the provided repo.
func NewDestinationService(r repo.DestinationRepo) *DestinationService {
	return &DestinationService{destinations: r}
}

// List returns one page of the catalog for the given params.
// The operation is read-only; params are assumed to be already normalized
// by domain.NewListParams, so there is nothing to validate here.
func (s *DestinationService) List(ctx context.Context, params domain.ListParams) (domain.DestinationPage, error) {
	items, total, err := s.destinations.List(ctx, params)
	if err != nil {
		return domain.DestinationPage{}, fmt.Errorf("service.DestinationService.List: %w", err)
	}

	return domain.DestinationPage{
		Items: items,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}, nil
}
