package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wanderhq/wander/backend/internal/domain"
	"github.com/wanderhq/wander/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{trips: r}
}

// Create validates and persists a new trip.
//
// Title and destination are required. An omitted status defaults to
// StatusUpcoming: the create path always supplies the field, so the schema
// default StatusDraft only applies to records written by other means.
// Interests and itinerary are normalized so they never persist as null.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.Title) == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: destination is required", domain.ErrValidation)
	}

	if trip.Status == "" {
		trip.Status = domain.StatusUpcoming
	} else if !trip.Status.Valid() {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: unknown status %q", domain.ErrValidation, trip.Status)
	}

	if trip.Interests == nil {
		trip.Interests = []string{}
	}
	if trip.Itinerary == nil {
		trip.Itinerary = []domain.ItineraryDay{}
	}
	for i := range trip.Itinerary {
		if trip.Itinerary[i].Activities == nil {
			trip.Itinerary[i].Activities = []string{}
		}
		if trip.Itinerary[i].Meals == nil {
			trip.Itinerary[i].Meals = []string{}
		}
	}

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// List returns all trips, most recently created first.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return trips, nil
}

// Delete removes a trip by its hex identifier.
// An identifier that is not a valid ObjectID yields ErrInvalidID; deleting an
// ID that does not exist succeeds, so repeated deletes are safe.
func (s *TripService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w: %q", domain.ErrInvalidID, id)
	}

	if err := s.trips.Delete(ctx, oid); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}
