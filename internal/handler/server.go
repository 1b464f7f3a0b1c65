// Package handler implements the HTTP handlers for the Wander API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, destination.go, trip.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/wanderhq/wander/backend/internal/domain"
)

// DestinationServicer defines the catalog operations the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type DestinationServicer interface {
	List(ctx context.Context, params domain.ListParams) (domain.DestinationPage, error)
}

// TripServicer defines the trip operations the handler depends on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Delete(ctx context.Context, id string) error
}

// Server holds the handlers for all API endpoints.
// Wire it into a router via Routes in main.go.
type Server struct {
	destinations DestinationServicer
	trips        TripServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(destinations DestinationServicer, trips TripServicer) *Server {
	return &Server{destinations: destinations, trips: trips}
}

// Routes returns the route table for the API.
// The caller mounts this onto the application router after the shared
// middleware stack.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.Root)
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/destinations", s.ListDestinations)
		r.Route("/trips", func(r chi.Router) {
			r.Post("/", s.CreateTrip)
			r.Get("/", s.ListTrips)
			r.Delete("/{id}", s.DeleteTrip)
		})
	})

	return r
}
