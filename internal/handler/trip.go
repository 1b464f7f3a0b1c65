package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wanderhq/wander/backend/internal/domain"
)

// createTripRequest is the wire shape of POST /api/trips.
// Dates arrive as strings; interests and itinerary are kept raw so a
// non-sequence value can be coerced to empty instead of failing the decode.
type createTripRequest struct {
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Travelers   string          `json:"travelers"`
	Budget      string          `json:"budget"`
	Interests   json.RawMessage `json:"interests"`
	Itinerary   json.RawMessage `json:"itinerary"`
	Status      string          `json:"status"`
	ImageURL    string          `json:"imageUrl"`
}

// tripListResponse is the wire shape of GET /api/trips.
type tripListResponse struct {
	Items []domain.Trip `json:"items"`
	Total int           `json:"total"`
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid trip payload")
		return
	}

	trip, err := requestToTrip(body)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid trip payload")
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondMessage(w, http.StatusBadRequest, "Invalid trip payload")
			return
		}
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /api/trips.
// No filtering or pagination: every saved trip comes back, newest first.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, tripListResponse{Items: trips, Total: len(trips)})
}

// DeleteTrip handles DELETE /api/trips/{id}.
// A syntactically invalid id is a 400; deleting an id that no longer exists
// still reports {"ok":true} so clients can retry safely.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			respondMessage(w, http.StatusBadRequest, "Invalid id")
			return
		}
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a createTripRequest into a domain.Trip.
// Malformed dates or malformed sequence elements are errors; a value that is
// not a sequence at all is coerced to an empty sequence per the API contract.
// Required-field and status validation belongs to the service, not here.
func requestToTrip(body createTripRequest) (domain.Trip, error) {
	trip := domain.Trip{
		Title:       body.Title,
		Destination: body.Destination,
		Travelers:   body.Travelers,
		Budget:      body.Budget,
		Status:      domain.TripStatus(body.Status),
		ImageURL:    body.ImageURL,
	}

	var err error
	if trip.StartDate, err = parseDate(body.StartDate); err != nil {
		return domain.Trip{}, fmt.Errorf("startDate: %w", err)
	}
	if trip.EndDate, err = parseDate(body.EndDate); err != nil {
		return domain.Trip{}, fmt.Errorf("endDate: %w", err)
	}

	if isJSONArray(body.Interests) {
		if err := json.Unmarshal(body.Interests, &trip.Interests); err != nil {
			return domain.Trip{}, fmt.Errorf("interests: %w", err)
		}
	} else {
		trip.Interests = []string{}
	}

	if isJSONArray(body.Itinerary) {
		if err := json.Unmarshal(body.Itinerary, &trip.Itinerary); err != nil {
			return domain.Trip{}, fmt.Errorf("itinerary: %w", err)
		}
	} else {
		trip.Itinerary = []domain.ItineraryDay{}
	}

	return trip, nil
}

// dateLayouts are the accepted wire formats for startDate/endDate, tried in
// order: the date-picker format first, then full RFC 3339 timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate parses an optional date string. Empty means unset (nil).
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}

// isJSONArray reports whether raw starts a JSON array.
// Absent fields, null, objects, and scalars all report false and are
// coerced to empty sequences by the caller.
func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b == '['
		}
	}
	return false
}
