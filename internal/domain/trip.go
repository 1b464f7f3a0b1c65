package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripStatus tracks where a trip is in its lifecycle.
// The schema-level default is StatusDraft; the create operation explicitly
// supplies StatusUpcoming when the caller omits the field. The two defaults
// intentionally differ — see DESIGN.md before "fixing" this.
type TripStatus string

const (
	StatusDraft     TripStatus = "draft"
	StatusUpcoming  TripStatus = "upcoming"
	StatusCompleted TripStatus = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusUpcoming, StatusCompleted:
		return true
	}
	return false
}

// ItineraryDay is one planned day inside a trip's itinerary.
// It is embedded in Trip and has no identity of its own.
type ItineraryDay struct {
	Day           int      `bson:"day" json:"day"`
	Title         string   `bson:"title,omitempty" json:"title,omitempty"`
	Activities    []string `bson:"activities" json:"activities"`
	Meals         []string `bson:"meals" json:"meals"`
	Accommodation string   `bson:"accommodation,omitempty" json:"accommodation,omitempty"`
}

// Trip is a saved itinerary. Destination is free text supplied by the user;
// there is no foreign-key relationship to the Destination catalog.
// StartDate/EndDate are nil when the traveller has not picked dates yet.
type Trip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Destination string             `bson:"destination" json:"destination"`
	StartDate   *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Travelers   string             `bson:"travelers,omitempty" json:"travelers,omitempty"`
	Budget      string             `bson:"budget,omitempty" json:"budget,omitempty"`
	Interests   []string           `bson:"interests" json:"interests"`
	Itinerary   []ItineraryDay     `bson:"itinerary" json:"itinerary"`
	Status      TripStatus         `bson:"status" json:"status"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
