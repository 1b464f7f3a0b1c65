// Package domain contains the core data types for the Wander travel API.
// This package has no dependencies on the HTTP or persistence layers and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category classifies a destination. It is a closed set: writes with any
// other value are rejected at the service boundary, before the store sees them.
type Category string

const (
	CategoryHistorical Category = "historical"
	CategoryNature     Category = "nature"
	CategoryAdventure  Category = "adventure"
	CategoryCuisine    Category = "cuisine"
)

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryHistorical, CategoryNature, CategoryAdventure, CategoryCuisine:
		return true
	}
	return false
}

// Destination is a single catalog entry in the browsable destination catalog.
// The ObjectID is generated by the store on insert; its hex form is what the
// API exposes as the plain string "id".
//
// Price is the display string shown to users (e.g. "₹6,500"); NumericPrice is
// the comparable value backing the price-low / price-high sorts.
type Destination struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Category     Category           `bson:"category" json:"category"`
	Location     string             `bson:"location" json:"location"`
	Rating       float64            `bson:"rating" json:"rating"`
	Duration     string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Price        string             `bson:"price,omitempty" json:"price,omitempty"`
	NumericPrice float64            `bson:"numericPrice,omitempty" json:"numericPrice,omitempty"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Highlights   []string           `bson:"highlights" json:"highlights"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
