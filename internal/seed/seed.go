// Package seed populates the destination catalog on first boot.
// Seeding is an explicit startup step gated by a count check, not a hidden
// side effect of importing a package: main calls Run before the HTTP server
// starts accepting traffic.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wanderhq/wander/backend/internal/domain"
	"github.com/wanderhq/wander/backend/internal/repo"
)

// Destinations is the fixed seed catalog: one destination per category.
// The display price stays as entered; numericPrice carries the comparable
// value the price sorts use.
var Destinations = []domain.Destination{
	{
		Name:         "Aurangabad Caves Tour",
		Category:     domain.CategoryHistorical,
		Location:     "Aurangabad",
		Rating:       4.9,
		Duration:     "2 Days",
		Price:        "₹6,500",
		NumericPrice: 6500,
		Description:  "Ancient rock-cut caves with exquisite carvings.",
		Highlights:   []string{"Ajanta & Ellora nearby", "UNESCO heritage", "Guided tours"},
	},
	{
		Name:         "Mumbai to Lonavala",
		Category:     domain.CategoryNature,
		Location:     "Lonavala",
		Rating:       4.8,
		Duration:     "2 Days",
		Price:        "₹4,200",
		NumericPrice: 4200,
		Description:  "Green valleys, waterfalls, and misty viewpoints.",
		Highlights:   []string{"Tiger Point", "Bhushi Dam", "Monsoon treks"},
	},
	{
		Name:         "Konkan Coast Adventure",
		Category:     domain.CategoryAdventure,
		Location:     "Konkan",
		Rating:       4.6,
		Duration:     "4 Days",
		Price:        "₹9,800",
		NumericPrice: 9800,
		Description:  "Beaches, water sports, and coastal cuisine.",
		Highlights:   []string{"Water sports", "Sea forts", "Seafood"},
	},
	{
		Name:         "Pune Food Trail",
		Category:     domain.CategoryCuisine,
		Location:     "Pune",
		Rating:       4.7,
		Duration:     "1 Day",
		Price:        "₹1,200",
		NumericPrice: 1200,
		Description:  "Explore iconic eateries and local Maharashtrian dishes.",
		Highlights:   []string{"Misal pav", "Bakeries", "Street food"},
	},
}

// Run inserts the seed catalog if the destination collection is empty.
// A non-empty collection means a previous boot (or an operator) already
// populated it, and Run does nothing.
func Run(ctx context.Context, destinations repo.DestinationRepo) error {
	count, err := destinations.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed.Run: count: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := destinations.InsertMany(ctx, Destinations); err != nil {
		return fmt.Errorf("seed.Run: insert: %w", err)
	}
	slog.Info("seeded destinations", "count", len(Destinations))
	return nil
}
