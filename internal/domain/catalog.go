package domain

import (
	"encoding/json"
	"fmt"
	"os"
)

// Activity is one catalog entry: a trackable habit worth a fixed number
// of points per day.
type Activity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Icon   string `json:"icon"`
}

// Catalog is the static set of trackable activities. It is fixed for the
// lifetime of the process; changing it requires a restart.
type Catalog struct {
	activities []Activity
	byID       map[string]Activity
}

// NewCatalog builds a catalog from the given activities.
func NewCatalog(activities []Activity) Catalog {
	byID := make(map[string]Activity, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
	}
	return Catalog{activities: activities, byID: byID}
}

// DefaultCatalog returns the built-in activity set.
func DefaultCatalog() Catalog {
	return NewCatalog([]Activity{
		{ID: "healthy-food", Name: "Ate Healthy Food", Points: 10, Icon: "🥗"},
		{ID: "exercise", Name: "Did Exercise", Points: 15, Icon: "💪"},
		{ID: "water", Name: "Drank Water Properly", Points: 10, Icon: "💧"},
		{ID: "steps", Name: "Completed 10K Steps", Points: 15, Icon: "👟"},
	})
}

// LoadCatalog reads an activity catalog from a JSON file containing an
// array of activities.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var activities []Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(activities) == 0 {
		return Catalog{}, fmt.Errorf("parse catalog: no activities in %s", path)
	}
	return NewCatalog(activities), nil
}

// Lookup returns the catalog entry for id.
func (c Catalog) Lookup(id string) (Activity, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Activities returns the catalog entries in their configured order.
func (c Catalog) Activities() []Activity {
	out := make([]Activity, len(c.activities))
	copy(out, c.activities)
	return out
}

// MaxDailyPoints is the highest score a person can earn from catalog
// activities in a single day.
func (c Catalog) MaxDailyPoints() int {
	total := 0
	for _, a := range c.activities {
		total += a.Points
	}
	return total
}
