// Package catalog provides TableShare's compiled-in content tables:
// partner organizations for the community map, hunger-fact cards, and
// the trivia quiz. The site renders these directly; nothing here is
// persisted or mutable.
package catalog

import "github.com/tableshare/tableshare/internal/domain"

// Organizations is the partner directory shown on the map.
var Organizations = []domain.Organization{
	{
		ID:          "riverside-pantry",
		Name:        "Riverside Community Pantry",
		Description: "Weekly grocery distribution and a no-questions-asked shelf.",
		Address:     "214 River St",
		Lat:         41.8827, Lng: -87.6233,
		Website: "https://example.org/riverside",
		Tags:    []string{"pantry", "groceries"},
	},
	{
		ID:          "sunrise-kitchen",
		Name:        "Sunrise Soup Kitchen",
		Description: "Hot breakfast and lunch service, seven days a week.",
		Address:     "88 E Morning Ave",
		Lat:         41.8919, Lng: -87.6051,
		Website: "https://example.org/sunrise",
		Tags:    []string{"meals", "kitchen"},
	},
	{
		ID:          "harvest-rescue",
		Name:        "Harvest Food Rescue",
		Description: "Collects surplus from grocers and restaurants before it's wasted.",
		Address:     "1520 W Depot Rd",
		Lat:         41.8652, Lng: -87.6612,
		Website: "https://example.org/harvest",
		Tags:    []string{"rescue", "logistics"},
	},
	{
		ID:          "northside-fridge",
		Name:        "Northside Community Fridge",
		Description: "A 24/7 outdoor fridge stocked by neighbors, for neighbors.",
		Address:     "402 N Elm St",
		Lat:         41.9103, Lng: -87.6341,
		Tags: []string{"fridge", "mutual-aid"},
	},
	{
		ID:          "school-packs",
		Name:        "Weekend Backpack Project",
		Description: "Sends food-filled backpacks home with students every Friday.",
		Address:     "67 Garfield Blvd",
		Lat:         41.8489, Lng: -87.6418,
		Website: "https://example.org/backpacks",
		Tags:    []string{"children", "schools"},
	},
	{
		ID:          "senior-wheels",
		Name:        "Meals on Wheels — West Side",
		Description: "Daily meal delivery for homebound seniors.",
		Address:     "930 W Harrison St",
		Lat:         41.8746, Lng: -87.6497,
		Tags: []string{"seniors", "delivery"},
	},
}

// FindOrganization returns the organization with the given id, or nil.
func FindOrganization(id string) *domain.Organization {
	for i := range Organizations {
		if Organizations[i].ID == id {
			return &Organizations[i]
		}
	}
	return nil
}
