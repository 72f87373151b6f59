package catalog

import "github.com/tableshare/tableshare/internal/domain"

// Facts are the rotating awareness cards on the landing page.
var Facts = []domain.Fact{
	{
		ID:     "fact-1in8",
		Text:   "About 1 in 8 households in our region experienced food insecurity last year.",
		Source: "Regional Food Security Report",
	},
	{
		ID:     "fact-waste",
		Text:   "Roughly a third of all food produced is never eaten — enough to feed every hungry neighbor several times over.",
		Source: "UN FAO",
	},
	{
		ID:     "fact-children",
		Text:   "One in six children doesn't know where their next meal is coming from.",
		Source: "Regional Food Security Report",
	},
	{
		ID:   "fact-dollar",
		Text: "A single donated dollar can fund up to three meals through partner food banks.",
	},
	{
		ID:   "fact-volunteers",
		Text: "Volunteer hours cover more than half of all labor at neighborhood pantries.",
	},
	{
		ID:     "fact-seniors",
		Text:   "Seniors living alone are twice as likely to skip meals as other adults.",
		Source: "Meals on Wheels America",
	},
}

// FindFact returns the fact with the given id, or nil.
func FindFact(id string) *domain.Fact {
	for i := range Facts {
		if Facts[i].ID == id {
			return &Facts[i]
		}
	}
	return nil
}
