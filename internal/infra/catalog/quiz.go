package catalog

import "github.com/tableshare/tableshare/internal/domain"

// QuizQuestions is the trivia pool. Answer indexes are stripped before
// questions leave the API; CheckAnswer is the only way to grade.
var QuizQuestions = []domain.QuizQuestion{
	{
		ID:       "quiz-meals-dollar",
		Question: "How many meals can food banks typically provide per donated dollar?",
		Choices:  []string{"One", "Up to three", "Ten", "Half a meal"},
		Answer:   1,
		Explanation: "Bulk purchasing and rescue logistics stretch each dollar to roughly three meals.",
	},
	{
		ID:       "quiz-waste-share",
		Question: "What share of food produced worldwide goes uneaten?",
		Choices:  []string{"About 5%", "About 15%", "About a third", "More than half"},
		Answer:   2,
		Explanation: "Around one third of food is lost or wasted between farm and table.",
	},
	{
		ID:       "quiz-child-rate",
		Question: "How many children face food insecurity in a typical U.S. classroom of 24?",
		Choices:  []string{"One", "Four", "Eight", "Twelve"},
		Answer:   1,
		Explanation: "At one in six, that's about four students in every classroom.",
	},
	{
		ID:       "quiz-pantry-labor",
		Question: "Who performs most of the day-to-day work at neighborhood pantries?",
		Choices:  []string{"Paid staff", "Government workers", "Volunteers", "Contractors"},
		Answer:   2,
		Explanation: "Volunteers cover well over half of pantry labor hours.",
	},
	{
		ID:       "quiz-rescue",
		Question: "What does 'food rescue' mean?",
		Choices: []string{
			"Growing food in community gardens",
			"Collecting surplus food before it's discarded",
			"Emergency meal delivery",
			"Subsidized grocery stores",
		},
		Answer:      1,
		Explanation: "Rescue programs redirect surplus from grocers and restaurants to pantries.",
	},
}

// FindQuizQuestion returns the question with the given id, or nil.
func FindQuizQuestion(id string) *domain.QuizQuestion {
	for i := range QuizQuestions {
		if QuizQuestions[i].ID == id {
			return &QuizQuestions[i]
		}
	}
	return nil
}

// CheckAnswer grades a guess. Unknown question ids are simply wrong.
func CheckAnswer(id string, choice int) bool {
	q := FindQuizQuestion(id)
	return q != nil && choice == q.Answer
}
