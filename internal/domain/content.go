package domain

// Organization is a partner org shown as a marker on the community map.
type Organization struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Website     string   `json:"website,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Fact is one rotating hunger-awareness card.
type Fact struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// QuizQuestion is one trivia question. Answer is the index into Choices
// and is stripped before questions leave the API.
type QuizQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	Answer      int      `json:"-"`
	Explanation string   `json:"explanation,omitempty"`
}
