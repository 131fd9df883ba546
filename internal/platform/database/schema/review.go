package schema

// ReviewTable represents the 'reviews' table
type ReviewTable struct {
	Table      string
	ID         string
	Title      string
	Text       string
	Rating     string
	PokemonID  string
	ReviewerID string
}

// Review is the schema definition for reviews
var Review = ReviewTable{
	Table:      "reviews",
	ID:         "id",
	Title:      "title",
	Text:       "text",
	Rating:     "rating",
	PokemonID:  "pokemon_id",
	ReviewerID: "reviewer_id",
}

func (t ReviewTable) Columns() []string {
	return []string{t.ID, t.Title, t.Text, t.Rating, t.PokemonID, t.ReviewerID}
}
