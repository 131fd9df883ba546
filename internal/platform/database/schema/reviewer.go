package schema

// ReviewerTable represents the 'reviewers' table
type ReviewerTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
}

// Reviewer is the schema definition for reviewers
var Reviewer = ReviewerTable{
	Table:     "reviewers",
	ID:        "id",
	FirstName: "first_name",
	LastName:  "last_name",
}

func (t ReviewerTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName}
}
