package schema

// OwnerTable represents the 'owners' table
type OwnerTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	Gym       string
	CountryID string
}

// Owner is the schema definition for owners
var Owner = OwnerTable{
	Table:     "owners",
	ID:        "id",
	FirstName: "first_name",
	LastName:  "last_name",
	Gym:       "gym",
	CountryID: "country_id",
}

func (t OwnerTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.Gym, t.CountryID}
}
