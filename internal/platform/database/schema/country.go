package schema

// CountryTable represents the 'countries' table
type CountryTable struct {
	Table string
	ID    string
	Name  string
}

// Country is the schema definition for countries
var Country = CountryTable{
	Table: "countries",
	ID:    "id",
	Name:  "name",
}

func (t CountryTable) Columns() []string {
	return []string{t.ID, t.Name}
}
