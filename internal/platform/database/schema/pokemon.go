package schema

// PokemonTable represents the 'pokemon' table
type PokemonTable struct {
	Table     string
	ID        string
	Name      string
	BirthDate string
}

// Pokemon is the schema definition for pokemon
var Pokemon = PokemonTable{
	Table:     "pokemon",
	ID:        "id",
	Name:      "name",
	BirthDate: "birth_date",
}

func (t PokemonTable) Columns() []string {
	return []string{t.ID, t.Name, t.BirthDate}
}
