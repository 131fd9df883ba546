package schema

// PokemonCategoryTable represents the 'pokemon_categories' join table
type PokemonCategoryTable struct {
	Table      string
	PokemonID  string
	CategoryID string
}

// PokemonCategory is the schema definition for pokemon_categories
var PokemonCategory = PokemonCategoryTable{
	Table:      "pokemon_categories",
	PokemonID:  "pokemon_id",
	CategoryID: "category_id",
}
