package schema

// PokemonOwnerTable represents the 'pokemon_owners' join table
type PokemonOwnerTable struct {
	Table     string
	PokemonID string
	OwnerID   string
}

// PokemonOwner is the schema definition for pokemon_owners
var PokemonOwner = PokemonOwnerTable{
	Table:     "pokemon_owners",
	PokemonID: "pokemon_id",
	OwnerID:   "owner_id",
}
