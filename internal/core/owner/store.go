// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import (
	"context"

	"github.com/taibuivan/pokereview/internal/core/pokemon"
)

// Repository defines the persistence operations for owners.
type Repository interface {
	List(context context.Context) ([]*Owner, error)
	Get(context context.Context, id int) (*Owner, error)
	Exists(context context.Context, id int) (bool, error)

	// ListByPokemon returns the owners of pokemonID.
	ListByPokemon(context context.Context, pokemonID int) ([]*Owner, error)

	// ListPokemon returns the Pokemon owned by ownerID.
	ListPokemon(context context.Context, ownerID int) ([]*pokemon.Pokemon, error)

	Create(context context.Context, owner *Owner) error

	// Update rewrites the name and gym. The country is left unchanged.
	Update(context context.Context, owner *Owner) error

	Delete(context context.Context, id int) error
}
