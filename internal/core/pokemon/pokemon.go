// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pokemon manages the Pokemon catalogue: lookups, ratings and the
create/update/delete flows that also maintain owner and category links.

# Data Model

A [Pokemon] is linked to owners and categories through join tables and
collects reviews. Its rating is derived from those reviews and never stored.
*/
package pokemon

import (
	"time"

	"github.com/taibuivan/pokereview/pkg/slice"
)

// # Domain Entities

// Pokemon is a catalogued creature.
type Pokemon struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	BirthDate time.Time `db:"birth_date"`
}

// # Transport Objects

// DTO is the JSON representation of a [Pokemon].
type DTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name" validate:"required,max=100"`
	BirthDate Date   `json:"birthDate"`
}

// # Mapping

// ToDTO converts a stored [Pokemon] into its transport form.
func ToDTO(pokemon *Pokemon) DTO {
	return DTO{
		ID:        pokemon.ID,
		Name:      pokemon.Name,
		BirthDate: Date{Time: pokemon.BirthDate},
	}
}

// ToDTOs converts a list of [Pokemon].
func ToDTOs(items []*Pokemon) []DTO {
	return slice.Map(items, ToDTO)
}

// FromDTO builds the entity persisted by create and update.
func FromDTO(dto DTO) *Pokemon {
	return &Pokemon{
		ID:        dto.ID,
		Name:      dto.Name,
		BirthDate: dto.BirthDate.Time,
	}
}
