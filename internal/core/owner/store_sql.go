// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/pokereview/internal/core/pokemon"
	"github.com/taibuivan/pokereview/internal/platform/database/schema"
	"github.com/taibuivan/pokereview/internal/platform/dberr"
)

// SQLRepository implements [Repository] on the shared sqlx handle.
type SQLRepository struct {
	db *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// # Lookups

func (repository *SQLRepository) List(context context.Context) ([]*Owner, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.Select("", schema.Owner.Columns()), schema.Owner.Table, schema.Owner.ID)

	items := make([]*Owner, 0)
	if err := repository.db.SelectContext(context, &items, query); err != nil {
		return nil, dberr.Wrap(err, "list_owners")
	}
	return items, nil
}

func (repository *SQLRepository) Get(context context.Context, id int) (*Owner, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		schema.Select("", schema.Owner.Columns()), schema.Owner.Table, schema.Owner.ID))

	owner := &Owner{}
	if err := repository.db.GetContext(context, owner, query, id); err != nil {
		return nil, dberr.Wrap(err, "get_owner")
	}
	return owner, nil
}

func (repository *SQLRepository) Exists(context context.Context, id int) (bool, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)`,
		schema.Owner.Table, schema.Owner.ID))

	var exists bool
	if err := repository.db.QueryRowxContext(context, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("owner_exists: %w", err)
	}
	return exists, nil
}

func (repository *SQLRepository) ListByPokemon(context context.Context, pokemonID int) ([]*Owner, error) {
	query := repository.db.Rebind(fmt.Sprintf(`
		SELECT %s
		FROM %s o
		JOIN %s po ON po.%s = o.%s
		WHERE po.%s = ?
		ORDER BY o.%s ASC
	`,
		schema.Select("o", schema.Owner.Columns()),
		schema.Owner.Table,
		schema.PokemonOwner.Table, schema.PokemonOwner.OwnerID, schema.Owner.ID,
		schema.PokemonOwner.PokemonID,
		schema.Owner.ID,
	))

	items := make([]*Owner, 0)
	if err := repository.db.SelectContext(context, &items, query, pokemonID); err != nil {
		return nil, dberr.Wrap(err, "list_pokemon_owners")
	}
	return items, nil
}

func (repository *SQLRepository) ListPokemon(context context.Context, ownerID int) ([]*pokemon.Pokemon, error) {
	query := repository.db.Rebind(fmt.Sprintf(`
		SELECT %s
		FROM %s p
		JOIN %s po ON po.%s = p.%s
		WHERE po.%s = ?
		ORDER BY p.%s ASC
	`,
		schema.Select("p", schema.Pokemon.Columns()),
		schema.Pokemon.Table,
		schema.PokemonOwner.Table, schema.PokemonOwner.PokemonID, schema.Pokemon.ID,
		schema.PokemonOwner.OwnerID,
		schema.Pokemon.ID,
	))

	items := make([]*pokemon.Pokemon, 0)
	if err := repository.db.SelectContext(context, &items, query, ownerID); err != nil {
		return nil, dberr.Wrap(err, "list_owner_pokemon")
	}
	return items, nil
}

// # Mutations

func (repository *SQLRepository) Create(context context.Context, owner *Owner) error {
	query := repository.db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?) RETURNING %s`,
		schema.Owner.Table,
		schema.Owner.FirstName, schema.Owner.LastName, schema.Owner.Gym, schema.Owner.CountryID,
		schema.Owner.ID,
	))

	err := repository.db.QueryRowxContext(context, query,
		owner.FirstName, owner.LastName, owner.Gym, owner.CountryID,
	).Scan(&owner.ID)
	if err != nil {
		return fmt.Errorf("create_owner: %w", err)
	}
	return nil
}

func (repository *SQLRepository) Update(context context.Context, owner *Owner) error {
	query := repository.db.Rebind(fmt.Sprintf(`UPDATE %s SET %s = ?, %s = ?, %s = ? WHERE %s = ?`,
		schema.Owner.Table,
		schema.Owner.FirstName, schema.Owner.LastName, schema.Owner.Gym,
		schema.Owner.ID,
	))

	result, err := repository.db.ExecContext(context, query, owner.FirstName, owner.LastName, owner.Gym, owner.ID)
	return dberr.Saved(result, err, "update_owner")
}

func (repository *SQLRepository) Delete(context context.Context, id int) error {
	query := repository.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		schema.Owner.Table, schema.Owner.ID))

	result, err := repository.db.ExecContext(context, query, id)
	return dberr.Saved(result, err, "delete_owner")
}
