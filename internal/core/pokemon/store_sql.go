// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/taibuivan/pokereview/internal/platform/database/schema"
	"github.com/taibuivan/pokereview/internal/platform/dberr"
)

// SQLRepository implements [Repository] on the shared sqlx handle.
type SQLRepository struct {
	db *sqlx.DB
}

// NewSQLRepository returns a repository bound to db.
func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// # Lookups

func (repository *SQLRepository) List(context context.Context) ([]*Pokemon, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.Select("", schema.Pokemon.Columns()), schema.Pokemon.Table, schema.Pokemon.ID)

	items := make([]*Pokemon, 0)
	if err := repository.db.SelectContext(context, &items, query); err != nil {
		return nil, dberr.Wrap(err, "list_pokemon")
	}
	return items, nil
}

func (repository *SQLRepository) Get(context context.Context, id int) (*Pokemon, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		schema.Select("", schema.Pokemon.Columns()), schema.Pokemon.Table, schema.Pokemon.ID))

	pokemon := &Pokemon{}
	if err := repository.db.GetContext(context, pokemon, query, id); err != nil {
		return nil, dberr.Wrap(err, "get_pokemon")
	}
	return pokemon, nil
}

func (repository *SQLRepository) Exists(context context.Context, id int) (bool, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)`,
		schema.Pokemon.Table, schema.Pokemon.ID))

	var exists bool
	if err := repository.db.QueryRowxContext(context, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("pokemon_exists: %w", err)
	}
	return exists, nil
}

func (repository *SQLRepository) Rating(context context.Context, id int) (decimal.Decimal, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT AVG(%s) FROM %s WHERE %s = ?`,
		schema.Review.Rating, schema.Review.Table, schema.Review.PokemonID))

	var average decimal.NullDecimal
	if err := repository.db.QueryRowxContext(context, query, id).Scan(&average); err != nil {
		return decimal.Zero, fmt.Errorf("pokemon_rating: %w", err)
	}

	if !average.Valid {
		return decimal.Zero, nil
	}
	return average.Decimal, nil
}

// # Mutations

// Create inserts the Pokemon and both links in one transaction.
//
// Birth dates are written in UTC: SQLite stores the driver's text form and
// cannot scan back an unnamed fixed offset.
func (repository *SQLRepository) Create(context context.Context, ownerID, categoryID int, pokemon *Pokemon) error {
	insertPokemon := repository.db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (?, ?) RETURNING %s`,
		schema.Pokemon.Table, schema.Pokemon.Name, schema.Pokemon.BirthDate, schema.Pokemon.ID))

	transaction, err := repository.db.BeginTxx(context, nil)
	if err != nil {
		return fmt.Errorf("create_pokemon: begin: %w", err)
	}
	defer func() { _ = transaction.Rollback() }()

	if err := transaction.QueryRowxContext(context, insertPokemon, pokemon.Name, pokemon.BirthDate.UTC()).Scan(&pokemon.ID); err != nil {
		return fmt.Errorf("create_pokemon: %w", err)
	}

	if err := repository.link(context, transaction, pokemon.ID, ownerID, categoryID, false); err != nil {
		return fmt.Errorf("create_pokemon: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("create_pokemon: commit: %w", err)
	}
	return nil
}

func (repository *SQLRepository) Update(context context.Context, ownerID, categoryID int, pokemon *Pokemon) error {
	updatePokemon := repository.db.Rebind(fmt.Sprintf(`UPDATE %s SET %s = ?, %s = ? WHERE %s = ?`,
		schema.Pokemon.Table, schema.Pokemon.Name, schema.Pokemon.BirthDate, schema.Pokemon.ID))

	transaction, err := repository.db.BeginTxx(context, nil)
	if err != nil {
		return fmt.Errorf("update_pokemon: begin: %w", err)
	}
	defer func() { _ = transaction.Rollback() }()

	result, err := transaction.ExecContext(context, updatePokemon, pokemon.Name, pokemon.BirthDate.UTC(), pokemon.ID)
	if err := dberr.Saved(result, err, "update_pokemon"); err != nil {
		return err
	}

	if err := repository.link(context, transaction, pokemon.ID, ownerID, categoryID, true); err != nil {
		return fmt.Errorf("update_pokemon: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("update_pokemon: commit: %w", err)
	}
	return nil
}

func (repository *SQLRepository) Delete(context context.Context, id int) error {
	query := repository.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		schema.Pokemon.Table, schema.Pokemon.ID))

	result, err := repository.db.ExecContext(context, query, id)
	return dberr.Saved(result, err, "delete_pokemon")
}

// link writes the owner and category join rows for pokemonID.
//
// With keepExisting set, rows that are already present are left alone.
func (repository *SQLRepository) link(context context.Context, transaction *sqlx.Tx, pokemonID, ownerID, categoryID int, keepExisting bool) error {
	conflict := ""
	if keepExisting {
		conflict = " ON CONFLICT DO NOTHING"
	}

	insertOwner := repository.db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (?, ?)%s`,
		schema.PokemonOwner.Table, schema.PokemonOwner.PokemonID, schema.PokemonOwner.OwnerID, conflict))
	insertCategory := repository.db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (?, ?)%s`,
		schema.PokemonCategory.Table, schema.PokemonCategory.PokemonID, schema.PokemonCategory.CategoryID, conflict))

	if _, err := transaction.ExecContext(context, insertOwner, pokemonID, ownerID); err != nil {
		return fmt.Errorf("link owner %d: %w", ownerID, err)
	}
	if _, err := transaction.ExecContext(context, insertCategory, pokemonID, categoryID); err != nil {
		return fmt.Errorf("link category %d: %w", categoryID, err)
	}
	return nil
}
