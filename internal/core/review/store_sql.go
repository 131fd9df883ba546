// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

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

func (repository *SQLRepository) List(context context.Context) ([]*Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.Select("", schema.Review.Columns()), schema.Review.Table, schema.Review.ID)

	items := make([]*Review, 0)
	if err := repository.db.SelectContext(context, &items, query); err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	return items, nil
}

func (repository *SQLRepository) Get(context context.Context, id int) (*Review, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		schema.Select("", schema.Review.Columns()), schema.Review.Table, schema.Review.ID))

	review := &Review{}
	if err := repository.db.GetContext(context, review, query, id); err != nil {
		return nil, dberr.Wrap(err, "get_review")
	}
	return review, nil
}

func (repository *SQLRepository) Exists(context context.Context, id int) (bool, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)`,
		schema.Review.Table, schema.Review.ID))

	var exists bool
	if err := repository.db.QueryRowxContext(context, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("review_exists: %w", err)
	}
	return exists, nil
}

func (repository *SQLRepository) ListByPokemon(context context.Context, pokemonID int) ([]*Review, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? ORDER BY %s ASC`,
		schema.Select("", schema.Review.Columns()), schema.Review.Table, schema.Review.PokemonID, schema.Review.ID))

	items := make([]*Review, 0)
	if err := repository.db.SelectContext(context, &items, query, pokemonID); err != nil {
		return nil, dberr.Wrap(err, "list_pokemon_reviews")
	}
	return items, nil
}

// # Mutations

func (repository *SQLRepository) Create(context context.Context, review *Review) error {
	query := repository.db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (?, ?, ?, ?, ?) RETURNING %s`,
		schema.Review.Table,
		schema.Review.Title, schema.Review.Text, schema.Review.Rating, schema.Review.PokemonID, schema.Review.ReviewerID,
		schema.Review.ID,
	))

	err := repository.db.QueryRowxContext(context, query,
		review.Title, review.Text, review.Rating, review.PokemonID, review.ReviewerID,
	).Scan(&review.ID)
	if err != nil {
		return fmt.Errorf("create_review: %w", err)
	}
	return nil
}

func (repository *SQLRepository) Update(context context.Context, review *Review) error {
	query := repository.db.Rebind(fmt.Sprintf(`UPDATE %s SET %s = ?, %s = ?, %s = ? WHERE %s = ?`,
		schema.Review.Table, schema.Review.Title, schema.Review.Text, schema.Review.Rating, schema.Review.ID))

	result, err := repository.db.ExecContext(context, query, review.Title, review.Text, review.Rating, review.ID)
	return dberr.Saved(result, err, "update_review")
}

func (repository *SQLRepository) Delete(context context.Context, id int) error {
	query := repository.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		schema.Review.Table, schema.Review.ID))

	result, err := repository.db.ExecContext(context, query, id)
	return dberr.Saved(result, err, "delete_review")
}

func (repository *SQLRepository) DeleteByReviewer(context context.Context, reviewerID int) error {
	query := repository.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		schema.Review.Table, schema.Review.ReviewerID))

	result, err := repository.db.ExecContext(context, query, reviewerID)
	return dberr.Saved(result, err, "delete_reviewer_reviews")
}
