package category

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/pokereview/internal/core/pokemon"
	"github.com/taibuivan/pokereview/internal/platform/database/schema"
	"github.com/taibuivan/pokereview/internal/platform/dberr"
)

// SQLRepository implements [Repository] with sqlx.
type SQLRepository struct {
	db *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (repository *SQLRepository) List(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.Select("", schema.Category.Columns()), schema.Category.Table, schema.Category.ID)

	items := make([]*Category, 0)
	if err := repository.db.SelectContext(context, &items, query); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	return items, nil
}

func (repository *SQLRepository) Get(context context.Context, id int) (*Category, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		schema.Select("", schema.Category.Columns()), schema.Category.Table, schema.Category.ID))

	category := &Category{}
	if err := repository.db.GetContext(context, category, query, id); err != nil {
		return nil, dberr.Wrap(err, "get_category")
	}
	return category, nil
}

func (repository *SQLRepository) Exists(context context.Context, id int) (bool, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)`,
		schema.Category.Table, schema.Category.ID))

	var exists bool
	if err := repository.db.QueryRowxContext(context, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("category_exists: %w", err)
	}
	return exists, nil
}

// ListPokemon returns the Pokemon linked to categoryID.
func (repository *SQLRepository) ListPokemon(context context.Context, categoryID int) ([]*pokemon.Pokemon, error) {
	query := repository.db.Rebind(fmt.Sprintf(`
		SELECT %s
		FROM %s p
		JOIN %s pc ON pc.%s = p.%s
		WHERE pc.%s = ?
		ORDER BY p.%s ASC
	`,
		schema.Select("p", schema.Pokemon.Columns()),
		schema.Pokemon.Table,
		schema.PokemonCategory.Table, schema.PokemonCategory.PokemonID, schema.Pokemon.ID,
		schema.PokemonCategory.CategoryID,
		schema.Pokemon.ID,
	))

	items := make([]*pokemon.Pokemon, 0)
	if err := repository.db.SelectContext(context, &items, query, categoryID); err != nil {
		return nil, dberr.Wrap(err, "list_category_pokemon")
	}
	return items, nil
}

func (repository *SQLRepository) Create(context context.Context, category *Category) error {
	query := repository.db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?) RETURNING %s`,
		schema.Category.Table, schema.Category.Name, schema.Category.ID))

	if err := repository.db.QueryRowxContext(context, query, category.Name).Scan(&category.ID); err != nil {
		return fmt.Errorf("create_category: %w", err)
	}
	return nil
}

func (repository *SQLRepository) Update(context context.Context, category *Category) error {
	query := repository.db.Rebind(fmt.Sprintf(`UPDATE %s SET %s = ? WHERE %s = ?`,
		schema.Category.Table, schema.Category.Name, schema.Category.ID))

	result, err := repository.db.ExecContext(context, query, category.Name, category.ID)
	return dberr.Saved(result, err, "update_category")
}

func (repository *SQLRepository) Delete(context context.Context, id int) error {
	query := repository.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		schema.Category.Table, schema.Category.ID))

	result, err := repository.db.ExecContext(context, query, id)
	return dberr.Saved(result, err, "delete_category")
}
