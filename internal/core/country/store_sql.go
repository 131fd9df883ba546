package country

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/pokereview/internal/core/owner"
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

func (repository *SQLRepository) List(context context.Context) ([]*Country, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.Select("", schema.Country.Columns()), schema.Country.Table, schema.Country.Name, schema.Country.ID)

	items := make([]*Country, 0)
	if err := repository.db.SelectContext(context, &items, query); err != nil {
		return nil, dberr.Wrap(err, "list_countries")
	}
	return items, nil
}

func (repository *SQLRepository) Get(context context.Context, id int) (*Country, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		schema.Select("", schema.Country.Columns()), schema.Country.Table, schema.Country.ID))

	country := &Country{}
	if err := repository.db.GetContext(context, country, query, id); err != nil {
		return nil, dberr.Wrap(err, "get_country")
	}
	return country, nil
}

func (repository *SQLRepository) Exists(context context.Context, id int) (bool, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)`,
		schema.Country.Table, schema.Country.ID))

	var exists bool
	if err := repository.db.QueryRowxContext(context, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("country_exists: %w", err)
	}
	return exists, nil
}

func (repository *SQLRepository) GetByOwner(context context.Context, ownerID int) (*Country, error) {
	query := repository.db.Rebind(fmt.Sprintf(`
		SELECT %s
		FROM %s c
		JOIN %s o ON o.%s = c.%s
		WHERE o.%s = ?
	`,
		schema.Select("c", schema.Country.Columns()),
		schema.Country.Table,
		schema.Owner.Table, schema.Owner.CountryID, schema.Country.ID,
		schema.Owner.ID,
	))

	country := &Country{}
	if err := repository.db.GetContext(context, country, query, ownerID); err != nil {
		return nil, dberr.Wrap(err, "get_owner_country")
	}
	return country, nil
}

func (repository *SQLRepository) ListOwners(context context.Context, countryID int) ([]*owner.Owner, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? ORDER BY %s ASC`,
		schema.Select("", schema.Owner.Columns()), schema.Owner.Table, schema.Owner.CountryID, schema.Owner.ID))

	items := make([]*owner.Owner, 0)
	if err := repository.db.SelectContext(context, &items, query, countryID); err != nil {
		return nil, dberr.Wrap(err, "list_country_owners")
	}
	return items, nil
}

func (repository *SQLRepository) Create(context context.Context, country *Country) error {
	query := repository.db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?) RETURNING %s`,
		schema.Country.Table, schema.Country.Name, schema.Country.ID))

	if err := repository.db.QueryRowxContext(context, query, country.Name).Scan(&country.ID); err != nil {
		return fmt.Errorf("create_country: %w", err)
	}
	return nil
}

func (repository *SQLRepository) Update(context context.Context, country *Country) error {
	query := repository.db.Rebind(fmt.Sprintf(`UPDATE %s SET %s = ? WHERE %s = ?`,
		schema.Country.Table, schema.Country.Name, schema.Country.ID))

	result, err := repository.db.ExecContext(context, query, country.Name, country.ID)
	return dberr.Saved(result, err, "update_country")
}

// Delete fails while an owner still lives in the country.
func (repository *SQLRepository) Delete(context context.Context, id int) error {
	query := repository.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		schema.Country.Table, schema.Country.ID))

	result, err := repository.db.ExecContext(context, query, id)
	return dberr.Saved(result, err, "delete_country")
}
