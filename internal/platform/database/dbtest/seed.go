package dbtest

import (
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokereview/internal/platform/database/schema"
)

// insert runs an INSERT ... RETURNING id and returns the new id.
func insert(t testing.TB, db *sqlx.DB, table string, columns []string, args ...any) int {
	t.Helper()

	placeholders := ""
	for i := range columns {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
	}

	query := db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		table, schema.Select("", columns), placeholders))

	var id int
	require.NoError(t, db.QueryRowx(query, args...).Scan(&id))
	return id
}

// SeedCountry stores a country and returns its id.
func SeedCountry(t testing.TB, db *sqlx.DB, name string) int {
	t.Helper()
	return insert(t, db, schema.Country.Table, []string{schema.Country.Name}, name)
}

// SeedCategory stores a category and returns its id.
func SeedCategory(t testing.TB, db *sqlx.DB, name string) int {
	t.Helper()
	return insert(t, db, schema.Category.Table, []string{schema.Category.Name}, name)
}

// SeedOwner stores an owner living in countryID and returns its id.
func SeedOwner(t testing.TB, db *sqlx.DB, firstName, lastName string, countryID int) int {
	t.Helper()
	return insert(t, db, schema.Owner.Table,
		[]string{schema.Owner.FirstName, schema.Owner.LastName, schema.Owner.Gym, schema.Owner.CountryID},
		firstName, lastName, "", countryID)
}

// SeedReviewer stores a reviewer and returns its id.
func SeedReviewer(t testing.TB, db *sqlx.DB, firstName, lastName string) int {
	t.Helper()
	return insert(t, db, schema.Reviewer.Table,
		[]string{schema.Reviewer.FirstName, schema.Reviewer.LastName},
		firstName, lastName)
}

// SeedPokemon stores a Pokemon without links and returns its id.
func SeedPokemon(t testing.TB, db *sqlx.DB, name string) int {
	t.Helper()
	return insert(t, db, schema.Pokemon.Table,
		[]string{schema.Pokemon.Name, schema.Pokemon.BirthDate},
		name, time.Date(1996, time.February, 27, 0, 0, 0, 0, time.UTC))
}

// SeedReview stores a review of pokemonID by reviewerID and returns its id.
func SeedReview(t testing.TB, db *sqlx.DB, title string, rating, pokemonID, reviewerID int) int {
	t.Helper()
	return insert(t, db, schema.Review.Table,
		[]string{schema.Review.Title, schema.Review.Text, schema.Review.Rating, schema.Review.PokemonID, schema.Review.ReviewerID},
		title, "", rating, pokemonID, reviewerID)
}

// LinkOwner records that ownerID owns pokemonID.
func LinkOwner(t testing.TB, db *sqlx.DB, pokemonID, ownerID int) {
	t.Helper()
	query := db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (?, ?)`,
		schema.PokemonOwner.Table, schema.PokemonOwner.PokemonID, schema.PokemonOwner.OwnerID))
	db.MustExec(query, pokemonID, ownerID)
}

// LinkCategory records that pokemonID belongs to categoryID.
func LinkCategory(t testing.TB, db *sqlx.DB, pokemonID, categoryID int) {
	t.Helper()
	query := db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (?, ?)`,
		schema.PokemonCategory.Table, schema.PokemonCategory.PokemonID, schema.PokemonCategory.CategoryID))
	db.MustExec(query, pokemonID, categoryID)
}

// Count returns the number of rows in table.
func Count(t testing.TB, db *sqlx.DB, table string) int {
	t.Helper()

	var count int
	require.NoError(t, db.Get(&count, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)))
	return count
}
