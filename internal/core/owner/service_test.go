package owner_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokereview/internal/core/owner"
	"github.com/taibuivan/pokereview/internal/platform/apperr"
	"github.com/taibuivan/pokereview/internal/platform/database/dbtest"
)

type fakeChecker map[int]bool

func (f fakeChecker) Exists(_ context.Context, id int) (bool, error) {
	return f[id], nil
}

func TestService_Create(t *testing.T) {
	db := dbtest.New(t)
	countryID := dbtest.SeedCountry(t, db, "Japan")
	service := owner.NewService(owner.NewSQLRepository(db), fakeChecker{countryID: true}, fakeChecker{}, dbtest.Logger())
	ctx := context.Background()

	tests := []struct {
		name      string
		countryID int
		body      *owner.DTO
		status    int
		message   string
	}{
		{"created", countryID, &owner.DTO{FirstName: "Ash", LastName: "Ketchum"}, http.StatusOK, ""},
		{"nil_body", countryID, nil, http.StatusBadRequest, "Request body is required"},
		{"duplicate_last_name", countryID, &owner.DTO{FirstName: "Delia", LastName: "KETCHUM "}, http.StatusUnprocessableEntity, "Owner already exists!"},
		{"unknown_country", 77, &owner.DTO{FirstName: "Brock", LastName: "Harrison"}, http.StatusNotFound, "Country not found!"},
		{"missing_country", 0, &owner.DTO{FirstName: "Brock", LastName: "Harrison"}, http.StatusNotFound, "Country not found!"},
		{"invalid_fields", countryID, &owner.DTO{LastName: "Harrison"}, http.StatusBadRequest, "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Create(ctx, tt.countryID, tt.body)
			if tt.status == http.StatusOK {
				require.NoError(t, err)
				return
			}

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.status, appErr.HTTPStatus)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}

	items, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, countryID, items[0].CountryID)
}

func TestService_UpdateDeleteAndLookups(t *testing.T) {
	db := dbtest.New(t)
	countryID := dbtest.SeedCountry(t, db, "Japan")
	ownerID := dbtest.SeedOwner(t, db, "Ash", "Ketchum", countryID)
	pokemonID := dbtest.SeedPokemon(t, db, "Pikachu")
	dbtest.LinkOwner(t, db, pokemonID, ownerID)

	service := owner.NewService(owner.NewSQLRepository(db), fakeChecker{}, fakeChecker{pokemonID: true}, dbtest.Logger())
	ctx := context.Background()

	err := service.Update(ctx, ownerID, &owner.DTO{ID: ownerID + 1, FirstName: "Ash", LastName: "K"})
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)

	err = service.Update(ctx, 99, &owner.DTO{ID: 99, FirstName: "Ash", LastName: "K"})
	assert.Equal(t, "Owner not found!", apperr.As(err).Message)

	require.NoError(t, service.Update(ctx, ownerID, &owner.DTO{ID: ownerID, FirstName: "Ash", LastName: "K", Gym: "Viridian"}))

	owners, err := service.ListByPokemon(ctx, pokemonID)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "Viridian", owners[0].Gym)

	_, err = service.ListByPokemon(ctx, 404)
	assert.Equal(t, "Pokemon not found!", apperr.As(err).Message)

	owned, err := service.ListPokemon(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	_, err = service.ListPokemon(ctx, 404)
	assert.Equal(t, "Owner not found!", apperr.As(err).Message)

	require.NoError(t, service.Delete(ctx, ownerID))
	assert.Equal(t, http.StatusNotFound, apperr.As(service.Delete(ctx, ownerID)).HTTPStatus)
}

func TestMapping_RoundTrip(t *testing.T) {
	original := &owner.Owner{ID: 1, FirstName: "Ash", LastName: "Ketchum", Gym: "Pallet"}
	assert.Equal(t, original, owner.FromDTO(owner.ToDTO(original)))
}
