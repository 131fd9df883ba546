package country_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokereview/internal/core/country"
	"github.com/taibuivan/pokereview/internal/core/owner"
	"github.com/taibuivan/pokereview/internal/platform/apperr"
	"github.com/taibuivan/pokereview/internal/platform/database/dbtest"
)

func TestService_Flow(t *testing.T) {
	db := dbtest.New(t)
	service := country.NewService(country.NewSQLRepository(db), owner.NewSQLRepository(db), dbtest.Logger())
	ctx := context.Background()

	require.NoError(t, service.Create(ctx, &country.DTO{Name: "Kanto"}))

	err := service.Create(ctx, &country.DTO{Name: "kanto"})
	assert.Equal(t, "Country already exists!", apperr.As(err).Message)
	assert.Equal(t, http.StatusUnprocessableEntity, apperr.As(err).HTTPStatus)

	items, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	kanto := items[0].ID

	ownerID := dbtest.SeedOwner(t, db, "Ash", "Ketchum", kanto)

	got, err := service.GetByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, kanto, got.ID)

	_, err = service.GetByOwner(ctx, 999)
	assert.Equal(t, "Owner not found!", apperr.As(err).Message)

	_, err = service.ListOwners(ctx, 999)
	assert.Equal(t, "Country not found!", apperr.As(err).Message)

	require.NoError(t, service.Update(ctx, kanto, &country.DTO{ID: kanto, Name: "Kanto Region"}))

	err = service.Delete(ctx, kanto)
	assert.Equal(t, "Something went wrong while deleting!", apperr.As(err).Message)
	assert.Equal(t, http.StatusInternalServerError, apperr.As(err).HTTPStatus)
}

func TestMapping_RoundTrip(t *testing.T) {
	original := &country.Country{ID: 9, Name: "Galar"}
	assert.Equal(t, original, country.FromDTO(country.ToDTO(original)))
}
