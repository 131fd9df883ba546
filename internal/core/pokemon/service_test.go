package pokemon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokereview/internal/platform/apperr"
	"github.com/taibuivan/pokereview/internal/platform/dberr"
)

// # Fakes

type fakeRepository struct {
	items     map[int]*Pokemon
	nextID    int
	rating    decimal.Decimal
	mutateErr error
	links     [][2]int
}

func newFakeRepository(items ...*Pokemon) *fakeRepository {
	repo := &fakeRepository{items: make(map[int]*Pokemon), nextID: 1}
	for _, item := range items {
		repo.items[item.ID] = item
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
	}
	return repo
}

func (f *fakeRepository) List(_ context.Context) ([]*Pokemon, error) {
	items := make([]*Pokemon, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeRepository) Get(_ context.Context, id int) (*Pokemon, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return item, nil
}

func (f *fakeRepository) Exists(_ context.Context, id int) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeRepository) Rating(_ context.Context, _ int) (decimal.Decimal, error) {
	return f.rating, nil
}

func (f *fakeRepository) Create(_ context.Context, ownerID, categoryID int, pokemon *Pokemon) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	pokemon.ID = f.nextID
	f.nextID++
	f.items[pokemon.ID] = pokemon
	f.links = append(f.links, [2]int{ownerID, categoryID})
	return nil
}

func (f *fakeRepository) Update(_ context.Context, ownerID, categoryID int, pokemon *Pokemon) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.items[pokemon.ID] = pokemon
	f.links = append(f.links, [2]int{ownerID, categoryID})
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	delete(f.items, id)
	return nil
}

type fakeChecker map[int]bool

func (f fakeChecker) Exists(_ context.Context, id int) (bool, error) {
	return f[id], nil
}

func newTestService(repo Repository) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, fakeChecker{1: true}, fakeChecker{1: true}, logger)
}

func requireAppError(t *testing.T, err error, status int, message string) {
	t.Helper()

	appErr := apperr.As(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	assert.Equal(t, status, appErr.HTTPStatus)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

// # Create

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("nil_body", func(t *testing.T) {
		service := newTestService(newFakeRepository())
		requireAppError(t, service.Create(ctx, 1, 1, nil), http.StatusBadRequest, "Request body is required")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		repo := newFakeRepository(&Pokemon{ID: 1, Name: "Pikachu"})
		service := newTestService(repo)

		err := service.Create(ctx, 1, 1, &DTO{Name: "  PIKACHU "})
		requireAppError(t, err, http.StatusUnprocessableEntity, "Pokemon already exists!")
		assert.Len(t, repo.items, 1)
	})

	t.Run("invalid_fields", func(t *testing.T) {
		service := newTestService(newFakeRepository())
		requireAppError(t, service.Create(ctx, 1, 1, &DTO{Name: ""}), http.StatusBadRequest, "Validation failed")
	})

	t.Run("storage_failure", func(t *testing.T) {
		repo := newFakeRepository()
		repo.mutateErr = errors.New("constraint failed")
		service := newTestService(repo)

		err := service.Create(ctx, 7, 1, &DTO{Name: "Pikachu"})
		requireAppError(t, err, http.StatusInternalServerError, "Something went wrong while saving!")
	})

	t.Run("success", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo)

		require.NoError(t, service.Create(ctx, 3, 4, &DTO{Name: "Pikachu"}))
		require.Len(t, repo.items, 1)
		assert.Equal(t, [][2]int{{3, 4}}, repo.links)
	})
}

// # Update

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		pokemonID  int
		ownerID    int
		categoryID int
		body       *DTO
		status     int
		message    string
	}{
		{"nil_body", 1, 1, 1, nil, http.StatusBadRequest, "Request body is required"},
		{"missing_owner_query", 1, 0, 1, &DTO{ID: 1, Name: "Raichu"}, http.StatusBadRequest, "Validation failed"},
		{"missing_category_query", 1, 1, 0, &DTO{ID: 1, Name: "Raichu"}, http.StatusBadRequest, "Validation failed"},
		{"id_mismatch", 1, 1, 1, &DTO{ID: 2, Name: "Raichu"}, http.StatusBadRequest, "Validation failed"},
		{"unknown_pokemon", 9, 1, 1, &DTO{ID: 9, Name: "Raichu"}, http.StatusNotFound, "Pokemon not found!"},
		{"unknown_owner", 1, 9, 1, &DTO{ID: 1, Name: "Raichu"}, http.StatusNotFound, "Owner not found!"},
		{"unknown_category", 1, 1, 9, &DTO{ID: 1, Name: "Raichu"}, http.StatusNotFound, "Category not found!"},
		{"invalid_fields", 1, 1, 1, &DTO{ID: 1}, http.StatusBadRequest, "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newFakeRepository(&Pokemon{ID: 1, Name: "Pikachu"}))
			err := service.Update(ctx, tt.pokemonID, tt.ownerID, tt.categoryID, tt.body)
			requireAppError(t, err, tt.status, tt.message)
		})
	}

	t.Run("success", func(t *testing.T) {
		repo := newFakeRepository(&Pokemon{ID: 1, Name: "Pikachu"})
		service := newTestService(repo)

		require.NoError(t, service.Update(ctx, 1, 1, 1, &DTO{ID: 1, Name: "Raichu"}))
		assert.Equal(t, "Raichu", repo.items[1].Name)
	})

	t.Run("storage_failure", func(t *testing.T) {
		repo := newFakeRepository(&Pokemon{ID: 1, Name: "Pikachu"})
		repo.mutateErr = dberr.ErrNotSaved
		service := newTestService(repo)

		err := service.Update(ctx, 1, 1, 1, &DTO{ID: 1, Name: "Raichu"})
		requireAppError(t, err, http.StatusInternalServerError, "Something went wrong while updating!")
	})
}

// # Delete & Lookups

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepository(&Pokemon{ID: 1, Name: "Pikachu"})
	service := newTestService(repo)

	requireAppError(t, service.Delete(ctx, 2), http.StatusNotFound, "Pokemon not found!")
	require.NoError(t, service.Delete(ctx, 1))

	exists, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	failing := newFakeRepository(&Pokemon{ID: 1, Name: "Pikachu"})
	failing.mutateErr = errors.New("disk full")
	err = newTestService(failing).Delete(ctx, 1)
	requireAppError(t, err, http.StatusInternalServerError, "Something went wrong while deleting!")
}

func TestService_GetAndRating(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepository(&Pokemon{ID: 1, Name: "Pikachu"})
	repo.rating = decimal.NewFromFloat(4.5)
	service := newTestService(repo)

	got, err := service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", got.Name)

	_, err = service.Get(ctx, 2)
	requireAppError(t, err, http.StatusNotFound, "Pokemon not found!")

	rating, err := service.Rating(ctx, 1)
	require.NoError(t, err)
	assert.True(t, rating.Equal(decimal.NewFromFloat(4.5)))

	_, err = service.Rating(ctx, 2)
	requireAppError(t, err, http.StatusNotFound, "Pokemon not found!")
}

// # Mapping

func TestMapping_RoundTrip(t *testing.T) {
	original := &Pokemon{ID: 25, Name: "Pikachu"}
	assert.Equal(t, original, FromDTO(ToDTO(original)))
	assert.Empty(t, ToDTOs(nil))
	assert.NotNil(t, ToDTOs(nil))
	assert.Len(t, ToDTOs([]*Pokemon{original}), 1)
}
