package pokemon_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokereview/internal/core/pokemon"
	"github.com/taibuivan/pokereview/internal/platform/database/dbtest"
)

type allowAll struct{}

func (allowAll) Exists(context.Context, int) (bool, error) { return true, nil }

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

func serve(t *testing.T, handler http.Handler, method, target, body string) (int, envelope) {
	t.Helper()

	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var payload envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return recorder.Code, payload
}

func TestHandler_CreateThenDuplicate(t *testing.T) {
	db := dbtest.New(t)
	countryID := dbtest.SeedCountry(t, db, "Japan")
	ownerID := dbtest.SeedOwner(t, db, "Ash", "Ketchum", countryID)
	categoryID := dbtest.SeedCategory(t, db, "Electric")

	service := pokemon.NewService(pokemon.NewSQLRepository(db), allowAll{}, allowAll{}, dbtest.Logger())
	router := pokemon.NewHandler(service).Routes()

	target := "/?ownerId=" + strconv.Itoa(ownerID) + "&catId=" + strconv.Itoa(categoryID)
	body := `{"name":"Pikachu","birthDate":"1996-02-27T00:00:00Z","pokemonRating":0}`

	status, payload := serve(t, router, http.MethodPost, target, body)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `"Successfully created!"`, string(payload.Data))

	status, payload = serve(t, router, http.MethodPost, target, body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Pokemon already exists!", payload.Error)

	status, payload = serve(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, status)

	var listed []pokemon.DTO
	require.NoError(t, json.Unmarshal(payload.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Pikachu", listed[0].Name)

	status, payload = serve(t, router, http.MethodGet, "/"+strconv.Itoa(listed[0].ID)+"/rating", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `0`, string(payload.Data))
}

func TestHandler_BirthDateFormats(t *testing.T) {
	db := dbtest.New(t)
	countryID := dbtest.SeedCountry(t, db, "Japan")
	ownerID := dbtest.SeedOwner(t, db, "Ash", "Ketchum", countryID)
	categoryID := dbtest.SeedCategory(t, db, "Normal")

	service := pokemon.NewService(pokemon.NewSQLRepository(db), allowAll{}, allowAll{}, dbtest.Logger())
	router := pokemon.NewHandler(service).Routes()
	target := "/?ownerId=" + strconv.Itoa(ownerID) + "&catId=" + strconv.Itoa(categoryID)

	bodies := []string{
		`{"name":"Pikachu","birthDate":"1996-02-27","pokemonRating":0}`,
		`{"name":"Eevee","birthDate":"1996-02-27T10:00:00+09:00"}`,
		`{"name":"Mew"}`,
	}
	for _, body := range bodies {
		status, payload := serve(t, router, http.MethodPost, target, body)
		require.Equal(t, http.StatusOK, status, "%s: %s", body, payload.Error)
	}

	status, payload := serve(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, status)

	var listed []struct {
		Name      string `json:"name"`
		BirthDate string `json:"birthDate"`
	}
	require.NoError(t, json.Unmarshal(payload.Data, &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, "1996-02-27T00:00:00Z", listed[0].BirthDate)
	assert.Equal(t, "1996-02-27T01:00:00Z", listed[1].BirthDate)

	status, payload = serve(t, router, http.MethodPost, target, `{"name":"Ditto","birthDate":"27/02/1996"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid JSON payload", payload.Error)
}

func TestHandler_Errors(t *testing.T) {
	db := dbtest.New(t)
	service := pokemon.NewService(pokemon.NewSQLRepository(db), allowAll{}, allowAll{}, dbtest.Logger())
	router := pokemon.NewHandler(service).Routes()

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"non_integer_id", http.MethodGet, "/pikachu", "", http.StatusBadRequest},
		{"unknown_id", http.MethodGet, "/7", "", http.StatusNotFound},
		{"unknown_rating", http.MethodGet, "/7/rating", "", http.StatusNotFound},
		{"malformed_body", http.MethodPost, "/?ownerId=1&catId=1", "{", http.StatusBadRequest},
		{"null_body", http.MethodPost, "/?ownerId=1&catId=1", "null", http.StatusBadRequest},
		{"unknown_owner_on_create", http.MethodPost, "/?ownerId=1&catId=1", `{"name":"Mew"}`, http.StatusInternalServerError},
		{"delete_unknown", http.MethodDelete, "/7", "", http.StatusNotFound},
		{"update_unknown", http.MethodPut, "/7?ownerId=1&catId=1", `{"id":7,"name":"Mew"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := serve(t, router, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, status)
		})
	}
}
