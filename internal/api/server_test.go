package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokereview/internal/api"
	"github.com/taibuivan/pokereview/internal/platform/config"
	"github.com/taibuivan/pokereview/internal/platform/constants"
	"github.com/taibuivan/pokereview/internal/platform/database"
	"github.com/taibuivan/pokereview/internal/platform/database/dbtest"
	"github.com/taibuivan/pokereview/internal/platform/ratelimit"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

type client struct {
	t       *testing.T
	handler http.Handler
}

func (c client) do(method, target, body string) (int, envelope) {
	c.t.Helper()

	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	c.handler.ServeHTTP(recorder, request)

	var payload envelope
	require.NoError(c.t, json.Unmarshal(recorder.Body.Bytes(), &payload), recorder.Body.String())
	return recorder.Code, payload
}

func (c client) expect(method, target, body string, status int) envelope {
	c.t.Helper()

	code, payload := c.do(method, target, body)
	require.Equal(c.t, status, code, "%s %s: %+v", method, target, payload)
	return payload
}

func (c client) count(target string) int {
	c.t.Helper()

	var items []json.RawMessage
	require.NoError(c.t, json.Unmarshal(c.expect(http.MethodGet, target, "", http.StatusOK).Data, &items))
	return len(items)
}

func newServer(t *testing.T, limiter ratelimit.Limiter) http.Handler {
	t.Helper()

	db := dbtest.New(t)
	logger := dbtest.Logger()
	cfg := &config.Config{ServerPort: "0", Environment: "test"}

	if limiter == nil {
		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)
		limiter = ratelimit.NewMemory(ctx, 1000, 1000)
	}

	handlers := api.NewHandlers(db, api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return database.Ping(ctx, db) },
	}, logger)

	return api.NewServer(cfg, logger, limiter, handlers).Handler()
}

func TestServer_EndToEnd(t *testing.T) {
	c := client{t: t, handler: newServer(t, nil)}

	created := `"` + constants.MessageCreated + `"`

	// Reference data
	assert.JSONEq(t, created, string(c.expect(http.MethodPost, "/api/country", `{"name":"Kanto"}`, http.StatusOK).Data))
	c.expect(http.MethodPost, "/api/category", `{"name":"Electric"}`, http.StatusOK)
	c.expect(http.MethodPost, "/api/owner?countryId=1", `{"firstName":"Ash","lastName":"Ketchum","gym":"Pallet"}`, http.StatusOK)
	c.expect(http.MethodPost, "/api/reviewer", `{"firstName":"Gary","lastName":"Oak"}`, http.StatusOK)

	payload := c.expect(http.MethodPost, "/api/owner?countryId=99", `{"firstName":"Brock","lastName":"Harrison"}`, http.StatusNotFound)
	assert.Equal(t, "Country not found!", payload.Error)

	// Pokemon create, duplicate, and the unchecked owner reference
	pikachu := `{"name":"Pikachu","birthDate":"1996-02-27T00:00:00Z","pokemonRating":0}`
	c.expect(http.MethodPost, "/api/pokemon?ownerId=1&catId=1", pikachu, http.StatusOK)

	payload = c.expect(http.MethodPost, "/api/pokemon?ownerId=1&catId=1", pikachu, http.StatusUnprocessableEntity)
	assert.Equal(t, "Pokemon already exists!", payload.Error)

	payload = c.expect(http.MethodPost, "/api/pokemon?ownerId=99&catId=1", `{"name":"Mew"}`, http.StatusInternalServerError)
	assert.Equal(t, "Something went wrong while saving!", payload.Error)
	assert.Equal(t, 1, c.count("/api/pokemon"))

	// Reviews and rating
	c.expect(http.MethodPost, "/api/review?reviewerId=1&pokeId=1", `{"title":"Great","text":"Fast","rating":4}`, http.StatusOK)
	c.expect(http.MethodPost, "/api/review?reviewerId=1&pokeId=1", `{"title":"Perfect","rating":5}`, http.StatusOK)

	payload = c.expect(http.MethodPost, "/api/review?reviewerId=9&pokeId=1", `{"title":"Nope"}`, http.StatusNotFound)
	assert.Equal(t, "Reviewer not found!", payload.Error)

	assert.JSONEq(t, `4.5`, string(c.expect(http.MethodGet, "/api/pokemon/1/rating", "", http.StatusOK).Data))

	// Relationship reads
	assert.Equal(t, 1, c.count("/api/owner/1/pokemon"))
	assert.Equal(t, 1, c.count("/api/owner/pokemon/1"))
	assert.Equal(t, 1, c.count("/api/category/pokemon/1"))
	assert.Equal(t, 1, c.count("/api/country/1/owners"))
	assert.Equal(t, 2, c.count("/api/reviewer/1/reviews"))
	assert.Equal(t, 2, c.count("/api/review/pokemon/1"))
	assert.JSONEq(t, `{"id":1,"name":"Kanto"}`, string(c.expect(http.MethodGet, "/api/country/owners/1", "", http.StatusOK).Data))

	// Update guard order
	payload = c.expect(http.MethodPut, "/api/pokemon/1?ownerId=1&catId=99", `{"id":1,"name":"Raichu"}`, http.StatusNotFound)
	assert.Equal(t, "Category not found!", payload.Error)
	payload = c.expect(http.MethodPut, "/api/pokemon/1?ownerId=99&catId=99", `{"id":1,"name":"Raichu"}`, http.StatusNotFound)
	assert.Equal(t, "Owner not found!", payload.Error)
	c.expect(http.MethodPut, "/api/pokemon/1?ownerId=1&catId=1", `{"id":2,"name":"Raichu"}`, http.StatusBadRequest)
	c.expect(http.MethodPut, "/api/pokemon/1", `{"id":1,"name":"Raichu"}`, http.StatusBadRequest)
	c.expect(http.MethodPut, "/api/pokemon/1?ownerId=1&catId=1", `{"id":1,"name":"Raichu"}`, http.StatusOK)

	var updated struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(c.expect(http.MethodGet, "/api/pokemon/1", "", http.StatusOK).Data, &updated))
	assert.Equal(t, "Raichu", updated.Name)

	// Deletes
	c.expect(http.MethodDelete, "/api/review/reviewer/1", "", http.StatusOK)
	assert.Equal(t, 0, c.count("/api/review"))

	payload = c.expect(http.MethodDelete, "/api/pokemon/1", "", http.StatusOK)
	assert.JSONEq(t, `"`+constants.MessageDeleted+`"`, string(payload.Data))

	payload = c.expect(http.MethodGet, "/api/pokemon/1", "", http.StatusNotFound)
	assert.Equal(t, "Pokemon not found!", payload.Error)
	c.expect(http.MethodDelete, "/api/pokemon/1", "", http.StatusNotFound)

	// Country still referenced by an owner
	c.expect(http.MethodDelete, "/api/country/1", "", http.StatusInternalServerError)
}

func TestServer_Infrastructure(t *testing.T) {
	handler := newServer(t, nil)
	c := client{t: t, handler: handler}

	c.expect(http.MethodGet, "/health", "", http.StatusOK)
	c.expect(http.MethodGet, "/ready", "", http.StatusOK)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))

	c.expect(http.MethodGet, "/api/pokemon/abc", "", http.StatusBadRequest)
}

func TestServer_RateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := client{t: t, handler: newServer(t, ratelimit.NewMemory(ctx, 0.001, 1))}

	c.expect(http.MethodGet, "/health", "", http.StatusOK)
	payload := c.expect(http.MethodGet, "/health", "", http.StatusTooManyRequests)
	assert.Equal(t, "RATE_LIMITED", payload.Code)
}
