// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokereview/internal/platform/constants"
	requestutil "github.com/taibuivan/pokereview/internal/platform/request"
	"github.com/taibuivan/pokereview/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the Pokemon catalogue.
type Handler struct {
	service *Service
}

// NewHandler constructs a new pokemon [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /api/pokemon.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPokemon)
	router.Get("/{pokeId}", handler.getPokemon)
	router.Get("/{pokeId}/rating", handler.getRating)

	router.Post("/", handler.createPokemon)
	router.Put("/{pokeId}", handler.updatePokemon)
	router.Delete("/{pokeId}", handler.deletePokemon)

	return router
}

// # Lookup Endpoints

/*
GET /api/pokemon.

Response:
  - 200: []DTO
*/
func (handler *Handler) listPokemon(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTOs(items))
}

/*
GET /api/pokemon/{pokeId}.

Response:
  - 200: DTO
  - 404: Pokemon not found
*/
func (handler *Handler) getPokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "pokeId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pokemon, err := handler.service.Get(request.Context(), pokemonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTO(pokemon))
}

/*
GET /api/pokemon/{pokeId}/rating.

Description: Average of the Pokemon's review ratings, 0 without reviews.

Response:
  - 200: number
  - 404: Pokemon not found
*/
func (handler *Handler) getRating(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "pokeId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rating, err := handler.service.Rating(request.Context(), pokemonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	// Written as a bare JSON number with the decimal's exact digits.
	respond.OK(writer, json.Number(rating.String()))
}

// # Mutation Endpoints

/*
POST /api/pokemon?ownerId=&catId=.

Request:
  - Body: DTO

Response:
  - 200: "Successfully created!"
  - 400: Missing or invalid body
  - 422: Pokemon already exists
  - 500: Storage rejected the insert (including unknown owner or category)
*/
func (handler *Handler) createPokemon(writer http.ResponseWriter, request *http.Request) {
	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ownerID := requestutil.QueryInt(request, "ownerId")
	categoryID := requestutil.QueryInt(request, "catId")

	if err := handler.service.Create(request.Context(), ownerID, categoryID, body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageCreated)
}

/*
PUT /api/pokemon/{pokeId}?ownerId=&catId=.

Request:
  - Body: DTO (id must equal pokeId)

Response:
  - 200: "Successfully updated!"
  - 400: Missing body or query ids, id mismatch, invalid fields
  - 404: Pokemon, Owner or Category not found
  - 500: Storage failure
*/
func (handler *Handler) updatePokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "pokeId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ownerID := requestutil.QueryInt(request, "ownerId")
	categoryID := requestutil.QueryInt(request, "catId")

	if err := handler.service.Update(request.Context(), pokemonID, ownerID, categoryID, body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageUpdated)
}

/*
DELETE /api/pokemon/{pokeId}.

Response:
  - 200: "Successfully deleted!"
  - 404: Pokemon not found
  - 500: Storage failure
*/
func (handler *Handler) deletePokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "pokeId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), pokemonID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageDeleted)
}
