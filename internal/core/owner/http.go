// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokereview/internal/core/pokemon"
	"github.com/taibuivan/pokereview/internal/platform/constants"
	requestutil "github.com/taibuivan/pokereview/internal/platform/request"
	"github.com/taibuivan/pokereview/internal/platform/respond"
)

// Handler implements the HTTP layer for owners.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /api/owner.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listOwners)
	router.Get("/{ownerId}", handler.getOwner)
	router.Get("/{ownerId}/pokemon", handler.listPokemon)
	router.Get("/pokemon/{pokeId}", handler.listByPokemon)

	router.Post("/", handler.createOwner)
	router.Put("/{ownerId}", handler.updateOwner)
	router.Delete("/{ownerId}", handler.deleteOwner)

	return router
}

// # Lookup Endpoints

func (handler *Handler) listOwners(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTOs(items))
}

func (handler *Handler) getOwner(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntID(request, "ownerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	owner, err := handler.service.Get(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTO(owner))
}

/*
GET /api/owner/{ownerId}/pokemon.

Response:
  - 200: []pokemon.DTO
  - 404: Owner not found
*/
func (handler *Handler) listPokemon(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntID(request, "ownerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListPokemon(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pokemon.ToDTOs(items))
}

/*
GET /api/owner/pokemon/{pokeId}.

Response:
  - 200: []DTO
  - 404: Pokemon not found
*/
func (handler *Handler) listByPokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "pokeId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListByPokemon(request.Context(), pokemonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTOs(items))
}

// # Mutation Endpoints

/*
POST /api/owner?countryId=.

Request:
  - Body: DTO

Response:
  - 200: "Successfully created!"
  - 400: Missing or invalid body
  - 404: Country not found
  - 422: Owner already exists
*/
func (handler *Handler) createOwner(writer http.ResponseWriter, request *http.Request) {
	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	countryID := requestutil.QueryInt(request, "countryId")

	if err := handler.service.Create(request.Context(), countryID, body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageCreated)
}

func (handler *Handler) updateOwner(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntID(request, "ownerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), ownerID, body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageUpdated)
}

func (handler *Handler) deleteOwner(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntID(request, "ownerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), ownerID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageDeleted)
}
