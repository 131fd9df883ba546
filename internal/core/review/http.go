// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokereview/internal/platform/constants"
	requestutil "github.com/taibuivan/pokereview/internal/platform/request"
	"github.com/taibuivan/pokereview/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /api/review.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listReviews)
	router.Get("/{reviewId}", handler.getReview)
	router.Get("/pokemon/{pokeId}", handler.listByPokemon)

	router.Post("/", handler.createReview)
	router.Put("/{reviewId}", handler.updateReview)
	router.Delete("/{reviewId}", handler.deleteReview)
	router.Delete("/reviewer/{reviewerId}", handler.deleteByReviewer)

	return router
}

// # Lookup Endpoints

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTOs(items))
}

func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntID(request, "reviewId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.Get(request.Context(), reviewID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTO(review))
}

/*
GET /api/review/pokemon/{pokeId}.

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
POST /api/review?reviewerId=&pokeId=.

Request:
  - Body: DTO

Response:
  - 200: "Successfully created!"
  - 400: Missing or invalid body
  - 404: Reviewer or Pokemon not found
  - 422: Review already exists
*/
func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviewerID := requestutil.QueryInt(request, "reviewerId")
	pokemonID := requestutil.QueryInt(request, "pokeId")

	if err := handler.service.Create(request.Context(), reviewerID, pokemonID, body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageCreated)
}

func (handler *Handler) updateReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntID(request, "reviewId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), reviewID, body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageUpdated)
}

func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntID(request, "reviewId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), reviewID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageDeleted)
}

/*
DELETE /api/review/reviewer/{reviewerId}.

Response:
  - 200: "Successfully deleted!"
  - 404: Reviewer not found
  - 500: Nothing deleted or storage failure
*/
func (handler *Handler) deleteByReviewer(writer http.ResponseWriter, request *http.Request) {
	reviewerID, err := requestutil.IntID(request, "reviewerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteByReviewer(request.Context(), reviewerID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageDeleted)
}
