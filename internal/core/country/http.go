package country

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokereview/internal/core/owner"
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

// Routes returns a [chi.Router] mounted at /api/country.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCountries)
	router.Get("/{countryId}", handler.getCountry)
	router.Get("/owners/{ownerId}", handler.getCountryOfOwner)
	router.Get("/{countryId}/owners", handler.listOwners)

	router.Post("/", handler.createCountry)
	router.Put("/{countryId}", handler.updateCountry)
	router.Delete("/{countryId}", handler.deleteCountry)

	return router
}

func (handler *Handler) listCountries(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTOs(items))
}

func (handler *Handler) getCountry(writer http.ResponseWriter, request *http.Request) {
	countryID, err := requestutil.IntID(request, "countryId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	country, err := handler.service.Get(request.Context(), countryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTO(country))
}

/*
GET /api/country/owners/{ownerId}.

Response:
  - 200: DTO (the owner's country)
  - 404: Owner not found
*/
func (handler *Handler) getCountryOfOwner(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntID(request, "ownerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	country, err := handler.service.GetByOwner(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTO(country))
}

func (handler *Handler) listOwners(writer http.ResponseWriter, request *http.Request) {
	countryID, err := requestutil.IntID(request, "countryId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListOwners(request.Context(), countryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, owner.ToDTOs(items))
}

func (handler *Handler) createCountry(writer http.ResponseWriter, request *http.Request) {
	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageCreated)
}

func (handler *Handler) updateCountry(writer http.ResponseWriter, request *http.Request) {
	countryID, err := requestutil.IntID(request, "countryId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), countryID, body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageUpdated)
}

func (handler *Handler) deleteCountry(writer http.ResponseWriter, request *http.Request) {
	countryID, err := requestutil.IntID(request, "countryId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), countryID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageDeleted)
}
