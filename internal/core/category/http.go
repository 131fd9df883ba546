package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokereview/internal/core/pokemon"
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

// Routes returns a [chi.Router] mounted at /api/category.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCategories)
	router.Get("/{categoryId}", handler.getCategory)
	router.Get("/pokemon/{categoryId}", handler.listPokemon)

	router.Post("/", handler.createCategory)
	router.Put("/{categoryId}", handler.updateCategory)
	router.Delete("/{categoryId}", handler.deleteCategory)

	return router
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTOs(items))
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "categoryId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.Get(request.Context(), categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToDTO(category))
}

/*
GET /api/category/pokemon/{categoryId}.

Response:
  - 200: []pokemon.DTO
  - 404: Category not found
*/
func (handler *Handler) listPokemon(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "categoryId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListPokemon(request.Context(), categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pokemon.ToDTOs(items))
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
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

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "categoryId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body *DTO
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), categoryID, body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageUpdated)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "categoryId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), categoryID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, constants.MessageDeleted)
}
